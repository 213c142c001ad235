package repository

import (
	"context"
	"fmt"
	"strings"

	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/pkg/kv"

	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds parallel GETs during a scan.
const fetchConcurrency = 16

type kvRepository struct {
	store kv.Store
}

func NewRepository(store kv.Store) RepositoryInterface {
	return &kvRepository{store: store}
}

func (r *kvRepository) Get(ctx context.Context, id string) (*model.Listing, error) {
	// Only listing keys are addressable; system documents are not listings.
	if !strings.HasPrefix(id, model.KeyPrefix) {
		return nil, model.ErrListingNotFound
	}

	var l model.Listing
	found, err := kv.GetJSON(ctx, r.store, id, &l)
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	if !found {
		return nil, model.ErrListingNotFound
	}
	return &l, nil
}

func (r *kvRepository) Put(ctx context.Context, id string, l *model.Listing) error {
	if err := kv.PutJSON(ctx, r.store, id, l); err != nil {
		return fmt.Errorf("put listing %s: %w", id, err)
	}
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, id string) error {
	if !strings.HasPrefix(id, model.KeyPrefix) {
		return nil
	}
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

func (r *kvRepository) Count(ctx context.Context) (int, error) {
	keys, err := r.store.List(ctx, model.KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("list listings: %w", err)
	}
	return len(keys), nil
}

func (r *kvRepository) All(ctx context.Context) ([]model.Record, error) {
	keys, err := r.store.List(ctx, model.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	// Each slot is filled by exactly one goroutine.
	slots := make([]*model.Listing, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			var l model.Listing
			found, err := kv.GetJSON(gctx, r.store, key, &l)
			if err != nil {
				return fmt.Errorf("get listing %s: %w", key, err)
			}
			// Deleted between List and Get.
			if found {
				slots[i] = &l
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(keys))
	for i, l := range slots {
		if l != nil {
			records = append(records, model.Record{ID: keys[i], Listing: l})
		}
	}
	return records, nil
}

func (r *kvRepository) ListAll(ctx context.Context, p model.Projection) ([]model.ListingView, error) {
	records, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.ListingView, len(records))
	for i, rec := range records {
		views[i] = p.Apply(rec.ID, rec.Listing)
	}
	return views, nil
}
