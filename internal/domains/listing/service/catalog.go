package service

import (
	"context"
	"errors"
	"fmt"

	"booklisting-backend/internal/domains/listing/model"
	sellerModel "booklisting-backend/internal/domains/seller/model"
	statsModel "booklisting-backend/internal/domains/stats/model"
	"booklisting-backend/pkg/datauri"
)

func (s *ListingService) GetListing(ctx context.Context, id string) (*model.ListingView, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := model.FullProjection.Apply(id, l)
	return &view, nil
}

func (s *ListingService) ListCatalog(ctx context.Context) ([]model.ListingView, error) {
	return s.repo.ListAll(ctx, model.PublicProjection)
}

// ListBySellerCode needs no credential beyond the code itself.
func (s *ListingService) ListBySellerCode(ctx context.Context, code string) ([]model.ListingView, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.ListingView, 0)
	for _, rec := range records {
		if rec.Listing.SellerCode == code {
			views = append(views, model.SellerProjection.Apply(rec.ID, rec.Listing))
		}
	}
	return views, nil
}

func (s *ListingService) GetImage(ctx context.Context, id string) (*datauri.Image, error) {
	l, err := s.repo.Get(ctx, id)
	if errors.Is(err, model.ErrListingNotFound) {
		return nil, model.ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	if l.Image == "" {
		return nil, model.ErrImageNotFound
	}

	img, err := datauri.Parse(l.Image)
	if err != nil {
		return nil, fmt.Errorf("decode image for %s: %w", id, err)
	}
	return img, nil
}

func (s *ListingService) GetStats(ctx context.Context) (*statsModel.Summary, error) {
	listed, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := s.sellers.Registry(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &statsModel.Summary{
		BooksListed:  listed,
		SellersCount: len(reg),
		Sold:         stats.Sold,
	}, nil
}

func (s *ListingService) GetSellers(ctx context.Context) (sellerModel.Registry, error) {
	return s.sellers.Registry(ctx)
}
