package repository

import (
	"context"
	"fmt"

	"booklisting-backend/internal/domains/stats/model"
	"booklisting-backend/pkg/kv"
)

const StatsKey = "system:stats"

// RepositoryInterface persists the stats singleton.
type RepositoryInterface interface {
	Get(ctx context.Context) (*model.Stats, error)

	// IncrementSold reads, increments and writes back the sold counter.
	// Concurrent increments can be lost; the store offers no atomic add here.
	IncrementSold(ctx context.Context) (int, error)
}

type kvRepository struct {
	store kv.Store
}

func NewRepository(store kv.Store) RepositoryInterface {
	return &kvRepository{store: store}
}

func (r *kvRepository) Get(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if _, err := kv.GetJSON(ctx, r.store, StatsKey, &stats); err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &stats, nil
}

func (r *kvRepository) IncrementSold(ctx context.Context) (int, error) {
	stats, err := r.Get(ctx)
	if err != nil {
		return 0, err
	}

	stats.Sold++
	if err := kv.PutJSON(ctx, r.store, StatsKey, stats); err != nil {
		return 0, fmt.Errorf("save stats: %w", err)
	}
	return stats.Sold, nil
}
