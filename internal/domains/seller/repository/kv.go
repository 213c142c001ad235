package repository

import (
	"context"
	"fmt"

	"booklisting-backend/internal/domains/seller/model"
	"booklisting-backend/pkg/kv"
)

type kvRepository struct {
	store kv.Store
}

func NewRepository(store kv.Store) RepositoryInterface {
	return &kvRepository{store: store}
}

func (r *kvRepository) Load(ctx context.Context) (model.Registry, error) {
	reg := make(model.Registry)
	if _, err := kv.GetJSON(ctx, r.store, RegistryKey, &reg); err != nil {
		return nil, fmt.Errorf("load seller registry: %w", err)
	}
	// A stored JSON null decodes to a nil map.
	if reg == nil {
		reg = make(model.Registry)
	}
	return reg, nil
}

func (r *kvRepository) Save(ctx context.Context, reg model.Registry) error {
	if err := kv.PutJSON(ctx, r.store, RegistryKey, reg); err != nil {
		return fmt.Errorf("save seller registry: %w", err)
	}
	return nil
}
