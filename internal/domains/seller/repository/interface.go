package repository

import (
	"context"

	"booklisting-backend/internal/domains/seller/model"
)

// RegistryKey is the reserved key holding the whole seller registry.
const RegistryKey = "system:sellers"

// RepositoryInterface persists the seller registry as one document.
//
// Load and Save are separate round trips with nothing held in between. Two
// callers that Load the same snapshot and Save their own changes race: the
// last Save wins and the other caller's entries are lost. Callers accept this;
// there is no compare-and-swap.
type RepositoryInterface interface {
	// Load returns the current registry. A missing document is an empty registry.
	Load(ctx context.Context) (model.Registry, error)

	// Save overwrites the registry document.
	Save(ctx context.Context, reg model.Registry) error
}
