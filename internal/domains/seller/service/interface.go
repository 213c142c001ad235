package service

import (
	"context"

	"booklisting-backend/internal/domains/seller/model"
)

// ServiceInterface is the seller registry. Every mutating call is a
// load-mutate-save of the whole registry document and is not atomic.
type ServiceInterface interface {
	// ResolveOrCreate attributes a new listing to contact: an existing entry has
	// its count incremented and its name replaced; otherwise a fresh code is
	// issued with count 1. The registry is written back on every call.
	ResolveOrCreate(ctx context.Context, contact, name string) (code string, isNew bool, err error)

	// Resolve finds the code for contact without counting a new listing.
	// Only a previously unseen contact causes a write.
	Resolve(ctx context.Context, contact, name string) (code string, isNew bool, err error)

	// Registry returns the current registry document.
	Registry(ctx context.Context) (model.Registry, error)

	// Replace rebuilds the registry from the given listings, persists it and
	// returns the new registry with the code assigned to each listing id.
	Replace(ctx context.Context, listings []model.Attribution) (model.Registry, map[string]string, error)
}
