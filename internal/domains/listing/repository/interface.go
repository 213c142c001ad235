package repository

import (
	"context"

	"booklisting-backend/internal/domains/listing/model"
)

// RepositoryInterface - Định nghĩa data access methods for listings.
// Listing writes are independent per id and never race with each other.
type RepositoryInterface interface {
	// Get returns model.ErrListingNotFound when id is absent.
	Get(ctx context.Context, id string) (*model.Listing, error)
	Put(ctx context.Context, id string, l *model.Listing) error
	// Delete is a no-op for an absent id.
	Delete(ctx context.Context, id string) error
	// Count returns the number of listing keys.
	Count(ctx context.Context) (int, error)
	// All scans every listing key and loads each document, in key order.
	All(ctx context.Context) ([]model.Record, error)
	// ListAll is All rendered through a projection.
	ListAll(ctx context.Context, p model.Projection) ([]model.ListingView, error)
}
