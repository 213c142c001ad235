package service

import (
	"context"

	"booklisting-backend/internal/domains/listing/model"
	sellerModel "booklisting-backend/internal/domains/seller/model"
	statsModel "booklisting-backend/internal/domains/stats/model"
	"booklisting-backend/pkg/datauri"
)

// ServiceInterface - listing business logic. Authorization happens before
// these methods are called.
type ServiceInterface interface {
	CreateListing(ctx context.Context, req model.ListingRequest) (*model.CreateResult, error)
	UpdateListing(ctx context.Context, id string, req model.ListingRequest) error
	// DeleteListing removes id without checking it exists and counts a sale.
	DeleteListing(ctx context.Context, id string) error

	GetListing(ctx context.Context, id string) (*model.ListingView, error)
	ListCatalog(ctx context.Context) ([]model.ListingView, error)
	ListBySellerCode(ctx context.Context, code string) ([]model.ListingView, error)
	GetImage(ctx context.Context, id string) (*datauri.Image, error)
	GetStats(ctx context.Context) (*statsModel.Summary, error)
	GetSellers(ctx context.Context) (sellerModel.Registry, error)

	// Migrate reassigns a fresh seller code to every listing. Every run
	// invalidates all previously issued codes.
	Migrate(ctx context.Context) (*model.MigrationResult, error)
}
