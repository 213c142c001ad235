package service

import (
	"context"
	"fmt"

	"booklisting-backend/internal/domains/listing/model"
	sellerModel "booklisting-backend/internal/domains/seller/model"

	"github.com/rs/zerolog/log"
)

// Migrate backfills seller codes. It rebuilds the registry from every stored
// listing, saves it, then rewrites each listing with its new code.
//
// Not repeatable in value: a second run hands out different codes and every
// code previously given to a seller stops working. A failure part way through
// leaves some listings on old codes; running it again reconciles them.
func (s *ListingService) Migrate(ctx context.Context) (*model.MigrationResult, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	attributions := make([]sellerModel.Attribution, len(records))
	for i, rec := range records {
		attributions[i] = sellerModel.Attribution{
			ListingID: rec.ID,
			Contact:   rec.Listing.Contact,
			Seller:    rec.Listing.Seller,
		}
	}

	reg, codes, err := s.sellers.Replace(ctx, attributions)
	if err != nil {
		return nil, fmt.Errorf("rebuild seller registry: %w", err)
	}

	for _, rec := range records {
		rec.Listing.SellerCode = codes[rec.ID]
		if err := s.repo.Put(ctx, rec.ID, rec.Listing); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("listings", len(records)).
		Int("sellers", len(reg)).
		Msg("[Migration] Seller codes reassigned")

	return &model.MigrationResult{
		Success: true,
		Message: fmt.Sprintf("Migrated %d books.", len(records)),
		Sellers: reg,
	}, nil
}
