package service

import (
	"context"
	"fmt"
	"time"

	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/internal/domains/listing/repository"
	sellerModel "booklisting-backend/internal/domains/seller/model"
	sellerService "booklisting-backend/internal/domains/seller/service"
	statsRepository "booklisting-backend/internal/domains/stats/repository"

	"github.com/rs/zerolog/log"
)

type ListingService struct {
	repo    repository.RepositoryInterface
	sellers sellerService.ServiceInterface
	stats   statsRepository.RepositoryInterface

	now   func() time.Time
	newID func(time.Time) (string, error)
}

// NewService - Constructor with DI
func NewService(
	repo repository.RepositoryInterface,
	sellers sellerService.ServiceInterface,
	stats statsRepository.RepositoryInterface,
) ServiceInterface {
	return &ListingService{
		repo:    repo,
		sellers: sellers,
		stats:   stats,
		now:     time.Now,
		newID:   model.NewID,
	}
}

// CreateListing registers the seller first and then writes the listing. If the
// listing write fails the registry has already counted it.
func (s *ListingService) CreateListing(ctx context.Context, req model.ListingRequest) (*model.CreateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	code, _, err := s.sellers.ResolveOrCreate(ctx, req.Contact, req.Seller)
	if err != nil {
		return nil, fmt.Errorf("resolve seller: %w", err)
	}

	now := s.now().UTC()
	id, err := s.newID(now)
	if err != nil {
		return nil, err
	}

	listing := &model.Listing{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Seller:      orDefault(req.Seller, model.DefaultSeller),
		Contact:     req.Contact,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   now,
		SellerCode:  code,
	}
	if err := s.repo.Put(ctx, id, listing); err != nil {
		return nil, err
	}

	log.Info().Str("id", id).Str("seller_code", code).Msg("[Listing] Created")
	return &model.CreateResult{ID: id, Code: code}, nil
}

// UpdateListing replaces a listing. title, author, price and image are
// required every time; seller, contact and description fall back to the
// stored values. The seller code is only looked up again when the normalized
// contact changes or the listing never had one.
func (s *ListingService) UpdateListing(ctx context.Context, id string, req model.ListingRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	seller := orDefault(req.Seller, existing.Seller)
	contact := orDefault(req.Contact, existing.Contact)

	code := existing.SellerCode
	if code == "" || sellerModel.Normalize(contact) != sellerModel.Normalize(existing.Contact) {
		code, _, err = s.sellers.Resolve(ctx, contact, seller)
		if err != nil {
			return fmt.Errorf("resolve seller: %w", err)
		}
	}

	updated := &model.Listing{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Seller:      seller,
		Contact:     contact,
		Description: orDefault(req.Description, existing.Description),
		Image:       req.Image,
		CreatedAt:   existing.CreatedAt,
		SellerCode:  code,
	}
	return s.repo.Put(ctx, id, updated)
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	sold, err := s.stats.IncrementSold(ctx)
	if err != nil {
		return fmt.Errorf("count sale: %w", err)
	}

	log.Info().Str("id", id).Int("sold", sold).Msg("[Listing] Deleted")
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
