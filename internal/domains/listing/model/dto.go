package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	sellerModel "booklisting-backend/internal/domains/seller/model"
)

// ========================================
// LISTING DTOs
// ========================================

// ListingRequest is the body of POST / and PUT /?id=.
type ListingRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Price       Price  `json:"price"`
	Seller      string `json:"seller,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}

func (r ListingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Price, validation.By(requirePrice)),
		validation.Field(&r.Image, validation.Required.Error("image is required")),
	)
}

func requirePrice(value interface{}) error {
	p, ok := value.(Price)
	if !ok || p.IsZero() {
		return errors.New("price is required")
	}
	return nil
}

type CreateListingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateResult is what the service reports after storing a new listing.
type CreateResult struct {
	ID   string
	Code string
}

// ========================================
// SELLER SELF-SERVICE DTOs
// ========================================

// SellerLoginRequest is the body of POST /seller/login.
type SellerLoginRequest struct {
	Code string `json:"code"`
}

func (r SellerLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.RuneLength(sellerModel.CodeLength, sellerModel.CodeLength).Error("code must be 4 characters"),
		),
	)
}

// ========================================
// MIGRATION DTOs
// ========================================

type MigrationResult struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Sellers sellerModel.Registry `json:"sellers"`
}
