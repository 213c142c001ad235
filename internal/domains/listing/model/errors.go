package model

import "errors"

var (
	ErrListingNotFound = errors.New("book not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrValidation      = errors.New("missing required fields")
	ErrMissingID       = errors.New("missing book id")
	ErrInvalidCode     = errors.New("invalid code")
)
