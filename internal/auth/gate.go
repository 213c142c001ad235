// Package auth decides whether a mutating request may proceed. There are two
// independent credentials: the admin shared secret and, for deletes only, the
// seller code stored on the target listing. The gate holds no session state.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"booklisting-backend/internal/domains/listing/model"
)

const (
	HeaderAdminSecret = "X-Admin-Password"
	HeaderSellerCode  = "X-Seller-Code"
)

var ErrUnauthorized = errors.New("unauthorized")

// Grant records which credential authorized a request.
type Grant int

const (
	GrantNone Grant = iota
	GrantAdmin
	GrantSeller
)

func (g Grant) String() string {
	switch g {
	case GrantAdmin:
		return "admin"
	case GrantSeller:
		return "seller"
	}
	return "none"
}

// Credentials are the raw header values from a request.
type Credentials struct {
	AdminSecret string
	SellerCode  string
}

// ListingLookup is the part of the listing repository the gate needs.
type ListingLookup interface {
	Get(ctx context.Context, id string) (*model.Listing, error)
}

type Gate struct {
	adminSecret string
	listings    ListingLookup
}

func NewGate(adminSecret string, listings ListingLookup) *Gate {
	return &Gate{
		adminSecret: adminSecret,
		listings:    listings,
	}
}

// IsAdmin reports whether secret is exactly the configured admin secret.
// An unconfigured secret never matches.
func (g *Gate) IsAdmin(secret string) bool {
	if g.adminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(g.adminSecret)) == 1
}

// AuthorizeDelete checks the admin secret first; a wrong or missing secret
// falls through to the seller path. The seller path loads the listing and
// returns model.ErrListingNotFound before comparing codes, so a missing
// listing is reported as such rather than as a bad code. Codes compare
// case-sensitively.
//
// The admin path does not check that the listing exists.
func (g *Gate) AuthorizeDelete(ctx context.Context, id string, creds Credentials) (Grant, error) {
	if g.IsAdmin(creds.AdminSecret) {
		return GrantAdmin, nil
	}
	if creds.SellerCode == "" {
		return GrantNone, ErrUnauthorized
	}

	l, err := g.listings.Get(ctx, id)
	if err != nil {
		return GrantNone, err
	}
	if l.SellerCode == "" || l.SellerCode != creds.SellerCode {
		return GrantNone, ErrUnauthorized
	}
	return GrantSeller, nil
}
