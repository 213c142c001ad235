package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shopspring/decimal"
)

const (
	// KeyPrefix namespaces listing documents in the store.
	KeyPrefix = "book:"

	DefaultSeller = "Anonymous"

	idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength   = 7
)

// Listing is one book-for-sale document stored under its id.
type Listing struct {
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Price       Price     `json:"price"`
	Seller      string    `json:"seller"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	// SellerCode is copied from the registry entry for Contact at write time.
	// Listings written before the registry existed have none until migrated.
	SellerCode string `json:"sellerCode,omitempty"`
}

// Record pairs a listing with its key.
type Record struct {
	ID      string
	Listing *Listing
}

// NewID builds a listing key: book:<unix millis>-<7 base36 chars>.
// Collisions are not checked.
func NewID(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(idSuffixAlphabet, idSuffixLength)
	if err != nil {
		return "", fmt.Errorf("generate listing id: %w", err)
	}
	return fmt.Sprintf("%s%d-%s", KeyPrefix, now.UnixMilli(), suffix), nil
}

// Price keeps the JSON token the client sent (number or string) so it is
// written back exactly as submitted.
type Price struct {
	raw json.RawMessage
}

// NewPrice wraps a raw JSON token such as `120` or `"R120"`.
func NewPrice(token string) Price {
	return Price{raw: json.RawMessage(token)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	p.raw = append(p.raw[:0], b...)
	return nil
}

// IsZero reports whether the price counts as missing: absent, null, false,
// an empty string or a number equal to zero.
func (p Price) IsZero() bool {
	s := bytes.TrimSpace(p.raw)
	switch string(s) {
	case "", "null", "false", `""`:
		return true
	}
	if s[0] == '"' || s[0] == '{' || s[0] == '[' || string(s) == "true" {
		return false
	}

	d, err := decimal.NewFromString(string(s))
	if err != nil {
		return false
	}
	return d.IsZero()
}

func (p Price) String() string {
	return string(p.raw)
}
