package model

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// UnknownContact is the registry key for listings submitted without any digits
	// in their contact field.
	UnknownContact = "UNKNOWN"

	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CodeLength   = 4
)

// SellerEntry is one registry record, keyed by normalized contact.
type SellerEntry struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	// Count is the number of listings ever attributed to this contact.
	// It only grows; deletes never decrement it.
	Count int `json:"count"`
}

// Registry maps normalized contact to its entry. It is persisted as a single
// document.
type Registry map[string]*SellerEntry

// Normalize strips every non-digit from a contact string. A contact with no
// digits at all maps to UnknownContact.
func Normalize(contact string) string {
	var b strings.Builder
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return UnknownContact
	}
	return b.String()
}

// CodeGenerator produces seller codes.
type CodeGenerator func() (string, error)

// NewCode draws CodeLength letters uniformly from A-Z. Codes are not checked
// for uniqueness; two contacts can end up with the same code.
func NewCode() (string, error) {
	code, err := gonanoid.Generate(CodeAlphabet, CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate seller code: %w", err)
	}
	return code, nil
}

// IsValidCode reports whether s looks like a generated seller code.
func IsValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Attribution is the slice of a listing the registry needs to rebuild itself.
type Attribution struct {
	ListingID string
	Contact   string
	Seller    string
}

// RegenerateAll rebuilds a registry from scratch. Listings are grouped by
// normalized contact in the order given; each group gets one fresh code, the
// display name of its first listing and a count equal to its size.
//
// The returned map holds the code assigned to every listing id. Codes differ
// from any previous run.
func RegenerateAll(listings []Attribution, gen CodeGenerator) (Registry, map[string]string, error) {
	reg := make(Registry)
	codes := make(map[string]string, len(listings))

	for _, l := range listings {
		contact := Normalize(l.Contact)

		entry, ok := reg[contact]
		if !ok {
			code, err := gen()
			if err != nil {
				return nil, nil, err
			}
			entry = &SellerEntry{
				Code:    code,
				Name:    l.Seller,
				Contact: contact,
			}
			reg[contact] = entry
		}
		entry.Count++
		codes[l.ListingID] = entry.Code
	}

	return reg, codes, nil
}
