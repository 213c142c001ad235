// Package datauri encodes and decodes the base64 data-URL format used for
// listing images (data:<mime>;base64,<payload>).
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformed is returned when a stored image is not a valid base64 data URL.
var ErrMalformed = errors.New("invalid image data")

var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// Image is a decoded data URL.
type Image struct {
	MIMEType string
	Data     []byte
}

// Parse splits a data URL into its MIME type and raw bytes.
//
// Decoding is forgiving in the same way browsers are: ASCII whitespace is
// ignored and trailing padding is optional.
func Parse(s string) (*Image, error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrMalformed
	}

	payload := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, m[2])
	payload = strings.TrimRight(payload, "=")

	data, err := base64.RawStdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &Image{MIMEType: m[1], Data: data}, nil
}

// Encode builds a data URL from a MIME type and raw bytes.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
