package model

import "time"

// Field names a listing attribute that a projection can drop.
type Field string

const (
	FieldImage      Field = "image"
	FieldSellerCode Field = "sellerCode"
)

// Projection is the set of fields removed from a listing before it leaves the
// service. Every read view goes through one.
type Projection map[Field]struct{}

// Exclude builds a projection dropping the given fields.
func Exclude(fields ...Field) Projection {
	p := make(Projection, len(fields))
	for _, f := range fields {
		p[f] = struct{}{}
	}
	return p
}

var (
	// PublicProjection is the catalog view: no image payload, no seller code.
	PublicProjection = Exclude(FieldImage, FieldSellerCode)

	// SellerProjection is what a seller sees of their own listings. They
	// already know their code.
	SellerProjection = Exclude(FieldImage)

	// FullProjection keeps everything. Single-listing lookups use it: anyone
	// holding a listing id can see its full detail, seller code included.
	FullProjection = Exclude()
)

func (p Projection) Excludes(f Field) bool {
	_, ok := p[f]
	return ok
}

// ListingView is a listing as returned to clients.
type ListingView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Price       Price     `json:"price"`
	Seller      string    `json:"seller"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	SellerCode  *string   `json:"sellerCode,omitempty"`
}

// Apply renders l under this projection.
func (p Projection) Apply(id string, l *Listing) ListingView {
	v := ListingView{
		ID:          id,
		Title:       l.Title,
		Author:      l.Author,
		Price:       l.Price,
		Seller:      l.Seller,
		Contact:     l.Contact,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
	if !p.Excludes(FieldImage) {
		img := l.Image
		v.Image = &img
	}
	if !p.Excludes(FieldSellerCode) && l.SellerCode != "" {
		code := l.SellerCode
		v.SellerCode = &code
	}
	return v
}
