package service

import (
	"context"
	"testing"

	"booklisting-backend/internal/domains/listing/model"
	sellerModel "booklisting-backend/internal/domains/seller/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLegacyListings(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	legacy := map[string]*model.Listing{
		"book:1-aaaaaaa": {Title: "A", Author: "x", Price: model.NewPrice("10"), Seller: "Thandi", Contact: "082 555 0101", Image: "data:image/png;base64,AA=="},
		"book:2-bbbbbbb": {Title: "B", Author: "x", Price: model.NewPrice("10"), Seller: "Anonymous", Contact: "", Image: "data:image/png;base64,AA=="},
		"book:3-ccccccc": {Title: "C", Author: "x", Price: model.NewPrice("10"), Seller: "T", Contact: "0825550101", Image: "data:image/png;base64,AA==", SellerCode: "OLDD"},
	}
	for id, l := range legacy {
		require.NoError(t, f.listing.Put(ctx, id, l))
	}
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedLegacyListings(t, f)

	res, err := f.svc.Migrate(ctx)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Migrated 3 books.", res.Message)
	require.Len(t, res.Sellers, 2)
	assert.Equal(t, 2, res.Sellers["0825550101"].Count)
	assert.Equal(t, "Thandi", res.Sellers["0825550101"].Name)
	assert.Equal(t, 1, res.Sellers[sellerModel.UnknownContact].Count)

	stored, err := f.sellers.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Sellers, stored)

	records, err := f.listing.All(ctx)
	require.NoError(t, err)
	for _, rec := range records {
		want := res.Sellers[sellerModel.Normalize(rec.Listing.Contact)].Code
		assert.Equal(t, want, rec.Listing.SellerCode, rec.ID)
	}
}

func TestMigrate_TwiceKeepsGrouping(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedLegacyListings(t, f)

	first, err := f.svc.Migrate(ctx)
	require.NoError(t, err)
	second, err := f.svc.Migrate(ctx)
	require.NoError(t, err)

	require.Equal(t, len(first.Sellers), len(second.Sellers))
	for contact, e := range first.Sellers {
		other, ok := second.Sellers[contact]
		require.True(t, ok, contact)
		assert.Equal(t, e.Count, other.Count)
		assert.Equal(t, e.Contact, other.Contact)
	}
}

func TestMigrate_Empty(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Migrated 0 books.", res.Message)
	assert.Empty(t, res.Sellers)
}
