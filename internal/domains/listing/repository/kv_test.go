package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/internal/infrastructure/kv/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing(title, code string) *model.Listing {
	return &model.Listing{
		Title:      title,
		Author:     "Author",
		Price:      model.NewPrice("100"),
		Seller:     "Seller",
		Contact:    "0825550101",
		Image:      "data:image/png;base64,AAAA",
		CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		SellerCode: code,
	}
}

func TestGetPutDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvtest.NewStore(t))

	_, err := repo.Get(ctx, "book:1")
	assert.ErrorIs(t, err, model.ErrListingNotFound)

	l := sampleListing("Dune", "KXQP")
	require.NoError(t, repo.Put(ctx, "book:1", l))

	got, err := repo.Get(ctx, "book:1")
	require.NoError(t, err)
	assert.Equal(t, l, got)

	require.NoError(t, repo.Delete(ctx, "book:1"))
	_, err = repo.Get(ctx, "book:1")
	assert.ErrorIs(t, err, model.ErrListingNotFound)

	assert.NoError(t, repo.Delete(ctx, "book:1"))
}

func TestGet_SystemKeysAreNotListings(t *testing.T) {
	ctx := context.Background()
	store := kvtest.NewStore(t)
	require.NoError(t, store.Put(ctx, "system:sellers", []byte(`{"111":{"code":"AAAA"}}`)))

	_, err := NewRepository(store).Get(ctx, "system:sellers")
	assert.ErrorIs(t, err, model.ErrListingNotFound)

	require.NoError(t, NewRepository(store).Delete(ctx, "system:sellers"))
	_, err = store.Get(ctx, "system:sellers")
	assert.NoError(t, err)
}

func TestAll_SkipsSystemDocuments(t *testing.T) {
	ctx := context.Background()
	store := kvtest.NewStore(t)
	repo := NewRepository(store)

	for i := 0; i < 40; i++ {
		require.NoError(t, repo.Put(ctx, fmt.Sprintf("book:%03d", i), sampleListing(fmt.Sprintf("T%d", i), "AAAA")))
	}
	require.NoError(t, store.Put(ctx, "system:stats", []byte(`{"sold":1}`)))

	records, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 40)
	assert.Equal(t, "book:000", records[0].ID)
	assert.Equal(t, "T39", records[39].Listing.Title)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
}

func TestListAll_AppliesProjection(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvtest.NewStore(t))
	require.NoError(t, repo.Put(ctx, "book:1", sampleListing("Dune", "KXQP")))

	views, err := repo.ListAll(ctx, model.PublicProjection)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "book:1", views[0].ID)
	assert.Nil(t, views[0].Image)
	assert.Nil(t, views[0].SellerCode)

	views, err = repo.ListAll(ctx, model.FullProjection)
	require.NoError(t, err)
	require.NotNil(t, views[0].Image)
	require.NotNil(t, views[0].SellerCode)
	assert.Equal(t, "KXQP", *views[0].SellerCode)
}
