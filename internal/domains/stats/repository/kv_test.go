package repository

import (
	"context"
	"testing"

	"booklisting-backend/internal/infrastructure/kv/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementSold(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvtest.NewStore(t))

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Sold)

	for want := 1; want <= 3; want++ {
		got, err := repo.IncrementSold(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	stats, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Sold)
}

func TestGet_ToleratesMissingSoldField(t *testing.T) {
	ctx := context.Background()
	store := kvtest.NewStore(t)
	require.NoError(t, store.Put(ctx, StatsKey, []byte(`{}`)))

	got, err := NewRepository(store).IncrementSold(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
