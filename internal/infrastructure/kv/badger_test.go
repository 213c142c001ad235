package kv

import (
	"context"
	"testing"

	"booklisting-backend/pkg/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBadger(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestBadger(t)

	_, err := s.Get(ctx, "book:1")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, s.Put(ctx, "book:1", []byte(`{"title":"Dune"}`)))

	val, err := s.Get(ctx, "book:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune"}`, string(val))

	require.NoError(t, s.Put(ctx, "book:1", []byte(`{"title":"Emma"}`)))
	val, err = s.Get(ctx, "book:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Emma"}`, string(val))

	require.NoError(t, s.Delete(ctx, "book:1"))
	_, err = s.Get(ctx, "book:1")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete(ctx, "book:1"))
}

func TestBadgerStore_ListByPrefix(t *testing.T) {
	ctx := context.Background()
	s := newTestBadger(t)

	for _, k := range []string{"book:2", "system:sellers", "book:1", "system:stats", "booking:x"} {
		require.NoError(t, s.Put(ctx, k, []byte("{}")))
	}

	keys, err := s.List(ctx, "book:")
	require.NoError(t, err)
	assert.Equal(t, []string{"book:1", "book:2"}, keys)

	keys, err = s.List(ctx, "missing:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestBadgerStore_CanceledContext(t *testing.T) {
	s := newTestBadger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "book:1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBadgerStore_PingAfterClose(t *testing.T) {
	s, err := OpenBadgerInMemory()
	require.NoError(t, err)

	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Ping(context.Background()), kv.ErrUnavailable)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "book:", escapeGlob("book:"))
	assert.Equal(t, `a\*b\?c\[d\]e\\`, escapeGlob(`a*b?c[d]e\`))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := newTestBadger(t)

	type stats struct {
		Sold int `json:"sold"`
	}

	var got stats
	found, err := kv.GetJSON(ctx, s, "system:stats", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.PutJSON(ctx, s, "system:stats", stats{Sold: 3}))

	found, err = kv.GetJSON(ctx, s, "system:stats", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got.Sold)

	require.NoError(t, s.Put(ctx, "system:stats", []byte("not json")))
	_, err = kv.GetJSON(ctx, s, "system:stats", &got)
	assert.Error(t, err)
}
