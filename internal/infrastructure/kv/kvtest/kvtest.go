// Package kvtest provides a disposable store for tests.
package kvtest

import (
	"testing"

	infraKV "booklisting-backend/internal/infrastructure/kv"
	"booklisting-backend/pkg/kv"

	"github.com/stretchr/testify/require"
)

// NewStore opens an in-memory Badger store that is closed when the test ends.
func NewStore(t testing.TB) kv.Store {
	t.Helper()

	s, err := infraKV.OpenBadgerInMemory()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}
