package kv

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Get when the key does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnavailable marks backend I/O failures. Callers may retry; nothing in
	// this module does.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the key-value contract the application persists through.
// Swappable implementation (Redis, Badger).
//
// There are no transactions: every call is an independent round trip, so
// read-modify-write sequences built on top of a Store can race.
type Store interface {
	// Get returns the raw value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns every key starting with prefix, sorted lexicographically.
	List(ctx context.Context, prefix string) ([]string, error)

	// Ping checks the connection.
	Ping(ctx context.Context) error

	Close() error
}
