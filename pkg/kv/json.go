package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetJSON reads key and unmarshals it into dest.
// Returns: (found bool, error)
// - found = true: dest populated
// - found = false: key absent, dest untouched
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// PutJSON marshals value and writes it under key.
func PutJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Put(ctx, key, raw)
}
