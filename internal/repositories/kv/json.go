package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON reads key and decodes it into a T. found is false when the key is
// absent. A value that does not decode yields an error wrapping ErrCorrupt.
func GetJSON[T any](ctx context.Context, s Store, key string) (value T, found bool, err error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return value, false, err
	}
	if raw == nil {
		return value, false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, true, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return value, true, nil
}

// JSONEntry encodes v as the Entry for key.
func JSONEntry(key string, v any) (Entry, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return Entry{Key: key, Value: b}, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	e, err := JSONEntry(key, v)
	if err != nil {
		return err
	}
	return s.Set(ctx, e.Key, e.Value)
}
