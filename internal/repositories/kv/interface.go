// Package kv is HouseSell's local persistent store: a flat map of named
// blobs. Each collection (users, properties, the session pointer) lives under
// one key and is always read and rewritten whole.
//
// Backends:
//   - MemoryStore: process-local, for tests and throwaway runs.
//   - SQLiteStore: the default embedded store (modernc.org/sqlite).
//   - PostgresStore: the same table in PostgreSQL (pgx), for installations
//     that keep the data outside the user's machine.
package kv

import (
	"context"
	"errors"
)

// ErrCorrupt reports a stored blob that could not be decoded.
var ErrCorrupt = errors.New("corrupt stored value")

// Entry is one key/value pair for SetMany.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the blob store contract.
//
// Get returns (nil, nil) for an absent key. SetMany writes all entries or
// none of them. Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}
