package kv

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLiteStore keeps the blobs in a single-file SQLite database.
type SQLiteStore struct {
	sqlStore
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlStore{db: db, q: sqliteQueries}}
}

// uriPathEscaper escapes the characters that end or alter the path part of a
// SQLite URI filename.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// SQLiteDSN builds a modernc.org/sqlite DSN for path. A positive busyTimeout
// makes concurrent writers from other processes wait instead of failing.
func SQLiteDSN(path string, busyTimeout time.Duration) string {
	v := url.Values{}
	v.Add("_pragma", "journal_mode(WAL)")
	if busyTimeout > 0 {
		v.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	}
	return "file:" + uriPathEscaper.Replace(path) + "?" + v.Encode()
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// migrations.
func OpenSQLite(ctx context.Context, path string, busyTimeout time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", SQLiteDSN(path, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	if err := RunMigrations(ctx, db, "sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db), nil
}
