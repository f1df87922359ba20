package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS digests (
    path       TEXT PRIMARY KEY,
    size       INTEGER NOT NULL,
    mtime_ns   INTEGER NOT NULL,
    digest     TEXT NOT NULL,
    updated_at TEXT NOT NULL
)`

// Cache persists file digests in SQLite so unchanged files are not
// re-hashed across runs.
type Cache struct {
	db   *sql.DB
	path string
}

// OpenCache initializes or connects to the digest cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create digest table: %w", err)
	}

	return &Cache{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached digest for path when size and mtime still
// match, or ok=false when the entry is absent or stale.
func (c *Cache) Lookup(ctx context.Context, path string, size, mtimeNS int64) (string, bool, error) {
	var digest string
	err := c.db.QueryRowContext(
		ctx,
		`SELECT digest FROM digests WHERE path = ? AND size = ? AND mtime_ns = ?`,
		path, size, mtimeNS,
	).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup digest: %w", err)
	}
	return digest, true, nil
}

// Store upserts the digest for path.
func (c *Cache) Store(ctx context.Context, path string, size, mtimeNS int64, digest string) error {
	_, err := c.db.ExecContext(
		ctx,
		`INSERT INTO digests (path, size, mtime_ns, digest, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
             size = excluded.size,
             mtime_ns = excluded.mtime_ns,
             digest = excluded.digest,
             updated_at = excluded.updated_at`,
		path, size, mtimeNS, digest,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store digest: %w", err)
	}
	return nil
}
