package cache

import (
	"bytes"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/openscripture/berea/core/sqlite"
)

// compressThreshold is the value size above which entries are xz-compressed
// before storage. Passage HTML compresses well; small metadata entries are
// not worth the overhead.
const compressThreshold = 1024

// SQLite is a persistent backend storing entries in a local database. Keys
// are stored as BLAKE3 hex digests so arbitrary key lengths and characters
// never hit the schema.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a cache database at path. Use
// ":memory:" for an ephemeral database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			compressed INTEGER NOT NULL DEFAULT 0,
			expires_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cache_tags (
			tag TEXT NOT NULL,
			key TEXT NOT NULL,
			PRIMARY KEY (tag, key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cache_tags_key ON cache_tags(key)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("cache: init schema: %w", err)
		}
	}
	return nil
}

// hashKey maps a sanitized key to its storage digest.
func hashKey(key string) string {
	sum := blake3.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a value. Expired entries are deleted on access.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	h := hashKey(key)

	var value []byte
	var compressed int
	var expiresAt int64
	err := s.db.QueryRow(
		`SELECT value, compressed, expires_at FROM cache_entries WHERE key = ?`, h,
	).Scan(&value, &compressed, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: sqlite get: %w", err)
	}
	if expiresAt > 0 && time.Now().UnixNano() > expiresAt {
		_ = s.Delete(key)
		return nil, false, nil
	}
	if compressed != 0 {
		r, err := xz.NewReader(bytes.NewReader(value))
		if err != nil {
			return nil, false, fmt.Errorf("cache: decompress: %w", err)
		}
		value, err = io.ReadAll(r)
		if err != nil {
			return nil, false, fmt.Errorf("cache: decompress: %w", err)
		}
	}
	return value, true, nil
}

// Set stores a value, replacing any existing entry and its tag rows.
func (s *SQLite) Set(key string, value []byte, ttl time.Duration, tags []string) error {
	h := hashKey(key)

	compressed := 0
	stored := value
	if len(value) >= compressThreshold {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("cache: compress: %w", err)
		}
		if _, err := w.Write(value); err != nil {
			return fmt.Errorf("cache: compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("cache: compress: %w", err)
		}
		stored = buf.Bytes()
		compressed = 1
	}

	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: sqlite set: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO cache_entries (key, value, compressed, expires_at) VALUES (?, ?, ?, ?)`,
		h, stored, compressed, expiresAt,
	); err != nil {
		return fmt.Errorf("cache: sqlite set: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM cache_tags WHERE key = ?`, h); err != nil {
		return fmt.Errorf("cache: sqlite set: %w", err)
	}
	for _, tag := range tags {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO cache_tags (tag, key) VALUES (?, ?)`, tag, h,
		); err != nil {
			return fmt.Errorf("cache: sqlite set: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: sqlite set: %w", err)
	}
	return nil
}

// Delete removes a single key and its tag rows.
func (s *SQLite) Delete(key string) error {
	h := hashKey(key)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: sqlite delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cache_entries WHERE key = ?`, h); err != nil {
		return fmt.Errorf("cache: sqlite delete: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM cache_tags WHERE key = ?`, h); err != nil {
		return fmt.Errorf("cache: sqlite delete: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: sqlite delete: %w", err)
	}
	return nil
}

// InvalidateTag removes every entry carrying the tag.
func (s *SQLite) InvalidateTag(tag string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: sqlite invalidate tag: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM cache_entries WHERE key IN (SELECT key FROM cache_tags WHERE tag = ?)`, tag,
	); err != nil {
		return fmt.Errorf("cache: sqlite invalidate tag: %w", err)
	}
	if _, err := tx.Exec(
		`DELETE FROM cache_tags WHERE key IN (SELECT key FROM cache_tags WHERE tag = ?)`, tag,
	); err != nil {
		return fmt.Errorf("cache: sqlite invalidate tag: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: sqlite invalidate tag: %w", err)
	}
	return nil
}

// InvalidateAll removes every entry.
func (s *SQLite) InvalidateAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: sqlite invalidate all: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("cache: sqlite invalidate all: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM cache_tags`); err != nil {
		return fmt.Errorf("cache: sqlite invalidate all: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: sqlite invalidate all: %w", err)
	}
	return nil
}
