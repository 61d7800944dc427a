// Package cache memoizes expensive remote computations under tagged string
// keys. A Store wraps a Backend (memory, sqlite, or redis) and degrades to
// direct computation whenever the backend fails; backend errors never reach
// the caller.
package cache

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/openscripture/berea/internal/logging"
)

const (
	// TagAll is attached to every entry so the whole store can be
	// invalidated by tag.
	TagAll = "CacheItems_All"

	// DefaultTTL is the entry lifetime when the Store is constructed
	// without one.
	DefaultTTL = 24 * time.Hour

	// ShortTTL is the lifetime of entries whose computation reported an
	// empty or failed result. Transient upstream failures are retried after
	// a second instead of being suppressed for the full TTL.
	ShortTTL = time.Second
)

// Outcome is reported by a compute function alongside its value and decides
// the TTL of the stored entry.
type Outcome int

const (
	// OutcomeOK stores the value for the configured TTL.
	OutcomeOK Outcome = iota
	// OutcomeEmpty marks a failed or empty upstream result; the value is
	// stored for ShortTTL only.
	OutcomeEmpty
)

// Backend stores opaque byte values under already-sanitized keys. Backends
// are expected to honor per-entry TTLs and tag membership.
type Backend interface {
	// Get returns the value for key, or false if the key is absent or
	// expired.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key with the given lifetime and tags.
	Set(key string, value []byte, ttl time.Duration, tags []string) error

	// Delete removes a single key.
	Delete(key string) error

	// InvalidateTag removes every key carrying the tag.
	InvalidateTag(tag string) error

	// InvalidateAll removes every entry.
	InvalidateAll() error
}

// Store is the tagged get-or-compute cache. Concurrent misses for the same
// key may each run compute; upstream reads are idempotent so the results are
// equivalent.
type Store struct {
	backend Backend
	ttl     time.Duration
}

// NewStore wraps a backend. A nil backend is a wiring error in the host, not
// a runtime condition, and panics immediately. A non-positive ttl selects
// DefaultTTL.
func NewStore(backend Backend, ttl time.Duration) *Store {
	if backend == nil {
		panic("cache: Store constructed without a backend")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{backend: backend, ttl: ttl}
}

// TTL returns the configured entry lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// SanitizeKey maps a logical key to its storage form: URI scheme prefixes
// are stripped and path separators replaced, so URLs make valid keys. The
// same logical key always sanitizes identically.
func SanitizeKey(key string) string {
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	return strings.ReplaceAll(key, "/", "_")
}

// Get returns the cached value for key, or runs compute, stores its result
// tagged with TagAll plus the supplied tags, and returns it. Values are
// JSON-encoded for storage. Any backend failure falls back to compute.
func Get[T any](s *Store, key string, tags []string, compute func() (T, Outcome)) T {
	k := SanitizeKey(key)

	data, ok, err := s.backend.Get(k)
	if err != nil {
		logging.CacheEvent("backend_error", k, "op", "get", "error", err.Error())
	} else if ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			logging.CacheEvent("hit", k)
			return value
		}
		logging.CacheEvent("decode_error", k)
	}
	logging.CacheEvent("miss", k)

	value, outcome := compute()

	ttl := s.ttl
	if outcome == OutcomeEmpty {
		ttl = ShortTTL
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		logging.CacheEvent("encode_error", k, "error", err.Error())
		return value
	}
	all := make([]string, 0, len(tags)+1)
	all = append(all, TagAll)
	all = append(all, tags...)
	if err := s.backend.Set(k, encoded, ttl, all); err != nil {
		logging.CacheEvent("backend_error", k, "op", "set", "error", err.Error())
	}
	return value
}

// DeleteKey removes a single entry. Backend errors are reported as false.
func (s *Store) DeleteKey(key string) bool {
	k := SanitizeKey(key)
	if err := s.backend.Delete(k); err != nil {
		logging.CacheEvent("backend_error", k, "op", "delete", "error", err.Error())
		return false
	}
	return true
}

// InvalidateTag removes every entry carrying the tag. Backend errors are
// reported as false.
func (s *Store) InvalidateTag(tag string) bool {
	if err := s.backend.InvalidateTag(tag); err != nil {
		logging.CacheEvent("backend_error", tag, "op", "invalidate_tag", "error", err.Error())
		return false
	}
	return true
}

// InvalidateAll empties the store. Backend errors are reported as false.
func (s *Store) InvalidateAll() bool {
	if err := s.backend.InvalidateAll(); err != nil {
		logging.CacheEvent("backend_error", TagAll, "op", "invalidate_all", "error", err.Error())
		return false
	}
	return true
}
