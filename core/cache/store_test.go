package cache

import (
	"errors"
	"testing"
	"time"
)

// recordingBackend wraps Memory and records the arguments of the last Set.
type recordingBackend struct {
	*Memory
	lastTTL  time.Duration
	lastTags []string
}

func (b *recordingBackend) Set(key string, value []byte, ttl time.Duration, tags []string) error {
	b.lastTTL = ttl
	b.lastTags = tags
	return b.Memory.Set(key, value, ttl, tags)
}

// failingBackend errors on every operation.
type failingBackend struct{}

var errBackend = errors.New("backend down")

func (failingBackend) Get(string) ([]byte, bool, error)                   { return nil, false, errBackend }
func (failingBackend) Set(string, []byte, time.Duration, []string) error  { return errBackend }
func (failingBackend) Delete(string) error                                { return errBackend }
func (failingBackend) InvalidateTag(string) error                         { return errBackend }
func (failingBackend) InvalidateAll() error                               { return errBackend }

func TestStore_Memoizes(t *testing.T) {
	store := NewStore(NewMemory(0), time.Minute)

	calls := 0
	compute := func() (string, Outcome) {
		calls++
		return "value", OutcomeOK
	}

	for i := 0; i < 3; i++ {
		if got := Get(store, "key", nil, compute); got != "value" {
			t.Fatalf("Get() = %q; want %q", got, "value")
		}
	}
	// Memoization must hold for sequential calls: at most the first miss
	// computes.
	if calls > 2 {
		t.Errorf("compute called %d times; want at most 2", calls)
	}
}

func TestStore_FailingBackendFallsBackToCompute(t *testing.T) {
	store := NewStore(failingBackend{}, time.Minute)

	calls := 0
	compute := func() (int, Outcome) {
		calls++
		return 42, OutcomeOK
	}

	for i := 0; i < 2; i++ {
		if got := Get(store, "key", nil, compute); got != 42 {
			t.Fatalf("Get() = %d; want 42", got)
		}
	}
	if calls != 2 {
		t.Errorf("compute called %d times; want 2", calls)
	}
}

func TestStore_ResilientInvalidation(t *testing.T) {
	store := NewStore(failingBackend{}, time.Minute)

	if store.DeleteKey("key") {
		t.Error("DeleteKey on failing backend = true; want false")
	}
	if store.InvalidateTag("tag") {
		t.Error("InvalidateTag on failing backend = true; want false")
	}
	if store.InvalidateAll() {
		t.Error("InvalidateAll on failing backend = true; want false")
	}

	ok := NewStore(NewMemory(0), time.Minute)
	if !ok.DeleteKey("key") || !ok.InvalidateTag("tag") || !ok.InvalidateAll() {
		t.Error("invalidation on healthy backend should return true")
	}
}

func TestStore_EmptyOutcomeUsesShortTTL(t *testing.T) {
	backend := &recordingBackend{Memory: NewMemory(0)}
	store := NewStore(backend, time.Minute)

	Get(store, "empty", nil, func() ([]string, Outcome) {
		return nil, OutcomeEmpty
	})
	if backend.lastTTL != ShortTTL {
		t.Errorf("TTL for empty outcome = %v; want %v", backend.lastTTL, ShortTTL)
	}

	Get(store, "full", nil, func() ([]string, Outcome) {
		return []string{"x"}, OutcomeOK
	})
	if backend.lastTTL != time.Minute {
		t.Errorf("TTL for ok outcome = %v; want %v", backend.lastTTL, time.Minute)
	}
}

func TestStore_EntriesCarryUniversalTag(t *testing.T) {
	backend := &recordingBackend{Memory: NewMemory(0)}
	store := NewStore(backend, time.Minute)

	Get(store, "key", []string{"CacheItems_PassageService"}, func() (string, Outcome) {
		return "v", OutcomeOK
	})
	if len(backend.lastTags) != 2 || backend.lastTags[0] != TagAll || backend.lastTags[1] != "CacheItems_PassageService" {
		t.Errorf("tags = %v; want [%s CacheItems_PassageService]", backend.lastTags, TagAll)
	}
}

func TestStore_TagInvalidationDropsEntry(t *testing.T) {
	store := NewStore(NewMemory(0), time.Minute)

	calls := 0
	compute := func() (string, Outcome) {
		calls++
		return "v", OutcomeOK
	}
	Get(store, "key", []string{"group"}, compute)
	store.InvalidateTag("group")
	Get(store, "key", []string{"group"}, compute)
	if calls != 2 {
		t.Errorf("compute called %d times after tag invalidation; want 2", calls)
	}
}

func TestStore_NilBackendPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewStore(nil, ...) should panic")
		}
	}()
	NewStore(nil, time.Minute)
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://api.scripture.api.bible/v1/bibles", "api.scripture.api.bible_v1_bibles"},
		{"http://example.test/path", "example.test_path"},
		{"Passages_niv_jhn.3.16", "Passages_niv_jhn.3.16"},
		{"a/b/c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := SanitizeKey(tt.in); got != tt.want {
			t.Errorf("SanitizeKey(%q) = %q; want %q", tt.in, got, tt.want)
		}
		// Sanitization is deterministic.
		if again := SanitizeKey(tt.in); again != SanitizeKey(tt.in) {
			t.Errorf("SanitizeKey(%q) not stable: %q vs %q", tt.in, again, SanitizeKey(tt.in))
		}
	}
}

func TestStore_DefaultTTL(t *testing.T) {
	store := NewStore(NewMemory(0), 0)
	if store.TTL() != DefaultTTL {
		t.Errorf("TTL() = %v; want %v", store.TTL(), DefaultTTL)
	}
}
