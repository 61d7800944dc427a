package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(0)

	if err := m.Set("key", []byte("value"), time.Minute, nil); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	value, ok, err := m.Get("key")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok || !bytes.Equal(value, []byte("value")) {
		t.Errorf("Get() = %q, %v; want %q, true", value, ok, "value")
	}

	if _, ok, _ := m.Get("missing"); ok {
		t.Error("Get(missing) = true; want false")
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(0)

	m.Set("key", []byte("value"), 10*time.Millisecond, nil)
	time.Sleep(20 * time.Millisecond)

	if _, ok, _ := m.Get("key"); ok {
		t.Error("Get() after expiry = true; want false")
	}
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory(0)

	m.Set("key", []byte("value"), 0, nil)
	if _, ok, _ := m.Get("key"); !ok {
		t.Error("Get() with zero TTL = false; want true")
	}
}

func TestMemory_LRUEviction(t *testing.T) {
	m := NewMemory(2)

	m.Set("a", []byte("1"), 0, nil)
	m.Set("b", []byte("2"), 0, nil)
	// Touch "a" so "b" becomes the eviction candidate.
	m.Get("a")
	m.Set("c", []byte("3"), 0, nil)

	if _, ok, _ := m.Get("b"); ok {
		t.Error("least recently used entry should have been evicted")
	}
	if _, ok, _ := m.Get("a"); !ok {
		t.Error("recently used entry should survive eviction")
	}
	if stats := m.Stats(); stats.Evictions != 1 {
		t.Errorf("Evictions = %d; want 1", stats.Evictions)
	}
}

func TestMemory_InvalidateTag(t *testing.T) {
	m := NewMemory(0)

	m.Set("a", []byte("1"), 0, []string{TagAll, "group"})
	m.Set("b", []byte("2"), 0, []string{TagAll, "group"})
	m.Set("c", []byte("3"), 0, []string{TagAll, "other"})

	if err := m.InvalidateTag("group"); err != nil {
		t.Fatalf("InvalidateTag() error: %v", err)
	}
	if _, ok, _ := m.Get("a"); ok {
		t.Error("tagged entry a should be gone")
	}
	if _, ok, _ := m.Get("b"); ok {
		t.Error("tagged entry b should be gone")
	}
	if _, ok, _ := m.Get("c"); !ok {
		t.Error("entry with a different tag should survive")
	}
}

func TestMemory_InvalidateAll(t *testing.T) {
	m := NewMemory(0)

	m.Set("a", []byte("1"), 0, []string{TagAll})
	m.Set("b", []byte("2"), 0, []string{TagAll})

	if err := m.InvalidateAll(); err != nil {
		t.Fatalf("InvalidateAll() error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d; want 0", m.Len())
	}
}

func TestMemory_SetReplacesTags(t *testing.T) {
	m := NewMemory(0)

	m.Set("key", []byte("1"), 0, []string{"old"})
	m.Set("key", []byte("2"), 0, []string{"new"})

	m.InvalidateTag("old")
	if _, ok, _ := m.Get("key"); !ok {
		t.Error("entry should no longer carry its old tag")
	}
	m.InvalidateTag("new")
	if _, ok, _ := m.Get("key"); ok {
		t.Error("entry should carry its new tag")
	}
}

func TestMemory_Stats(t *testing.T) {
	m := NewMemory(10)

	m.Set("key", []byte("value"), 0, nil)
	m.Get("key")
	m.Get("missing")

	stats := m.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d; want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d; want 1", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("Size = %d; want 1", stats.Size)
	}
	if stats.MaxSize != 10 {
		t.Errorf("MaxSize = %d; want 10", stats.MaxSize)
	}
}
