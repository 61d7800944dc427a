package cache

import (
	"container/list"
	"sync"
	"time"
)

// Stats contains memory backend statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// memoryEntry is a single cached value with its expiry and tag membership.
type memoryEntry struct {
	key       string
	value     []byte
	tags      []string
	expiresAt time.Time
}

// Memory is a thread-safe LRU backend. Entries carry individual TTLs and tag
// membership; eviction removes the least recently used entry once maxSize is
// exceeded.
type Memory struct {
	mu        sync.Mutex
	maxSize   int
	entries   map[string]*list.Element
	evictList *list.List
	tags      map[string]map[string]struct{}
	stats     Stats
}

// NewMemory creates a memory backend holding at most maxSize entries
// (0 = unlimited).
func NewMemory(maxSize int) *Memory {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Memory{
		maxSize:   maxSize,
		entries:   make(map[string]*list.Element),
		evictList: list.New(),
		tags:      make(map[string]map[string]struct{}),
	}
}

// Get retrieves a value. Expired entries are removed on access.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		m.stats.Misses++
		return nil, false, nil
	}
	e := elem.Value.(*memoryEntry)
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.removeElement(elem)
		m.stats.Misses++
		return nil, false, nil
	}
	m.evictList.MoveToFront(elem)
	m.stats.Hits++
	return e.value, true, nil
}

// Set stores a value, replacing any existing entry under the same key.
func (m *Memory) Set(key string, value []byte, ttl time.Duration, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := m.entries[key]; ok {
		m.removeElement(elem)
	}

	e := &memoryEntry{
		key:       key,
		value:     value,
		tags:      tags,
		expiresAt: expiresAt,
	}
	m.entries[key] = m.evictList.PushFront(e)
	for _, tag := range tags {
		set, ok := m.tags[tag]
		if !ok {
			set = make(map[string]struct{})
			m.tags[tag] = set
		}
		set[key] = struct{}{}
	}

	if m.maxSize > 0 && m.evictList.Len() > m.maxSize {
		if oldest := m.evictList.Back(); oldest != nil {
			m.removeElement(oldest)
			m.stats.Evictions++
		}
	}
	return nil
}

// Delete removes a single key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[key]; ok {
		m.removeElement(elem)
	}
	return nil
}

// InvalidateTag removes every entry carrying the tag.
func (m *Memory) InvalidateTag(tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.tags[tag] {
		if elem, ok := m.entries[key]; ok {
			m.removeElement(elem)
		}
	}
	delete(m.tags, tag)
	return nil
}

// InvalidateAll removes every entry.
func (m *Memory) InvalidateAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*list.Element)
	m.evictList.Init()
	m.tags = make(map[string]map[string]struct{})
	return nil
}

// Len returns the number of entries, counting expired entries not yet
// removed.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictList.Len()
}

// Stats returns backend statistics.
func (m *Memory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stats
	s.Size = m.evictList.Len()
	s.MaxSize = m.maxSize
	return s
}

// removeElement removes an element and its tag memberships. Caller holds the
// lock.
func (m *Memory) removeElement(elem *list.Element) {
	m.evictList.Remove(elem)
	e := elem.Value.(*memoryEntry)
	delete(m.entries, e.key)
	for _, tag := range e.tags {
		if set, ok := m.tags[tag]; ok {
			delete(set, e.key)
			if len(set) == 0 {
				delete(m.tags, tag)
			}
		}
	}
}
