package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value    string
	storedAt time.Time
}

// MemoryCache is an in-process CacheRepository. Entries expire after ttl and
// at most maxEntries are held; when full, expired entries are swept first and
// then the oldest entry is evicted.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryCache creates a cache. A ttl <= 0 keeps entries until evicted and
// a maxEntries <= 0 leaves the entry count unbounded.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}

	if m.expired(entry, m.now()) {
		m.mu.Lock()
		// re-check: a concurrent Set may have refreshed the key
		if current, ok := m.data[key]; ok && m.expired(current, m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.sweep(now)
		if len(m.data) >= m.maxEntries {
			m.evictOldest()
		}
	}

	m.data[key] = memoryEntry{value: value, storedAt: now}
	return nil
}

func (m *MemoryCache) expired(entry memoryEntry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(entry.storedAt) >= m.ttl
}

// sweep drops every expired entry. Callers hold the write lock.
func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
		}
	}
}

// evictOldest drops the entry stored longest ago. Callers hold the write lock.
func (m *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range m.data {
		if !found || entry.storedAt.Before(oldest) {
			oldestKey, oldest, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

