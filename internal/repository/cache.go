package repository

import (
	"context"
	"sync"
	"time"
)

// CacheRepository stores serialized responses keyed by request fingerprint
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

var (
	_ CacheRepository = (*MemoryCache)(nil)
	_ CacheRepository = (*RedisCache)(nil)
)

// DefaultMaxCacheEntries bounds a MemoryCache created with maxEntries <= 0
const DefaultMaxCacheEntries = 1000

type cacheEntry struct {
	value   string
	expires time.Time
	seq     uint64
}

// MemoryCache is a process-local cache with a fixed TTL and a bounded
// number of entries. A zero TTL keeps entries until they are pushed out by
// newer ones.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	seq        uint64
	now        func() time.Time
}

// NewMemoryCache creates an empty in-memory cache holding at most maxEntries
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the live value stored under key. An expired entry is dropped.
func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if now := m.now(); m.expired(e, now) {
		m.mu.Lock()
		if cur, ok := m.data[key]; ok && m.expired(cur, now) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores value under key. Expired entries are swept first; if the cache
// is still full the oldest entry is evicted.
func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, e := range m.data {
		if m.expired(e, now) {
			delete(m.data, k)
		}
	}
	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.evictOldest()
	}

	m.seq++
	e := cacheEntry{value: value, seq: m.seq}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.data[key] = e
	return nil
}

func (m *MemoryCache) expired(e cacheEntry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// evictOldest must be called with mu held
func (m *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldestSeq uint64
		found     bool
	)
	for k, e := range m.data {
		if !found || e.seq < oldestSeq {
			oldestKey, oldestSeq, found = k, e.seq, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

// Len reports the number of stored entries, including expired ones not yet swept
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
