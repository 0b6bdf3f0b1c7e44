package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// lruEntry is one cached value plus the metadata eviction and expiry need.
type lruEntry struct {
	key      string
	value    string
	storedAt time.Time
}

// LRUCache is a bounded in-memory cache with access-order eviction: Get
// promotes the entry to most-recently-used, and Put evicts the
// least-recently-used entries once the bound is exceeded.
//
// Every operation serializes through a single mutex for its full critical
// section, so the read-promote and check-evict-write sequences are atomic
// under concurrent access.
type LRUCache struct {
	mu       sync.Mutex
	ll       *list.List // front = most recently used
	items    map[string]*list.Element
	capacity int
	ttl      time.Duration
}

// NewLRUCache creates an LRU cache holding at most capacity entries. A
// capacity of 0 or less yields a no-op cache that misses every lookup.
// A ttl of 0 means entries never expire.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	if ttl < 0 {
		ttl = 0
	}
	return &LRUCache{
		ll:       list.New(),
		items:    make(map[string]*list.Element),
		capacity: capacity,
		ttl:      ttl,
	}
}

// NewLRUCacheFromPolicy creates an LRU cache from a Policy's memory settings.
func NewLRUCacheFromPolicy(p Policy) *LRUCache {
	return NewLRUCache(p.MaxMemoryEntries, p.TTL)
}

// Get retrieves a value and promotes it to most recently used.
func (c *LRUCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}

	entry := elem.Value.(*lruEntry)
	if c.expired(entry) {
		c.removeElement(elem)
		return "", false
	}

	c.ll.MoveToFront(elem)
	return entry.value, true
}

// Put stores a value, evicting least-recently-used entries until the cache
// is within capacity.
func (c *LRUCache) Put(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return nil
	}

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry)
		entry.value = value
		entry.storedAt = time.Now()
		c.ll.MoveToFront(elem)
		return nil
	}

	elem := c.ll.PushFront(&lruEntry{key: key, value: value, storedAt: time.Now()})
	c.items[key] = elem

	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}
	return nil
}

// Remove deletes an entry; no-op if absent.
func (c *LRUCache) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	return nil
}

// Clear empties the cache.
func (c *LRUCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.items = make(map[string]*list.Element)
	return nil
}

// Size returns the number of entries, including not-yet-collected expired
// ones.
func (c *LRUCache) Size(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Entries returns all non-expired entries as key-value pairs.
func (c *LRUCache) Entries(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]string, c.ll.Len())
	for elem := c.ll.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*lruEntry)
		if c.expired(entry) {
			continue
		}
		result[entry.key] = entry.value
	}
	return result, nil
}

// expired reports whether an entry is past its TTL. Caller holds the lock.
func (c *LRUCache) expired(entry *lruEntry) bool {
	return c.ttl > 0 && time.Since(entry.storedAt) > c.ttl
}

// removeElement unlinks an entry. Caller holds the lock.
func (c *LRUCache) removeElement(elem *list.Element) {
	c.ll.Remove(elem)
	delete(c.items, elem.Value.(*lruEntry).key)
}

// Verify LRUCache implements the cache contract.
var (
	_ TranslationCache = (*LRUCache)(nil)
	_ Enumerable       = (*LRUCache)(nil)
)
