package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// TieredCache layers a bounded in-memory LRU tier over a persistent Store.
// Gets that miss memory fall through to the store, and a hit there populates
// the memory tier before returning. Puts write to both tiers. Size reports
// the persistent tier's count, the source of truth; MemorySize reports the
// memory tier's occupancy.
//
// A read failure on the persistent tier degrades to a miss so translation
// stays available when the substrate is unhealthy; a write failure
// propagates. One lock guards the compound memory+store sequences so the two
// tiers cannot diverge under concurrent put+get.
type TieredCache struct {
	mu     sync.Mutex
	memory *LRUCache
	store  Store
	logger zerolog.Logger
}

// TieredOption configures a TieredCache.
type TieredOption func(*TieredCache)

// WithTieredLogger sets the logger used to report degraded persistent reads.
func WithTieredLogger(logger zerolog.Logger) TieredOption {
	return func(c *TieredCache) {
		c.logger = logger
	}
}

// NewTieredCache creates a tiered cache from a policy and a persistent
// store. The memory tier follows the policy's bound and TTL.
func NewTieredCache(policy Policy, store Store, opts ...TieredOption) *TieredCache {
	c := &TieredCache{
		memory: NewLRUCacheFromPolicy(policy),
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get checks the memory tier, then the persistent tier. A persistent hit is
// promoted into memory.
func (c *TieredCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.memory.Get(ctx, key); ok {
		return value, true
	}

	value, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false
	}
	if err != nil {
		// Degrade to a miss rather than failing the translate call.
		c.logger.Warn().Err(err).Msg("persistent cache read failed, treating as miss")
		return "", false
	}

	_ = c.memory.Put(ctx, key, value)
	return value, true
}

// Put writes to both tiers. The store write failure propagates.
func (c *TieredCache) Put(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.memory.Put(ctx, key, value)
	return c.store.Put(ctx, key, value)
}

// Remove deletes the entry from both tiers.
func (c *TieredCache) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.memory.Remove(ctx, key)
	return c.store.Remove(ctx, key)
}

// Clear empties both tiers.
func (c *TieredCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.memory.Clear(ctx)
	return c.store.Clear(ctx)
}

// Size reports the persistent tier's count. On a store failure it degrades
// to the memory tier's count.
func (c *TieredCache) Size(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.store.Len(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("persistent cache count failed, reporting memory tier")
		return c.memory.Size(ctx)
	}
	return n
}

// MemorySize reports the memory tier's occupancy.
func (c *TieredCache) MemorySize(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.memory.Size(ctx)
}

// Entries lists the persistent tier's contents when the store supports
// enumeration, falling back to the memory tier.
func (c *TieredCache) Entries(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enum, ok := c.store.(Enumerable); ok {
		return enum.Entries(ctx)
	}
	return c.memory.Entries(ctx)
}

// Verify TieredCache implements the cache contract.
var (
	_ TranslationCache = (*TieredCache)(nil)
	_ Enumerable       = (*TieredCache)(nil)
)
