package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// fakeStore is an in-memory Store with error injection for tiered tests.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	putErr  error
	getHits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return "", s.getErr
	}
	val, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	s.getHits++
	return val, nil
}

func (s *fakeStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return nil
}

func (s *fakeStore) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data), nil
}

func TestTieredCache_PutWritesBothTiers(t *testing.T) {
	store := newFakeStore()
	c := NewTieredCache(Policy{MaxMemoryEntries: 16}, store)
	ctx := context.Background()

	if err := c.Put(ctx, "key1", "value1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if store.data["key1"] != "value1" {
		t.Error("persistent tier should hold the value")
	}
	if c.MemorySize(ctx) != 1 {
		t.Errorf("memory tier should hold the value, size=%d", c.MemorySize(ctx))
	}
}

func TestTieredCache_PersistentHitPopulatesMemory(t *testing.T) {
	store := newFakeStore()
	store.data["key1"] = "value1"
	c := NewTieredCache(Policy{MaxMemoryEntries: 16}, store)
	ctx := context.Background()

	val, ok := c.Get(ctx, "key1")
	if !ok || val != "value1" {
		t.Fatalf("expected persistent hit, got %q (ok=%v)", val, ok)
	}
	if c.MemorySize(ctx) != 1 {
		t.Errorf("persistent hit should populate the memory tier, size=%d", c.MemorySize(ctx))
	}

	// The second read must be served from memory.
	before := store.getHits
	if _, ok := c.Get(ctx, "key1"); !ok {
		t.Fatal("expected memory hit")
	}
	if store.getHits != before {
		t.Error("second read should not reach the persistent tier")
	}
}

func TestTieredCache_SizeReportsPersistentTier(t *testing.T) {
	store := newFakeStore()
	store.data["a"] = "1"
	store.data["b"] = "2"
	store.data["c"] = "3"
	c := NewTieredCache(Policy{MaxMemoryEntries: 1}, store)
	ctx := context.Background()

	if c.Size(ctx) != 3 {
		t.Errorf("Size should report the persistent tier's count, got %d", c.Size(ctx))
	}
	if c.MemorySize(ctx) != 0 {
		t.Errorf("memory tier should be empty, got %d", c.MemorySize(ctx))
	}
}

func TestTieredCache_ReadFailureDegradesToMiss(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("disk on fire")
	c := NewTieredCache(Policy{MaxMemoryEntries: 16}, store)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "key1"); ok {
		t.Error("a persistent read failure must degrade to a miss")
	}
}

func TestTieredCache_WriteFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("disk full")
	c := NewTieredCache(Policy{MaxMemoryEntries: 16}, store)

	if err := c.Put(context.Background(), "key1", "value1"); err == nil {
		t.Error("a persistent write failure must propagate")
	}
}

func TestTieredCache_RemoveAndClearHitBothTiers(t *testing.T) {
	store := newFakeStore()
	c := NewTieredCache(Policy{MaxMemoryEntries: 16}, store)
	ctx := context.Background()

	c.Put(ctx, "key1", "value1")
	c.Put(ctx, "key2", "value2")

	if err := c.Remove(ctx, "key1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := c.Get(ctx, "key1"); ok {
		t.Error("removed key should miss both tiers")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if c.Size(ctx) != 0 || c.MemorySize(ctx) != 0 {
		t.Errorf("Clear should empty both tiers: size=%d mem=%d", c.Size(ctx), c.MemorySize(ctx))
	}
}

func TestTieredCache_MemoryEvictionKeepsPersistent(t *testing.T) {
	store := newFakeStore()
	c := NewTieredCache(Policy{MaxMemoryEntries: 2}, store)
	ctx := context.Background()

	c.Put(ctx, "K1", "v1")
	c.Put(ctx, "K2", "v2")
	c.Put(ctx, "K3", "v3") // evicts K1 from memory only

	if c.MemorySize(ctx) != 2 {
		t.Errorf("memory tier should be bounded at 2, got %d", c.MemorySize(ctx))
	}

	// K1 must still be served from the persistent tier.
	val, ok := c.Get(ctx, "K1")
	if !ok || val != "v1" {
		t.Errorf("K1 should fall through to the persistent tier, got %q (ok=%v)", val, ok)
	}
}

func TestTieredCache_ConcurrentPutGet(t *testing.T) {
	store := newFakeStore()
	c := NewTieredCache(Policy{MaxMemoryEntries: 8}, store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Put(ctx, "shared", "value")
				if val, ok := c.Get(ctx, "shared"); ok && val != "value" {
					t.Errorf("tiers diverged: got %q", val)
				}
			}
		}()
	}
	wg.Wait()
}
