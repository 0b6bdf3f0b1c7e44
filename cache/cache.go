// Package cache provides translation cache implementations: a bounded
// in-memory LRU and a tiered cache backed by a persistent key-value store.
package cache

import (
	"context"
	"errors"
)

// TranslationCache is the contract a translation cache must satisfy. All
// operations must be safe under arbitrary concurrent invocation.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if
	// not found or expired.
	Get(ctx context.Context, key string) (string, bool)

	// Put stores a translation, silently overwriting an existing entry.
	Put(ctx context.Context, key, value string) error

	// Remove deletes an entry; no-op if absent.
	Remove(ctx context.Context, key string) error

	// Clear empties the whole store.
	Clear(ctx context.Context) error

	// Size returns the number of entries.
	Size(ctx context.Context) int
}

// Store is the persistent key-value substrate behind a tiered cache:
// arbitrary string-keyed string storage, best-effort durable across process
// restarts. Any substrate satisfying this shape is interchangeable.
type Store interface {
	// Get returns the stored value, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put stores a value, overwriting silently.
	Put(ctx context.Context, key, value string) error

	// Remove deletes a key; no-op if absent.
	Remove(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Len returns the number of stored keys.
	Len(ctx context.Context) (int, error)
}

// ErrNotFound is returned by Store.Get for an absent key.
var ErrNotFound = errors.New("cache: key not found")

// Enumerable is implemented by caches and stores whose entries can be listed,
// which export and tier-promotion rely on.
type Enumerable interface {
	// Entries returns all live (non-expired) entries as key-value pairs.
	Entries(ctx context.Context) (map[string]string, error)
}
