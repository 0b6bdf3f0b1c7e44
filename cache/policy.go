package cache

import "time"

// Policy is the cache configuration.
//
// MaxMemoryEntries of 0 combined with Persist=false degenerates to a no-op
// cache: every lookup misses.
type Policy struct {
	// MaxMemoryEntries bounds the in-memory tier. 0 disables it.
	MaxMemoryEntries int

	// TTL expires entries after the given duration. 0 means never expire.
	TTL time.Duration

	// Persist enables the persistent tier beyond memory.
	Persist bool

	// CacheFailures controls whether failed translations may be cached.
	// Always false: failures must not poison the cache, and the decorator
	// never reaches the cache-write step on a failure anyway.
	CacheFailures bool
}

// DefaultPolicy returns a memory-only policy with a modest bound and no
// expiry.
func DefaultPolicy() Policy {
	return Policy{MaxMemoryEntries: 1024}
}
