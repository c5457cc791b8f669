package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	SourceMemory = "memory"
	SourceRedis  = "redis"
)

// Cache is a short-TTL request-coalescing cache. Values are opaque JSON
// bytes so the in-process and Redis backends share one contract. It is never
// a source of truth: a miss just means the pipeline runs again.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, source string, ok bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Key builds a cache key from the user and the view parameters. Concurrent
// requests for the same user and view race to populate the same key;
// last-write-wins is fine because the computation is idempotent.
func Key(userID uuid.UUID, view string, params ...string) string {
	parts := append([]string{"finsight", userID.String(), view}, params...)
	return strings.Join(parts, ":")
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is the default in-process backend. Stale entries are swept
// opportunistically on write rather than by a background timer.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return nil, SourceMemory, false
	}
	return entry.value, SourceMemory, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepLocked()
	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Len returns the number of live entries, mainly for tests and gauges.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) sweepLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// String implements fmt.Stringer for log context.
func (c *MemoryCache) String() string {
	return fmt.Sprintf("memory-cache(%d entries)", c.Len())
}
