package cache

import (
	"context"
	"shipping-quote-service/internal/ports"
	"sync"
	"time"
)

type responseEntry struct {
	res       ports.CalculatorResult
	expiresAt time.Time
}

// In-memory fallback for the response cache, used when Redis is not
// configured and in tests. Expired entries are dropped lazily on read;
// the key space is small enough that a sweeper is not worth a goroutine.
type MemoryResponseCache struct {
	mu    sync.Mutex
	items map[string]responseEntry
}

var _ ports.ResponseCache = (*MemoryResponseCache)(nil)

func NewMemoryResponseCache() *MemoryResponseCache {
	return &MemoryResponseCache{items: make(map[string]responseEntry)}
}

func (c *MemoryResponseCache) Get(_ context.Context, fingerprint string) (ports.CalculatorResult, bool) {
	if fingerprint == "" {
		return ports.CalculatorResult{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[fingerprint]
	if !ok {
		return ports.CalculatorResult{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.items, fingerprint)
		return ports.CalculatorResult{}, false
	}

	return entry.res, true
}

func (c *MemoryResponseCache) Put(_ context.Context, fingerprint string, res ports.CalculatorResult, ttl time.Duration) {
	if fingerprint == "" {
		return
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[fingerprint] = responseEntry{res: res, expiresAt: time.Now().Add(ttl)}
}
