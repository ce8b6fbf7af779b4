package cache

import (
	"shipping-quote-service/internal/domain"
	"sync"
)

// In-process coordinate tier. Entries have no TTL: a yard's coordinates
// do not move, so they live for the process lifetime. Safe for
// concurrent use.
type MemoryGeoCache struct {
	mu sync.RWMutex
	m  map[string]domain.Coordinates
}

func NewMemoryGeoCache() *MemoryGeoCache {
	return &MemoryGeoCache{m: make(map[string]domain.Coordinates)}
}

func (c *MemoryGeoCache) Get(key string) (domain.Coordinates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coord, ok := c.m[key]
	return coord, ok
}

func (c *MemoryGeoCache) Put(key string, coord domain.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = coord
}

// Len returns the number of cached locations.
func (c *MemoryGeoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.m)
}
