package cache

import (
	"context"
	"log"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
)

// TieredGeoCache chains the coordinate tiers fastest-first:
// process memory, then Redis, then the durable SQL store.
//
// A hit at any tier backfills every faster tier. Tier errors are logged
// and treated as misses; Store never reports failure to the caller
// because a cache write must not fail a quote request.
//
// Construct once per process and share by reference.
type TieredGeoCache struct {
	memory *MemoryGeoCache
	redis  *RedisGeoCache
	store  *SQLGeoStore
}

var _ ports.GeoCache = (*TieredGeoCache)(nil)

func NewTieredGeoCache(memory *MemoryGeoCache, redis *RedisGeoCache, store *SQLGeoStore) *TieredGeoCache {
	if memory == nil {
		memory = NewMemoryGeoCache()
	}
	return &TieredGeoCache{memory: memory, redis: redis, store: store}
}

// Resolve looks the key up tier by tier and reports where it was found.
func (c *TieredGeoCache) Resolve(ctx context.Context, key, source string) (domain.Coordinates, ports.Provenance, bool) {
	if coord, ok := c.memory.Get(key); ok {
		return coord, ports.ProvenanceMemory, true
	}

	if c.redis != nil {
		coord, ok, err := c.redis.Get(ctx, key)
		if err != nil {
			log.Printf("geo cache: redis tier read failed: %v", err)
		} else if ok {
			c.memory.Put(key, coord)
			return coord, ports.ProvenanceRedis, true
		}
	}

	if c.store != nil {
		coord, ok, err := c.store.Get(ctx, key, source)
		if err != nil {
			log.Printf("geo cache: sql tier read failed: %v", err)
		} else if ok {
			c.memory.Put(key, coord)
			if c.redis != nil {
				if err := c.redis.Put(ctx, key, coord); err != nil {
					log.Printf("geo cache: redis backfill failed: %v", err)
				}
			}
			return coord, ports.ProvenanceSQL, true
		}
	}

	return domain.Coordinates{}, "", false
}

// Store writes the coordinate through all tiers. Memory and Redis are
// best-effort; the durable store is retried once. All failures are
// logged and swallowed.
func (c *TieredGeoCache) Store(ctx context.Context, key, source string, coord domain.Coordinates, distanceMiles int) {
	c.memory.Put(key, coord)

	if c.redis != nil {
		if err := c.redis.Put(ctx, key, coord); err != nil {
			log.Printf("geo cache: redis write failed: %v", err)
		}
	}

	if c.store != nil {
		err := c.store.Put(ctx, key, source, coord, distanceMiles)
		if err != nil {
			log.Printf("geo cache: sql write failed, retrying once: %v", err)
			err = c.store.Put(ctx, key, source, coord, distanceMiles)
		}
		if err != nil {
			log.Printf("geo cache: sql write retry failed: %v", err)
		}
	}
}
