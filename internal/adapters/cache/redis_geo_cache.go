package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const geoKeyPrefix = "geo:"

type geoPayload struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Distributed coordinate tier backed by Redis. A nil client is treated
// as an always-miss tier so the chain degrades cleanly when Redis is not
// configured.
type RedisGeoCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeoCache(client *redis.Client, ttl time.Duration) *RedisGeoCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisGeoCache{Client: client, TTL: ttl}
}

// Fetch a cached coordinate. A backend error is returned for logging but
// is indistinguishable from a miss to the lookup chain.
func (c *RedisGeoCache) Get(ctx context.Context, key string) (domain.Coordinates, bool, error) {
	if c.Client == nil {
		return domain.Coordinates{}, false, nil
	}

	raw, err := c.Client.Get(ctx, geoKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geo get %q: %w", key, err)
	}

	var p geoPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geo decode %q: %w", key, err)
	}

	return domain.Coordinates{Lon: p.Lon, Lat: p.Lat}, true, nil
}

// Store a coordinate with the tier TTL.
func (c *RedisGeoCache) Put(ctx context.Context, key string, coord domain.Coordinates) error {
	if c.Client == nil {
		return nil
	}

	raw, err := json.Marshal(geoPayload{Lon: coord.Lon, Lat: coord.Lat})
	if err != nil {
		return fmt.Errorf("redis geo encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, geoKeyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("redis geo set %q: %w", key, err)
	}

	return nil
}
