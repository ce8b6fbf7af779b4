package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"shipping-quote-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const responseKeyPrefix = "calc:"

// Redis-backed cache for full calculator responses, keyed by request
// fingerprint. A backend outage degrades to always-miss: every request
// recomputes, none fails.
type RedisResponseCache struct {
	Client *redis.Client
}

var _ ports.ResponseCache = (*RedisResponseCache)(nil)

func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{Client: client}
}

func (c *RedisResponseCache) Get(ctx context.Context, fingerprint string) (ports.CalculatorResult, bool) {
	if c.Client == nil || fingerprint == "" {
		return ports.CalculatorResult{}, false
	}

	raw, err := c.Client.Get(ctx, responseKeyPrefix+fingerprint).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CalculatorResult{}, false
	}
	if err != nil {
		log.Printf("response cache: read failed: %v", err)
		return ports.CalculatorResult{}, false
	}

	var res ports.CalculatorResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		log.Printf("response cache: decode failed: %v", err)
		return ports.CalculatorResult{}, false
	}

	return res, true
}

func (c *RedisResponseCache) Put(ctx context.Context, fingerprint string, res ports.CalculatorResult, ttl time.Duration) {
	if c.Client == nil || fingerprint == "" {
		return
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	raw, err := json.Marshal(res)
	if err != nil {
		log.Printf("response cache: encode failed: %v", err)
		return
	}

	if err := c.Client.Set(ctx, responseKeyPrefix+fingerprint, raw, ttl).Err(); err != nil {
		log.Printf("response cache: write failed: %v", err)
	}
}
