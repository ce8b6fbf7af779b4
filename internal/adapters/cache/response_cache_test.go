package cache

import (
	"context"
	"shipping-quote-service/internal/ports"
	"testing"
	"time"
)

func TestMemoryResponseCacheRoundTrip(t *testing.T) {
	c := NewMemoryResponseCache()
	res := ports.CalculatorResult{Total: 2450, Currency: "USD", DistanceMiles: 6500}

	c.Put(context.Background(), "fp-1", res, time.Hour)

	got, ok := c.Get(context.Background(), "fp-1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got != res {
		t.Fatalf("got %+v, want %+v", got, res)
	}
}

func TestMemoryResponseCacheExpiry(t *testing.T) {
	c := NewMemoryResponseCache()
	c.Put(context.Background(), "fp-1", ports.CalculatorResult{Total: 1}, time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(context.Background(), "fp-1"); ok {
		t.Fatal("expected the entry to expire")
	}
}

func TestMemoryResponseCacheEmptyFingerprint(t *testing.T) {
	c := NewMemoryResponseCache()
	c.Put(context.Background(), "", ports.CalculatorResult{Total: 1}, time.Hour)

	if _, ok := c.Get(context.Background(), ""); ok {
		t.Fatal("empty fingerprints must never hit")
	}
}

func TestRedisResponseCacheRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	c := NewRedisResponseCache(client)
	res := ports.CalculatorResult{Total: 3100.50, Currency: "USD"}

	c.Put(context.Background(), "fp-1", res, time.Hour)

	got, ok := c.Get(context.Background(), "fp-1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got != res {
		t.Fatalf("got %+v, want %+v", got, res)
	}
}

func TestRedisResponseCacheOutageDegradesToMiss(t *testing.T) {
	mr, client := testRedis(t)
	c := NewRedisResponseCache(client)

	c.Put(context.Background(), "fp-1", ports.CalculatorResult{Total: 1}, time.Hour)
	mr.Close()

	// Must not panic or error; an outage is just a miss.
	if _, ok := c.Get(context.Background(), "fp-1"); ok {
		t.Fatal("expected a miss while the backend is down")
	}
	c.Put(context.Background(), "fp-2", ports.CalculatorResult{Total: 2}, time.Hour)
}
