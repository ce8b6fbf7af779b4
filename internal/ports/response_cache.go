package ports

import (
	"context"
	"time"
)

// Port: fingerprint-keyed cache for full calculator responses.
//
// Distinct from GeoCache: keys are fingerprints of the price-relevant
// request fields, values are whole provider results. Writes are
// best-effort and a backend outage degrades to always-miss; neither
// operation ever fails a request.
type ResponseCache interface {
	Get(ctx context.Context, fingerprint string) (CalculatorResult, bool)
	Put(ctx context.Context, fingerprint string, res CalculatorResult, ttl time.Duration)
}
