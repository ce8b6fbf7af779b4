package ports

import (
	"context"
	"shipping-quote-service/internal/domain"
)

// Provenance records which cache tier produced a coordinate, for
// observability and test assertions.
type Provenance string

const (
	ProvenanceMemory Provenance = "memory"
	ProvenanceRedis  Provenance = "redis"
	ProvenanceSQL    Provenance = "sql"
	// Set by the resolver when the coordinate came straight from the
	// external geocoder.
	ProvenanceFresh Provenance = "fresh"
)

// Port: the tiered location -> coordinate cache.
//
// Resolve reports a miss as ok=false; tier-level errors are handled (and
// logged) inside the implementation because a cache problem must never
// fail a quote. Store writes through every tier; it likewise never
// returns an error to the caller.
type GeoCache interface {
	Resolve(ctx context.Context, key, source string) (domain.Coordinates, Provenance, bool)
	Store(ctx context.Context, key, source string, coord domain.Coordinates, distanceMiles int)
}
