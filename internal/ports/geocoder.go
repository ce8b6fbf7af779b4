package ports

import (
	"context"
	"shipping-quote-service/internal/domain"
)

// Port: forward geocoding against an external provider.
// The provider is treated as unreliable: it may be slow, return nothing,
// or error. Callers decide what a miss means.
type Geocoder interface {
	// Search resolves a free-text location to candidate coordinates,
	// best match first. An empty slice with a nil error is a valid
	// "no results" outcome.
	Search(ctx context.Context, query string, limit int) ([]domain.Coordinates, error)
}
