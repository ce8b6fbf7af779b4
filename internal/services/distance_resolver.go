package services

import (
	"context"
	"log"
	"math"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
	"strings"
	"time"
)

// DefaultPort is the canonical destination when a request names none.
const DefaultPort = "poti"

// Fixed destination port coordinates. Unknown ports fall back to the
// default port's entry.
var portCoordinates = map[string]domain.Coordinates{
	"poti":        {Lon: 41.6719, Lat: 42.1462},
	"batumi":      {Lon: 41.6367, Lat: 41.6460},
	"klaipeda":    {Lon: 21.1443, Lat: 55.7033},
	"bremerhaven": {Lon: 8.5809, Lat: 53.5396},
	"rotterdam":   {Lon: 4.4777, Lat: 51.9244},
}

// Static per-yard heuristic used when geocoding is unavailable.
// Substring match against the normalized yard name.
var fallbackDistanceMiles = []struct {
	substr string
	miles  int
}{
	{"new jersey", 6200},
	{"savannah", 6800},
	{"miami", 6900},
	{"chicago", 7200},
	{"houston", 7800},
	{"dallas", 8000},
	{"los angeles", 9500},
}

const defaultFallbackMiles = 8000

// DistanceResolver turns a yard or address into a whole-mile distance
// to a destination port. It consults the tiered geo cache first, then
// the external geocoder, and guarantees an answer via the static
// fallback table so a quote batch never blocks on geocoding.
type DistanceResolver struct {
	cache    ports.GeoCache
	geocoder ports.Geocoder
	timeout  time.Duration
}

func NewDistanceResolver(cache ports.GeoCache, geocoder ports.Geocoder) *DistanceResolver {
	return &DistanceResolver{
		cache:    cache,
		geocoder: geocoder,
		timeout:  10 * time.Second,
	}
}

// NormalizeLocation produces the cache key form of a location:
// lower-cased with collapsed whitespace.
func NormalizeLocation(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizePort maps a requested port onto the coordinate table,
// defaulting unknown or empty ports to the canonical one.
func NormalizePort(port string) string {
	p := NormalizeLocation(port)
	if _, ok := portCoordinates[p]; !ok {
		return DefaultPort
	}
	return p
}

// DistanceToPort resolves the distance from a location to a destination
// port. The result is tagged with the path that produced it so callers
// and tests can tell a geocoded distance from the static fallback.
func (r *DistanceResolver) DistanceToPort(
	ctx context.Context,
	location string,
	source domain.AuctionSource,
	port string,
) (domain.DistanceResult, error) {
	key := NormalizeLocation(location)
	if key == "" {
		return domain.DistanceResult{}, &domain.ValidationError{Field: "location", Reason: "must be non-empty"}
	}

	portCode := NormalizePort(port)
	portCoord := portCoordinates[portCode]

	if r.cache != nil {
		if coord, _, ok := r.cache.Resolve(ctx, key, string(source)); ok {
			return geocodedResult(coord, portCoord, portCode), nil
		}
	}

	coord, ok := r.geocode(ctx, key)
	if !ok {
		return domain.DistanceResult{
			Miles:  fallbackMiles(key),
			Port:   portCode,
			Source: domain.DistanceFallback,
		}, nil
	}

	if r.cache != nil {
		precomputed := int(math.Round(coord.DistanceMilesTo(portCoordinates[DefaultPort])))
		r.cache.Store(ctx, key, string(source), coord, precomputed)
	}

	return geocodedResult(coord, portCoord, portCode), nil
}

// geocode calls the external provider with a bounded timeout. Any
// failure or empty result is a miss; the decision to fall back belongs
// to the caller.
func (r *DistanceResolver) geocode(ctx context.Context, key string) (domain.Coordinates, bool) {
	if r.geocoder == nil {
		return domain.Coordinates{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	results, err := r.geocoder.Search(ctx, key, 1)
	if err != nil {
		log.Printf("geocode failed for %q, using fallback distance: %v", key, err)
		return domain.Coordinates{}, false
	}
	if len(results) == 0 {
		log.Printf("geocode returned no results for %q, using fallback distance", key)
		return domain.Coordinates{}, false
	}

	return results[0], true
}

func geocodedResult(coord, portCoord domain.Coordinates, portCode string) domain.DistanceResult {
	return domain.DistanceResult{
		Miles:  int(math.Round(coord.DistanceMilesTo(portCoord))),
		Port:   portCode,
		Source: domain.DistanceGeocoded,
	}
}

func fallbackMiles(key string) int {
	for _, f := range fallbackDistanceMiles {
		if strings.Contains(key, f.substr) {
			return f.miles
		}
	}
	return defaultFallbackMiles
}
