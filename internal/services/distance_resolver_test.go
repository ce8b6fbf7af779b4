package services

import (
	"context"
	"errors"
	"shipping-quote-service/internal/adapters/cache"
	"shipping-quote-service/internal/domain"
	"testing"
)

type stubGeocoder struct {
	coords []domain.Coordinates
	err    error
	calls  int
}

func (s *stubGeocoder) Search(_ context.Context, _ string, _ int) ([]domain.Coordinates, error) {
	s.calls++
	return s.coords, s.err
}

func memoryOnlyGeoCache() *cache.TieredGeoCache {
	return cache.NewTieredGeoCache(cache.NewMemoryGeoCache(), nil, nil)
}

func TestDistanceToPortGeocodedPath(t *testing.T) {
	geocoder := &stubGeocoder{coords: []domain.Coordinates{{Lon: -96.797, Lat: 32.7767}}}
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), geocoder)

	res, err := resolver.DistanceToPort(context.Background(), "Dallas, TX", domain.AuctionIAAI, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != domain.DistanceGeocoded {
		t.Fatalf("source = %q, want %q", res.Source, domain.DistanceGeocoded)
	}
	if res.Port != DefaultPort {
		t.Fatalf("port = %q, want %q", res.Port, DefaultPort)
	}
	if res.Miles <= 0 {
		t.Fatalf("miles = %d, want > 0", res.Miles)
	}
}

func TestDistanceToPortCachesGeocodeResult(t *testing.T) {
	geocoder := &stubGeocoder{coords: []domain.Coordinates{{Lon: -96.797, Lat: 32.7767}}}
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), geocoder)

	first, err := resolver.DistanceToPort(context.Background(), "Dallas, TX", domain.AuctionIAAI, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := resolver.DistanceToPort(context.Background(), "  dallas,   tx ", domain.AuctionIAAI, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if geocoder.calls != 1 {
		t.Fatalf("geocoder calls = %d, want 1 (second lookup must hit the cache)", geocoder.calls)
	}
	if first.Miles != second.Miles {
		t.Fatalf("cached distance %d differs from fresh distance %d", second.Miles, first.Miles)
	}
}

func TestDistanceToPortEmptyGeocodeFallsBack(t *testing.T) {
	geocoder := &stubGeocoder{coords: nil}
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), geocoder)

	res, err := resolver.DistanceToPort(context.Background(), "Unknown Yard, ZZ", domain.AuctionUnknown, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != domain.DistanceFallback {
		t.Fatalf("source = %q, want %q", res.Source, domain.DistanceFallback)
	}
	if res.Miles != defaultFallbackMiles {
		t.Fatalf("miles = %d, want %d", res.Miles, defaultFallbackMiles)
	}
}

func TestDistanceToPortProviderErrorFallsBack(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("provider down")}
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), geocoder)

	res, err := resolver.DistanceToPort(context.Background(), "Dallas, TX", domain.AuctionCopart, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != domain.DistanceFallback {
		t.Fatalf("source = %q, want %q", res.Source, domain.DistanceFallback)
	}
	if res.Miles != 8000 {
		t.Fatalf("dallas fallback miles = %d, want 8000", res.Miles)
	}
}

func TestDistanceToPortUnknownPortDefaults(t *testing.T) {
	geocoder := &stubGeocoder{coords: []domain.Coordinates{{Lon: -96.797, Lat: 32.7767}}}
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), geocoder)

	res, err := resolver.DistanceToPort(context.Background(), "Dallas, TX", domain.AuctionIAAI, "atlantis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Port != DefaultPort {
		t.Fatalf("port = %q, want default %q", res.Port, DefaultPort)
	}
}

func TestDistanceToPortBlankLocation(t *testing.T) {
	resolver := NewDistanceResolver(memoryOnlyGeoCache(), &stubGeocoder{})

	_, err := resolver.DistanceToPort(context.Background(), "   ", domain.AuctionUnknown, "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
