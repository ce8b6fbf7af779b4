package domain

import (
	"math"
	"testing"
)

func TestDistanceMilesToProperties(t *testing.T) {
	dallas := Coordinates{Lon: -96.797, Lat: 32.7767}
	poti := Coordinates{Lon: 41.6719, Lat: 42.1462}
	chicago := Coordinates{Lon: -87.6298, Lat: 41.8781}

	pairs := [][2]Coordinates{
		{dallas, poti},
		{dallas, chicago},
		{chicago, poti},
	}

	for _, p := range pairs {
		ab := p[0].DistanceMilesTo(p[1])
		ba := p[1].DistanceMilesTo(p[0])

		if ab < 0 {
			t.Fatalf("distance must be non-negative, got %f", ab)
		}
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
		}
	}

	if d := dallas.DistanceMilesTo(dallas); d != 0 {
		t.Fatalf("distance(A, A) = %f, want 0", d)
	}
}

func TestDistanceMilesToKnownDistance(t *testing.T) {
	// Dallas to Chicago is roughly 800 statute miles great-circle.
	dallas := Coordinates{Lon: -96.797, Lat: 32.7767}
	chicago := Coordinates{Lon: -87.6298, Lat: 41.8781}

	d := dallas.DistanceMilesTo(chicago)
	if d < 750 || d > 850 {
		t.Fatalf("dallas-chicago distance = %f, want ~800", d)
	}
}
