package domain

import "math"

// Mean Earth radius in statute miles.
const earthRadiusMiles = 3958.8

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// IsZero reports whether both components are exactly zero, which no real
// yard or port in this system resolves to.
func (c Coordinates) IsZero() bool { return c.Lon == 0 && c.Lat == 0 }

// DistanceMilesTo returns the great-circle (haversine) distance to other
// in statute miles.
func (c Coordinates) DistanceMilesTo(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * arc
}
