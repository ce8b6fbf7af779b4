package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/obs"
	"strings"
)

// SQLGeoStore is the durable coordinate tier, keyed by (location, source)
// with a precomputed distance column for the default port. It is the
// authoritative record a cold process rebuilds the faster tiers from.
type SQLGeoStore struct {
	DB *sql.DB
}

func NewSQLGeoStore(db *sql.DB) *SQLGeoStore {
	return &SQLGeoStore{DB: db}
}

// Fetch the stored coordinate for a location/source pair.
func (s *SQLGeoStore) Get(
	ctx context.Context,
	location string,
	source string,
) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geo.store.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geo store: db is nil")
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return domain.Coordinates{}, false, errors.New("geo store get: location must not be empty")
	}

	q := `
	SELECT lon, lat
    FROM geocode_cache
    WHERE location = $1 AND source = $2;
	`

	var lon, lat float64
	err = s.DB.QueryRowContext(ctx, q, location, source).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geo store get: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Upsert a coordinate and its precomputed default-port distance.
// Same key always maps to the same coordinate, so a racing duplicate
// write is harmless.
func (s *SQLGeoStore) Put(
	ctx context.Context,
	location string,
	source string,
	coord domain.Coordinates,
	distanceMiles int,
) error {
	if s.DB == nil {
		return errors.New("geo store: db is nil")
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return errors.New("geo store put: location must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (location, source, lon, lat, distance_miles, updated_at)
    VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (location, source) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		distance_miles = EXCLUDED.distance_miles,
		updated_at = now();
	`

	if _, err := s.DB.ExecContext(ctx, q, location, source, coord.Lon, coord.Lat, distanceMiles); err != nil {
		return fmt.Errorf("geo store put location=%q: %w", location, err)
	}

	return nil
}
