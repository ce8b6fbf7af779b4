package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/obs"
	"shipping-quote-service/internal/ports"
	"strconv"
	"time"
)

// HTTPGeocoder resolves free-text locations against an OSM-style
// /search endpoint (Nominatim and compatible providers). The provider
// is unreliable by design: Search reports "no results" as an empty
// slice, and transient failures are retried with backoff.
//
// Safe for concurrent use.
type HTTPGeocoder struct {
	session *http.Client
	baseURL string
	apiKey  string
}

var _ ports.Geocoder = (*HTTPGeocoder)(nil)

func NewHTTPGeocoder(baseURL, apiKey string, timeout time.Duration) (*HTTPGeocoder, error) {
	if baseURL == "" {
		return nil, errors.New("geocoder base URL is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPGeocoder{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// The provider returns lat/lon as JSON strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search resolves a location to candidate coordinates, best match first.
func (g *HTTPGeocoder) Search(
	ctx context.Context,
	query string,
	limit int,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.Search")(&err)

	if query == "" {
		return nil, errors.New("geocode search: query must be non-empty")
	}
	if limit <= 0 {
		limit = 1
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "json")
		q.Set("limit", strconv.Itoa(limit))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	out := make([]domain.Coordinates, 0, len(decoded))
	for _, r := range decoded {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			return nil, fmt.Errorf("invalid coordinate format for %q", query)
		}
		out = append(out, domain.Coordinates{Lon: lon, Lat: lat})
	}

	return out, nil
}
