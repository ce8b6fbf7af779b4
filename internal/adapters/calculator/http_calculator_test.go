package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
	"testing"
	"time"
)

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCalculateResponseShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want ports.CalculatorResult
	}{
		{
			"flat transportation_total",
			`{"transportation_total": 2500, "currency": "usd", "distance_miles": 6500}`,
			ports.CalculatorResult{Total: 2500, Currency: "USD", DistanceMiles: 6500},
		},
		{
			"shipping_total alias",
			`{"shipping_total": 2750}`,
			ports.CalculatorResult{Total: 2750, Currency: "USD"},
		},
		{
			"nested under data",
			`{"data": {"total": 3100, "currency": "EUR"}}`,
			ports.CalculatorResult{Total: 3100, Currency: "EUR"},
		},
		{
			"numeric string total",
			`{"total": "2450.50"}`,
			ports.CalculatorResult{Total: 2450.50, Currency: "USD"},
		},
		{
			"alias priority",
			`{"total": 1, "transportation_total": 2500}`,
			ports.CalculatorResult{Total: 2500, Currency: "USD"},
		},
	}

	client := NewHTTPCalculatorClient(5 * time.Second)
	req := ports.CalculatorRequest{BuyPrice: 5000, Auction: "iaai", VehicleType: "standard"}

	for _, c := range cases {
		srv := serve(t, http.StatusOK, c.body)

		got, err := client.Calculate(context.Background(), srv.URL, "", req)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestCalculateServerError(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, `upstream broke`)
	client := NewHTTPCalculatorClient(5 * time.Second)

	_, err := client.Calculate(context.Background(), srv.URL, "", ports.CalculatorRequest{})

	var apiErr *domain.CalculatorAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected CalculatorAPIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", apiErr.Status)
	}
}

func TestCalculateNoUsableTotal(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"message": "ok but useless"}`)
	client := NewHTTPCalculatorClient(5 * time.Second)

	_, err := client.Calculate(context.Background(), srv.URL, "", ports.CalculatorRequest{})

	var apiErr *domain.CalculatorAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected CalculatorAPIError for a total-less body, got %v", err)
	}
}

func TestCalculateSendsAuthAndPayload(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = jsonDecode(r, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 1000}`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPCalculatorClient(5 * time.Second)
	req := ports.CalculatorRequest{
		BuyPrice:        5000,
		Auction:         "iaai",
		VehicleType:     "standard",
		USACity:         "Dallas",
		DestinationPort: "poti",
		VehicleCategory: "Sedan",
	}

	if _, err := client.Calculate(context.Background(), srv.URL, "secret", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization = %q, want bearer token", gotAuth)
	}
	if gotBody["buyprice"] != float64(5000) || gotBody["auction"] != "iaai" || gotBody["usacity"] != "Dallas" {
		t.Fatalf("payload = %v, missing expected fields", gotBody)
	}
	if _, ok := gotBody["coparturl"]; ok {
		t.Fatal("empty coparturl must be omitted")
	}
}
