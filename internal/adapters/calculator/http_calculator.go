package calculator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/obs"
	"shipping-quote-service/internal/ports"
	"strconv"
	"strings"
	"time"
)

// HTTPCalculatorClient calls a company's external pricing calculator.
// Endpoints and tokens are per-company, so one client instance serves
// every delegated company.
//
// Calculator deployments disagree on response shape: the total may be
// named transportation_total, shipping_total, or total, may arrive as a
// number or a numeric string, and the whole object may nest under a
// "data" key. normalizeResponse flattens all of that.
type HTTPCalculatorClient struct {
	session *http.Client
}

var _ ports.CalculatorClient = (*HTTPCalculatorClient)(nil)

func NewHTTPCalculatorClient(timeout time.Duration) *HTTPCalculatorClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPCalculatorClient{session: &http.Client{Timeout: timeout}}
}

type calculatePayload struct {
	BuyPrice        float64 `json:"buyprice"`
	Auction         string  `json:"auction"`
	VehicleType     string  `json:"vehicletype"`
	USACity         string  `json:"usacity,omitempty"`
	DestinationPort string  `json:"destinationport,omitempty"`
	VehicleCategory string  `json:"vehiclecategory,omitempty"`
	CopartURL       string  `json:"coparturl,omitempty"`
}

// Calculate posts the request to the company endpoint and normalizes
// the response.
func (c *HTTPCalculatorClient) Calculate(
	ctx context.Context,
	endpoint string,
	token string,
	calcReq ports.CalculatorRequest,
) (_ ports.CalculatorResult, err error) {
	defer obs.Time(ctx, "calculator.Calculate")(&err)

	if strings.TrimSpace(endpoint) == "" {
		return ports.CalculatorResult{}, errors.New("calculate: endpoint must be non-empty")
	}

	payload, err := json.Marshal(calculatePayload{
		BuyPrice:        calcReq.BuyPrice,
		Auction:         calcReq.Auction,
		VehicleType:     calcReq.VehicleType,
		USACity:         calcReq.USACity,
		DestinationPort: calcReq.DestinationPort,
		VehicleCategory: calcReq.VehicleCategory,
		CopartURL:       calcReq.CopartURL,
	})
	if err != nil {
		return ports.CalculatorResult{}, fmt.Errorf("marshal calculate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.CalculatorResult{}, fmt.Errorf("create calculate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.CalculatorResult{}, &domain.ProviderError{
			Provider: "calculator",
			Timeout:  errors.Is(err, context.DeadlineExceeded),
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return ports.CalculatorResult{}, &domain.CalculatorAPIError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.CalculatorResult{}, fmt.Errorf("decode calculate response: %w", err)
	}

	res, ok := normalizeResponse(body)
	if !ok {
		return ports.CalculatorResult{}, &domain.CalculatorAPIError{
			Status: resp.StatusCode,
			Body:   "response contains no usable total",
		}
	}

	return res, nil
}

// Field aliases checked in order; first valid numeric value wins.
var totalAliases = []string{"transportation_total", "shipping_total", "total"}

// normalizeResponse maps the provider's shape-shifting body onto a
// CalculatorResult. The body may nest the real object under "data".
func normalizeResponse(body map[string]any) (ports.CalculatorResult, bool) {
	if nested, ok := body["data"].(map[string]any); ok {
		body = nested
	}

	total, ok := pickNumber(body, totalAliases...)
	if !ok || total < 0 {
		return ports.CalculatorResult{}, false
	}

	res := ports.CalculatorResult{Total: total, Currency: "USD"}

	if cur, ok := body["currency"].(string); ok && cur != "" {
		res.Currency = strings.ToUpper(cur)
	}
	if miles, ok := pickNumber(body, "distance_miles"); ok && miles > 0 {
		res.DistanceMiles = int(miles)
	}
	if days, ok := pickNumber(body, "delivery_days", "estimated_days"); ok && days > 0 {
		res.DeliveryDays = int(days)
	}

	return res, true
}

// pickNumber tries the keys in order and returns the first value that
// parses as a number. Providers send both JSON numbers and numeric
// strings.
func pickNumber(body map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := body[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
