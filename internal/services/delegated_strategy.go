package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
	"strings"
	"time"
)

// DelegatedCalculatorStrategy prices a company by calling its external
// calculator API. Responses are cached by a fingerprint of the
// price-relevant request fields, so a warm cache answers without a
// network call. Any provider failure is contained as a failed quote for
// that company; the strategy never returns an error to the orchestrator.
type DelegatedCalculatorStrategy struct {
	client      ports.CalculatorClient
	cache       ports.ResponseCache
	cacheTTL    time.Duration
	callTimeout time.Duration
}

var _ ports.PricingStrategy = (*DelegatedCalculatorStrategy)(nil)

func NewDelegatedCalculatorStrategy(client ports.CalculatorClient, cache ports.ResponseCache) *DelegatedCalculatorStrategy {
	return &DelegatedCalculatorStrategy{
		client:      client,
		cache:       cache,
		cacheTTL:    24 * time.Hour,
		callTimeout: 15 * time.Second,
	}
}

func (s *DelegatedCalculatorStrategy) ComputeQuote(
	ctx context.Context,
	company domain.Company,
	distance domain.DistanceResult,
	req domain.QuoteRequest,
) domain.Quote {
	if strings.TrimSpace(company.CalculatorURL) == "" {
		return failedQuote(company, nil, "calculator endpoint not configured")
	}
	if s.client == nil {
		return failedQuote(company, nil, "calculator client not configured")
	}

	calcReq := s.buildRequest(distance, req)
	fp := Fingerprint(calcReq)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, fp); ok {
			return pricedQuote(company, cached)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	res, err := s.client.Calculate(callCtx, company.CalculatorURL, company.CalculatorToken, calcReq)
	if err != nil {
		return failedQuote(company, err, "calculator call failed")
	}

	if s.cache != nil {
		s.cache.Put(ctx, fp, res, s.cacheTTL)
	}

	return pricedQuote(company, res)
}

func (s *DelegatedCalculatorStrategy) buildRequest(
	distance domain.DistanceResult,
	req domain.QuoteRequest,
) ports.CalculatorRequest {
	var typeText, categoryHint, lotURL string
	if req.Vehicle != nil {
		typeText = req.Vehicle.TypeText
		categoryHint = req.Vehicle.CategoryHint
		lotURL = req.Vehicle.LotURL
	}
	weight, category := ClassifyVehicle(typeText, categoryHint)

	return ports.CalculatorRequest{
		BuyPrice:        req.BuyPrice(),
		Auction:         string(req.AuctionSource()),
		VehicleType:     weight,
		USACity:         cityFromLocation(req.Location()),
		DestinationPort: distance.Port,
		VehicleCategory: category,
		CopartURL:       lotURL,
	}
}

// Fingerprint is a stable digest of the normalized request fields that
// affect price. Request metadata (lot URL, timestamps) is excluded so
// identical pricing inputs share a cache entry.
func Fingerprint(req ports.CalculatorRequest) string {
	canonical := fmt.Sprintf(
		"%.2f|%s|%s|%s|%s|%s",
		req.BuyPrice,
		strings.ToLower(req.Auction),
		strings.ToLower(req.VehicleType),
		NormalizeLocation(req.USACity),
		strings.ToLower(req.DestinationPort),
		strings.ToLower(req.VehicleCategory),
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(canonical)))
}

// cityFromLocation extracts the city part of a yard name like
// "Dallas, TX" for providers that key pricing on city alone.
func cityFromLocation(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

func pricedQuote(company domain.Company, res ports.CalculatorResult) domain.Quote {
	currency := res.Currency
	if currency == "" {
		currency = "USD"
	}

	breakdown := map[string]float64{"provider_total": res.Total}
	if res.DistanceMiles > 0 {
		breakdown["provider_distance_miles"] = float64(res.DistanceMiles)
	}

	return domain.Quote{
		CompanyID:    company.CompanyID,
		CompanyName:  company.Name,
		Total:        res.Total,
		Currency:     currency,
		DeliveryDays: res.DeliveryDays,
		Breakdown:    breakdown,
		Status:       domain.StatusPriced,
	}
}

func failedQuote(company domain.Company, err error, note string) domain.Quote {
	breakdown := map[string]float64{}

	var apiErr *domain.CalculatorAPIError
	if errors.As(err, &apiErr) {
		breakdown["provider_status"] = float64(apiErr.Status)
	}
	var provErr *domain.ProviderError
	if errors.As(err, &provErr) && provErr.Timeout {
		breakdown["provider_timeout"] = 1
	}

	if err != nil {
		note = fmt.Sprintf("%s: %v", note, err)
	}

	return domain.Quote{
		CompanyID:   company.CompanyID,
		CompanyName: company.Name,
		Breakdown:   breakdown,
		Status:      domain.StatusFailed,
		Note:        note,
	}
}
