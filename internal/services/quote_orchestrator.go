package services

import (
	"context"
	"fmt"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/obs"
	"shipping-quote-service/internal/ports"
	"strings"
	"sync"
)

// QuoteOrchestrator fans a quote request out to every company's pricing
// strategy concurrently and assembles the batch result.
//
// Distance is resolved once per request. Per-company dispatch uses a
// settle-all join: one company's failure, timeout, or panic becomes a
// failed quote for that company only and never aborts siblings. Results
// preserve the caller's company order; ranking belongs to the
// presentation layer.
type QuoteOrchestrator struct {
	resolver  *DistanceResolver
	formula   ports.PricingStrategy
	delegated ports.PricingStrategy

	// Fan-out bound. The expected company count is small; the cap
	// exists so throttling can tighten without changing the contract.
	maxConcurrent int
}

func NewQuoteOrchestrator(
	resolver *DistanceResolver,
	formula ports.PricingStrategy,
	delegated ports.PricingStrategy,
) *QuoteOrchestrator {
	return &QuoteOrchestrator{
		resolver:      resolver,
		formula:       formula,
		delegated:     delegated,
		maxConcurrent: 8,
	}
}

// ComputeQuotesForVehicle prices a vehicle snapshot across companies.
func (o *QuoteOrchestrator) ComputeQuotesForVehicle(
	ctx context.Context,
	vehicle *domain.Vehicle,
	companies []*domain.Company,
	port string,
) (*domain.QuoteBatchResult, error) {
	if vehicle == nil {
		return nil, &domain.ValidationError{Field: "vehicle", Reason: "must be provided"}
	}
	if vehicle.Price <= 0 {
		return nil, &domain.ValidationError{Field: "vehicle.price", Reason: "must be positive"}
	}
	if strings.TrimSpace(vehicle.Yard) == "" {
		return nil, &domain.ValidationError{Field: "vehicle.yard", Reason: "must be non-empty"}
	}

	req := domain.QuoteRequest{Vehicle: vehicle, Port: port}
	return o.computeBatch(ctx, req, companies)
}

// ComputeQuotesForAddress prices a bare pickup address across companies.
func (o *QuoteOrchestrator) ComputeQuotesForAddress(
	ctx context.Context,
	address string,
	source domain.AuctionSource,
	companies []*domain.Company,
	port string,
) (*domain.QuoteBatchResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, &domain.ValidationError{Field: "address", Reason: "must be non-empty"}
	}

	req := domain.QuoteRequest{Address: address, Source: source, Port: port}
	return o.computeBatch(ctx, req, companies)
}

func (o *QuoteOrchestrator) computeBatch(
	ctx context.Context,
	req domain.QuoteRequest,
	companies []*domain.Company,
) (_ *domain.QuoteBatchResult, err error) {
	defer obs.Time(ctx, "quotes.computeBatch")(&err)

	if len(companies) == 0 {
		return nil, &domain.ValidationError{Field: "companies", Reason: "must not be empty"}
	}

	distance, err := o.resolver.DistanceToPort(ctx, req.Location(), req.AuctionSource(), req.Port)
	if err != nil {
		return nil, fmt.Errorf("compute batch: resolve distance: %w", err)
	}
	// No quote is meaningful without a usable distance; the fallback
	// table makes this unreachable short of a broken configuration.
	if distance.Miles <= 0 {
		return nil, &domain.ValidationError{Field: "distance", Reason: "could not establish a positive distance"}
	}

	limit := o.maxConcurrent
	if limit <= 0 || limit > len(companies) {
		limit = len(companies)
	}

	sem := make(chan struct{}, limit)
	quotes := make([]domain.Quote, len(companies))
	var wg sync.WaitGroup

	for i, company := range companies {
		wg.Add(1)
		go func(idx int, c domain.Company) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			quotes[idx] = o.dispatch(ctx, c, distance, req)
		}(i, *company)
	}

	wg.Wait()

	return &domain.QuoteBatchResult{Distance: distance, Quotes: quotes}, nil
}

// dispatch runs one company's strategy with panic isolation. A panic in
// a strategy (or a misconfigured mode) degrades to a failed quote.
func (o *QuoteOrchestrator) dispatch(
	ctx context.Context,
	company domain.Company,
	distance domain.DistanceResult,
	req domain.QuoteRequest,
) (q domain.Quote) {
	defer func() {
		if r := recover(); r != nil {
			q = failedQuote(company, nil, fmt.Sprintf("strategy panic: %v", r))
		}
	}()

	switch company.Mode {
	case domain.ModeFormula:
		return o.formula.ComputeQuote(ctx, company, distance, req)
	case domain.ModeDelegated:
		return o.delegated.ComputeQuote(ctx, company, distance, req)
	default:
		return failedQuote(company, nil, fmt.Sprintf("unknown pricing mode %q", company.Mode))
	}
}
