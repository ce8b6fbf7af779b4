package ports

import (
	"context"
	"shipping-quote-service/internal/domain"
)

// Port: per-company quote computation.
//
// Implementations must stay inside the strategy boundary: a provider
// failure, bad configuration, or malformed response becomes a Quote with
// status failed (or unpriced), never an error or panic escaping to the
// orchestrator.
type PricingStrategy interface {
	ComputeQuote(ctx context.Context, company domain.Company, distance domain.DistanceResult, req domain.QuoteRequest) domain.Quote
}
