package domain

// QuoteStatus describes the outcome of pricing one company.
type QuoteStatus string

const (
	// A usable total was computed.
	StatusPriced QuoteStatus = "priced"
	// The company has no usable fee configuration ("contact for price").
	StatusUnpriced QuoteStatus = "unpriced"
	// Computation failed for this company only; siblings are unaffected.
	StatusFailed QuoteStatus = "failed"
)

// DistanceSource tags which path produced a distance so callers and tests
// can tell a geocoded result from the static fallback.
type DistanceSource string

const (
	DistanceGeocoded DistanceSource = "geocoded"
	DistanceFallback DistanceSource = "fallback-default"
)

// Resolved yard-to-port distance for one quote batch.
type DistanceResult struct {
	Miles  int
	Port   string
	Source DistanceSource
}

// The priced (or unpriced, or failed) result for a single company.
// Breakdown maps component names to values for auditability; for failed
// quotes it carries diagnostic fields instead.
type Quote struct {
	CompanyID    int
	CompanyName  string
	Total        float64
	Currency     string
	DeliveryDays int
	Breakdown    map[string]float64
	Status       QuoteStatus
	Note         string
}

// The assembled result of fanning one request out to every company.
// Quotes preserve the caller's company order and include failed and
// unpriced entries so the presentation layer can render them.
type QuoteBatchResult struct {
	Distance DistanceResult
	Quotes   []Quote
}
