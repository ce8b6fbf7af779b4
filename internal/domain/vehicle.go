package domain

import "strings"

// AuctionSource identifies the US auction a vehicle was bought from.
type AuctionSource string

const (
	AuctionCopart  AuctionSource = "copart"
	AuctionIAAI    AuctionSource = "iaai"
	AuctionManheim AuctionSource = "manheim"
	AuctionAdesa   AuctionSource = "adesa"
	AuctionUnknown AuctionSource = "unknown"
)

// ParseAuctionSource maps free-text auction names onto the known set.
// Unrecognized values become AuctionUnknown rather than an error because
// the source field is advisory for pricing, not load-bearing.
func ParseAuctionSource(s string) AuctionSource {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copart":
		return AuctionCopart
	case "iaai", "iaa":
		return AuctionIAAI
	case "manheim":
		return AuctionManheim
	case "adesa":
		return AuctionAdesa
	default:
		return AuctionUnknown
	}
}

// Represents a single vehicle a quote batch is computed for.
// A Vehicle is an immutable snapshot owned by the caller; pricing never
// mutates it.
type Vehicle struct {
	VehicleID    int
	Source       AuctionSource
	Yard         string
	Price        float64
	TypeText     string
	CategoryHint string
	LotURL       string
}
