package ports

import "context"

// Payload sent to a company's external calculator.
type CalculatorRequest struct {
	BuyPrice        float64
	Auction         string
	VehicleType     string
	USACity         string
	DestinationPort string
	VehicleCategory string
	CopartURL       string
}

// Normalized calculator response. Providers disagree on field names and
// nesting; the client flattens them into this shape.
type CalculatorResult struct {
	Total         float64
	Currency      string
	DistanceMiles int
	DeliveryDays  int
}

// Port: a company's delegated pricing API.
type CalculatorClient interface {
	Calculate(ctx context.Context, endpoint, token string, req CalculatorRequest) (CalculatorResult, error)
}
