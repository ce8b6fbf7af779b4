package domain

// A single quote computation request. Exactly one of Vehicle or Address
// is set: vehicle requests carry the full auction snapshot, address
// requests price a bare pickup location.
type QuoteRequest struct {
	Vehicle *Vehicle
	Address string
	Source  AuctionSource
	Port    string
}

// Location returns the pickup location string the request is quoted from.
func (r QuoteRequest) Location() string {
	if r.Vehicle != nil {
		return r.Vehicle.Yard
	}
	return r.Address
}

// BuyPrice returns the vehicle acquisition price, or zero for address
// requests.
func (r QuoteRequest) BuyPrice() float64 {
	if r.Vehicle != nil {
		return r.Vehicle.Price
	}
	return 0
}

// AuctionSource returns the auction the request originates from.
func (r QuoteRequest) AuctionSource() AuctionSource {
	if r.Vehicle != nil {
		return r.Vehicle.Source
	}
	return r.Source
}
