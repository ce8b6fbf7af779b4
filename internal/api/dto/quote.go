package dto

type VehicleRequest struct {
	VehicleID    int     `json:"vehicle_id"`
	Source       string  `json:"source"`
	Yard         string  `json:"yard"`
	Price        float64 `json:"price"`
	VehicleType  string  `json:"vehicle_type"`
	CategoryHint string  `json:"vehicle_category"`
	LotURL       string  `json:"lot_url"`
}

// One of Vehicle or Address must be set.
type QuoteRequest struct {
	Vehicle *VehicleRequest `json:"vehicle"`
	Address string          `json:"address"`
	Source  string          `json:"source"`
	Port    string          `json:"port"`
}

type QuoteResponse struct {
	CompanyID    int                `json:"company_id"`
	CompanyName  string             `json:"company_name"`
	Total        float64            `json:"total"`
	Currency     string             `json:"currency,omitempty"`
	DeliveryDays int                `json:"delivery_days,omitempty"`
	Breakdown    map[string]float64 `json:"breakdown,omitempty"`
	Status       string             `json:"status"`
	Note         string             `json:"note,omitempty"`
}

type QuoteBatchResponse struct {
	DistanceMiles  int             `json:"distance_miles"`
	Port           string          `json:"port"`
	DistanceSource string          `json:"distance_source"`
	Quotes         []QuoteResponse `json:"quotes"`
}
