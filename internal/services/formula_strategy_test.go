package services

import (
	"context"
	"shipping-quote-service/internal/domain"
	"testing"
)

func TestFormulaStrategyShippingTotal(t *testing.T) {
	company := domain.Company{
		CompanyID: 1,
		Name:      "Caucasus Auto Line",
		Mode:      domain.ModeFormula,
		Fees: domain.FeeSchedule{
			BasePrice:    800,
			PricePerMile: 0.10,
			CustomsFee:   400,
			ServiceFee:   300,
			BrokerFee:    150,
		},
	}
	vehicle := &domain.Vehicle{Price: 5000, Source: domain.AuctionIAAI, Yard: "Dallas, TX"}
	distance := domain.DistanceResult{Miles: 8000, Port: DefaultPort, Source: domain.DistanceFallback}

	q := NewFormulaStrategy().ComputeQuote(context.Background(), company, distance, domain.QuoteRequest{Vehicle: vehicle})

	if q.Status != domain.StatusPriced {
		t.Fatalf("status = %q, want priced", q.Status)
	}
	// shipping = 800 + 0.10*8000 + 400 + 300 + 150 = 2450; no insurance
	// at 0%; landed total adds the 5000 vehicle price.
	if q.Total != 7450 {
		t.Fatalf("total = %f, want 7450", q.Total)
	}
	if q.Breakdown["mileage"] != 800 {
		t.Fatalf("mileage component = %f, want 800", q.Breakdown["mileage"])
	}
	if q.Breakdown["vehicle_price"] != 5000 {
		t.Fatalf("vehicle_price component = %f, want 5000", q.Breakdown["vehicle_price"])
	}
}

func TestFormulaStrategyInsurance(t *testing.T) {
	company := domain.Company{
		CompanyID: 2,
		Name:      "Poti Express",
		Mode:      domain.ModeFormula,
		Fees: domain.FeeSchedule{
			BasePrice:    800,
			PricePerMile: 0.10,
			CustomsFee:   400,
			ServiceFee:   300,
			BrokerFee:    150,
			InsurancePct: 2,
		},
	}
	vehicle := &domain.Vehicle{Price: 5000, Yard: "Dallas, TX"}
	distance := domain.DistanceResult{Miles: 8000}

	q := NewFormulaStrategy().ComputeQuote(context.Background(), company, distance, domain.QuoteRequest{Vehicle: vehicle})

	// shipping = 2450; insurance = (5000 + 2450) * 2% = 149;
	// landed total = 5000 + 2450 + 149.
	if q.Breakdown["insurance"] != 149 {
		t.Fatalf("insurance = %f, want 149", q.Breakdown["insurance"])
	}
	if q.Total != 7599 {
		t.Fatalf("total = %f, want 7599", q.Total)
	}
}

func TestFormulaStrategyNoInsuranceForAddressRequest(t *testing.T) {
	company := domain.Company{
		Fees: domain.FeeSchedule{BasePrice: 1000, InsurancePct: 5},
	}
	distance := domain.DistanceResult{Miles: 7000}

	q := NewFormulaStrategy().ComputeQuote(context.Background(), company, distance, domain.QuoteRequest{Address: "Dallas, TX"})

	if _, ok := q.Breakdown["insurance"]; ok {
		t.Fatal("insurance must not apply without a vehicle price")
	}
	if q.Total != 1000 {
		t.Fatalf("total = %f, want 1000", q.Total)
	}
}

func TestFormulaStrategyAllZeroFeesIsUnpriced(t *testing.T) {
	company := domain.Company{CompanyID: 4, Name: "Black Sea Logistics", Mode: domain.ModeFormula}
	distance := domain.DistanceResult{Miles: 8000}

	q := NewFormulaStrategy().ComputeQuote(context.Background(), company, distance, domain.QuoteRequest{Address: "Dallas, TX"})

	if q.Status != domain.StatusUnpriced {
		t.Fatalf("status = %q, want unpriced", q.Status)
	}
	if q.Total != 0 {
		t.Fatalf("unpriced quote must not carry a total, got %f", q.Total)
	}
}

func TestFormulaStrategyOverrideReplacesComponent(t *testing.T) {
	base := 500.0
	company := domain.Company{
		Fees:     domain.FeeSchedule{BasePrice: 800, CustomsFee: 400},
		Override: &domain.FeeOverride{BasePrice: &base},
	}
	distance := domain.DistanceResult{Miles: 8000}

	q := NewFormulaStrategy().ComputeQuote(context.Background(), company, distance, domain.QuoteRequest{Address: "Dallas, TX"})

	if q.Breakdown["base"] != 500 {
		t.Fatalf("base = %f, want overridden 500", q.Breakdown["base"])
	}
	if q.Total != 900 {
		t.Fatalf("total = %f, want 900", q.Total)
	}
}
