package services

import (
	"context"
	"math"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
)

// FormulaStrategy prices a company with local arithmetic over its fee
// schedule:
//
//	shipping = base + perMile*distance + customs + service + broker
//	insurance = (vehiclePrice + shipping) * insurancePct / 100
//
// For vehicle requests the quoted total is the landed figure: vehicle
// price plus shipping plus insurance. Insurance applies only when the
// request carries a vehicle price and the company configures a
// percentage. A company whose effective fees are all zero is unpriced,
// never a $0 quote.
type FormulaStrategy struct{}

var _ ports.PricingStrategy = (*FormulaStrategy)(nil)

func NewFormulaStrategy() *FormulaStrategy { return &FormulaStrategy{} }

func (s *FormulaStrategy) ComputeQuote(
	_ context.Context,
	company domain.Company,
	distance domain.DistanceResult,
	req domain.QuoteRequest,
) domain.Quote {
	fees := company.EffectiveFees()

	if fees.AllZero() {
		return domain.Quote{
			CompanyID:   company.CompanyID,
			CompanyName: company.Name,
			Status:      domain.StatusUnpriced,
			Note:        "no fee configuration",
		}
	}

	mileage := fees.PricePerMile * float64(distance.Miles)
	shipping := fees.BasePrice + mileage + fees.CustomsFee + fees.ServiceFee + fees.BrokerFee

	breakdown := map[string]float64{
		"base":    fees.BasePrice,
		"mileage": roundCents(mileage),
		"customs": fees.CustomsFee,
		"service": fees.ServiceFee,
		"broker":  fees.BrokerFee,
	}

	total := shipping
	if price := req.BuyPrice(); price > 0 {
		breakdown["vehicle_price"] = price
		total += price
		if fees.InsurancePct > 0 {
			insurance := (price + shipping) * fees.InsurancePct / 100
			breakdown["insurance"] = roundCents(insurance)
			total += insurance
		}
	}

	return domain.Quote{
		CompanyID:   company.CompanyID,
		CompanyName: company.Name,
		Total:       roundCents(total),
		Currency:    "USD",
		Breakdown:   breakdown,
		Status:      domain.StatusPriced,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
