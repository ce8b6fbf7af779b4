package domain

// PricingMode selects how a company's quotes are computed.
type PricingMode string

const (
	// Local arithmetic over the company's fee schedule.
	ModeFormula PricingMode = "formula"
	// The company's external calculator API is the sole source of truth.
	ModeDelegated PricingMode = "delegated"
)

// Per-company fee configuration for formula pricing.
// All fields are non-negative decimals; they are validated at load time so
// computation never has to coerce strings.
type FeeSchedule struct {
	BasePrice    float64
	PricePerMile float64
	CustomsFee   float64
	ServiceFee   float64
	BrokerFee    float64
	InsurancePct float64
}

// AllZero reports whether every fee component is zero. Such a company is
// considered unpriced and must not produce a $0 quote.
func (f FeeSchedule) AllZero() bool {
	return f.BasePrice == 0 &&
		f.PricePerMile == 0 &&
		f.CustomsFee == 0 &&
		f.ServiceFee == 0 &&
		f.BrokerFee == 0 &&
		f.InsurancePct == 0
}

// FeeOverride replaces individual fee components without touching the base
// schedule. Nil fields keep the scheduled value.
type FeeOverride struct {
	BasePrice    *float64
	PricePerMile *float64
	CustomsFee   *float64
	ServiceFee   *float64
	BrokerFee    *float64
	InsurancePct *float64
}

// A shipping company competing for the quote.
type Company struct {
	CompanyID int
	Name      string
	Mode      PricingMode
	Fees      FeeSchedule
	Override  *FeeOverride

	// Delegated mode only.
	CalculatorURL   string
	CalculatorToken string
}

// EffectiveFees returns the fee schedule with any override applied.
func (c Company) EffectiveFees() FeeSchedule {
	fees := c.Fees
	o := c.Override
	if o == nil {
		return fees
	}
	if o.BasePrice != nil {
		fees.BasePrice = *o.BasePrice
	}
	if o.PricePerMile != nil {
		fees.PricePerMile = *o.PricePerMile
	}
	if o.CustomsFee != nil {
		fees.CustomsFee = *o.CustomsFee
	}
	if o.ServiceFee != nil {
		fees.ServiceFee = *o.ServiceFee
	}
	if o.BrokerFee != nil {
		fees.BrokerFee = *o.BrokerFee
	}
	if o.InsurancePct != nil {
		fees.InsurancePct = *o.InsurancePct
	}
	return fees
}
