package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
)

// SQL-backed implementation of the CompanyRepository port.
type SQLCompanyRepository struct{ DB *sql.DB }

func NewSQLCompanyRepository(db *sql.DB) *SQLCompanyRepository {
	return &SQLCompanyRepository{DB: db}
}

// Return all companies stored in the database, in stable id order.
// Fee columns are numeric in the schema, so values arrive as floats and
// never need string coercion at computation time.
func (s *SQLCompanyRepository) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	if s.DB == nil {
		return nil, errors.New("company repository: DB is nil")
	}

	query := `
	SELECT
		company_id,
		name,
		mode,
		base_price,
		price_per_mile,
		customs_fee,
		service_fee,
		broker_fee,
		insurance_pct,
		fee_override,
		calculator_url,
		calculator_token
	FROM companies
	ORDER BY company_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: query companies table: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0, 16)
	for rows.Next() {
		var (
			c           domain.Company
			mode        string
			overrideRaw []byte
			calcURL     sql.NullString
			calcToken   sql.NullString
		)
		err := rows.Scan(
			&c.CompanyID,
			&c.Name,
			&mode,
			&c.Fees.BasePrice,
			&c.Fees.PricePerMile,
			&c.Fees.CustomsFee,
			&c.Fees.ServiceFee,
			&c.Fees.BrokerFee,
			&c.Fees.InsurancePct,
			&overrideRaw,
			&calcURL,
			&calcToken,
		)
		if err != nil {
			return nil, fmt.Errorf("list companies: scan row: %w", err)
		}

		c.Mode = domain.PricingMode(mode)
		c.CalculatorURL = calcURL.String
		c.CalculatorToken = calcToken.String

		if len(overrideRaw) > 0 {
			var o feeOverrideRow
			if err := json.Unmarshal(overrideRaw, &o); err != nil {
				return nil, fmt.Errorf("list companies: company_id=%d: parse fee_override: %w", c.CompanyID, err)
			}
			c.Override = o.toDomain()
		}

		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: row iteration: %w", err)
	}

	return companies, nil
}

type feeOverrideRow struct {
	BasePrice    *float64 `json:"base_price"`
	PricePerMile *float64 `json:"price_per_mile"`
	CustomsFee   *float64 `json:"customs_fee"`
	ServiceFee   *float64 `json:"service_fee"`
	BrokerFee    *float64 `json:"broker_fee"`
	InsurancePct *float64 `json:"insurance_pct"`
}

func (o feeOverrideRow) toDomain() *domain.FeeOverride {
	if o.BasePrice == nil && o.PricePerMile == nil && o.CustomsFee == nil &&
		o.ServiceFee == nil && o.BrokerFee == nil && o.InsurancePct == nil {
		return nil
	}
	return &domain.FeeOverride{
		BasePrice:    o.BasePrice,
		PricePerMile: o.PricePerMile,
		CustomsFee:   o.CustomsFee,
		ServiceFee:   o.ServiceFee,
		BrokerFee:    o.BrokerFee,
		InsurancePct: o.InsurancePct,
	}
}
