package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCompaniesQuery := `
	CREATE TABLE IF NOT EXISTS companies (
		company_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT 'formula',
		base_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_per_mile DOUBLE PRECISION NOT NULL DEFAULT 0,
		customs_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		service_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		broker_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		insurance_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		fee_override JSONB,
		calculator_url TEXT,
		calculator_token TEXT
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        location TEXT NOT NULL,
        source TEXT NOT NULL,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL,
        distance_miles INTEGER,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        PRIMARY KEY (location, source)
    );
	`

	statements := []string{
		createCompaniesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CompanySeed struct {
	CompanyID       int             `json:"company_id"`
	Name            string          `json:"name"`
	Mode            string          `json:"mode"`
	BasePrice       float64         `json:"base_price"`
	PricePerMile    float64         `json:"price_per_mile"`
	CustomsFee      float64         `json:"customs_fee"`
	ServiceFee      float64         `json:"service_fee"`
	BrokerFee       float64         `json:"broker_fee"`
	InsurancePct    float64         `json:"insurance_pct"`
	FeeOverride     json.RawMessage `json:"fee_override"`
	CalculatorURL   string          `json:"calculator_url"`
	CalculatorToken string          `json:"calculator_token"`
}

// Populate the companies table from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed companies: read %q: %w", jsonPath, err)
	}

	var data []CompanySeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed companies: parse json: %w", err)
	}

	for i, item := range data {
		if item.CompanyID <= 0 {
			return fmt.Errorf("seed companies: invalid company_id at index %d: %d", i+1, item.CompanyID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed companies: item at index %d: name cannot be empty", i+1)
		}
		switch item.Mode {
		case "", "formula", "delegated":
		default:
			return fmt.Errorf("seed companies: company_id=%d: unknown mode %q", item.CompanyID, item.Mode)
		}
		// Fee fields must be usable numbers at computation time.
		for name, v := range map[string]float64{
			"base_price":     item.BasePrice,
			"price_per_mile": item.PricePerMile,
			"customs_fee":    item.CustomsFee,
			"service_fee":    item.ServiceFee,
			"broker_fee":     item.BrokerFee,
			"insurance_pct":  item.InsurancePct,
		} {
			if v < 0 {
				return fmt.Errorf("seed companies: company_id=%d: %s must be non-negative", item.CompanyID, name)
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed companies: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO companies (
		company_id, name, mode,
		base_price, price_per_mile, customs_fee, service_fee, broker_fee, insurance_pct,
		fee_override, calculator_url, calculator_token
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (company_id) DO UPDATE
	SET name = EXCLUDED.name,
		mode = EXCLUDED.mode,
		base_price = EXCLUDED.base_price,
		price_per_mile = EXCLUDED.price_per_mile,
		customs_fee = EXCLUDED.customs_fee,
		service_fee = EXCLUDED.service_fee,
		broker_fee = EXCLUDED.broker_fee,
		insurance_pct = EXCLUDED.insurance_pct,
		fee_override = EXCLUDED.fee_override,
		calculator_url = EXCLUDED.calculator_url,
		calculator_token = EXCLUDED.calculator_token;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed companies: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range data {
		mode := c.Mode
		if mode == "" {
			mode = "formula"
		}

		var override any
		if len(c.FeeOverride) > 0 && string(c.FeeOverride) != "null" {
			override = []byte(c.FeeOverride)
		}

		_, err := stmt.Exec(
			c.CompanyID, strings.TrimSpace(c.Name), mode,
			c.BasePrice, c.PricePerMile, c.CustomsFee, c.ServiceFee, c.BrokerFee, c.InsurancePct,
			override, nullIfEmpty(c.CalculatorURL), nullIfEmpty(c.CalculatorToken),
		)
		if err != nil {
			return fmt.Errorf("seed companies: insert company_id=%d: %w", c.CompanyID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed companies: commit tx: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
