package ports

import (
	"context"
	"shipping-quote-service/internal/domain"
)

// Port: a boundary for retrieving Company entities from a data source.
type CompanyRepository interface {
	// Retrieve all companies eligible for quoting.
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
}
