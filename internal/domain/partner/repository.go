package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository reads customers from storage
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll returns every customer ordered by name
	FindAll(ctx context.Context) ([]Customer, error)
}

// CompanyRepository reads issuing companies from storage
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindAll(ctx context.Context) ([]Company, error)
}
