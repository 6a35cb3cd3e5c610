package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AllCategories is the category sentinel that disables category filtering
const AllCategories = "All"

// Product is a reusable catalog entry that can be quick-added to invoices
type Product struct {
	shared.BaseEntity
	Name     string
	Details  string
	Rate     decimal.Decimal
	Category string
}

// NewProduct creates a new product
func NewProduct(name, details string, rate decimal.Decimal, category string) (*Product, error) {
	return NewProductWithID(uuid.New(), name, details, rate, category)
}

// NewProductWithID creates a product for an identifier issued elsewhere
func NewProductWithID(id uuid.UUID, name, details string, rate decimal.Decimal, category string) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntityWithID(id),
		Name:       name,
		Details:    strings.TrimSpace(details),
		Rate:       rate,
		Category:   category,
	}, nil
}

// Update replaces name, details and category
func (p *Product) Update(name, details, category string) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	p.Name = name
	p.Details = strings.TrimSpace(details)
	p.Category = category
	p.Touch()
	return nil
}

// SetRate changes the unit rate
func (p *Product) SetRate(rate decimal.Decimal) error {
	if err := validateRate(rate); err != nil {
		return err
	}
	p.Rate = rate
	p.Touch()
	return nil
}

// LineDescription is the text copied onto an invoice line
func (p *Product) LineDescription() string {
	if p.Details == "" {
		return p.Name
	}
	return p.Name + " - " + p.Details
}

// ProductRepository reads products from storage
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindAll returns every product ordered by name
	FindAll(ctx context.Context) ([]Product, error)
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewInvalidInputError("name", "product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewInvalidInputError("name", "product name cannot exceed 200 characters")
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewInvalidInputError("rate", "rate cannot be negative")
	}
	return nil
}

func validateCategory(category string) error {
	if category == AllCategories {
		return shared.NewInvalidInputError("category", "\"All\" is reserved and cannot be used as a category")
	}
	if len(category) > 100 {
		return shared.NewInvalidInputError("category", "category cannot exceed 100 characters")
	}
	return nil
}
