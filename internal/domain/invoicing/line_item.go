package invoicing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem is a single billable entry on an invoice.
// The total is always derived from quantity and rate, never stored.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// LineItemTotal returns quantity * rate
func LineItemTotal(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// NewLineItem creates a line item. An empty description is accepted because
// drafts are saved while the form is still being filled in.
func NewLineItem(description string, quantity, rate decimal.Decimal) (LineItem, error) {
	item := LineItem{
		ID:          uuid.New(),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		Rate:        rate,
	}
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return item, nil
}

// LineItemFromProduct copies a catalog product into a new line item.
// No link to the product is kept; later catalog edits do not touch the invoice.
func LineItemFromProduct(product catalog.Product, quantity decimal.Decimal) (LineItem, error) {
	return NewLineItem(product.LineDescription(), quantity, product.Rate)
}

// Total returns quantity * rate
func (i LineItem) Total() decimal.Decimal {
	return LineItemTotal(i.Quantity, i.Rate)
}

// Validate rejects negative quantity or rate
func (i LineItem) Validate() error {
	return i.validateAt("")
}

func (i LineItem) validateAt(prefix string) error {
	if i.Quantity.IsNegative() {
		return shared.NewInvalidInputError(prefix+"quantity", "quantity cannot be negative")
	}
	if i.Rate.IsNegative() {
		return shared.NewInvalidInputError(prefix+"rate", "rate cannot be negative")
	}
	if len(i.Description) > 1000 {
		return shared.NewInvalidInputError(prefix+"description", "description cannot exceed 1000 characters")
	}
	return nil
}

// WithQuantity returns a copy with the quantity replaced
func (i LineItem) WithQuantity(quantity decimal.Decimal) (LineItem, error) {
	i.Quantity = quantity
	if err := i.Validate(); err != nil {
		return LineItem{}, err
	}
	return i, nil
}

// WithRate returns a copy with the rate replaced
func (i LineItem) WithRate(rate decimal.Decimal) (LineItem, error) {
	i.Rate = rate
	if err := i.Validate(); err != nil {
		return LineItem{}, err
	}
	return i, nil
}

// validateItems checks every item, naming the offending index
func validateItems(items []LineItem) error {
	for idx, item := range items {
		if err := item.validateAt(fmt.Sprintf("items[%d].", idx)); err != nil {
			return err
		}
	}
	return nil
}
