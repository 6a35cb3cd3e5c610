package invoicing

import (
	"fmt"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Totals DTOs
// =============================================================================

// LineItemInput is one line of a totals request
type LineItemInput struct {
	Description string          `json:"description" binding:"max=1000"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// AdjustmentInput carries a tax or discount setting
type AdjustmentInput struct {
	Value   decimal.Decimal `json:"value"`
	Type    string          `json:"type" binding:"omitempty,oneof=percentage fixed"`
	Enabled bool            `json:"enabled"`
}

// ComputeTotalsRequest asks for the totals of an invoice draft
type ComputeTotalsRequest struct {
	Currency  string          `json:"currency" binding:"omitempty,len=3"`
	Locale    string          `json:"locale" binding:"max=35"`
	Items     []LineItemInput `json:"items" binding:"max=1000,dive"`
	Tax       AdjustmentInput `json:"tax"`
	Discount  AdjustmentInput `json:"discount"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// LineTotalResponse is a computed line
type LineTotalResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}

// TotalsResponse carries exact, rounded and formatted totals
type TotalsResponse struct {
	Currency  string                  `json:"currency"`
	Locale    string                  `json:"locale"`
	Lines     []LineTotalResponse     `json:"lines"`
	Exact     invoicing.InvoiceTotals `json:"exact"`
	Rounded   invoicing.InvoiceTotals `json:"rounded"`
	Formatted FormattedTotalsResponse `json:"formatted"`
	Warnings  []invoicing.Warning     `json:"warnings"`
}

// FormattedTotalsResponse holds display strings for the rounded totals
type FormattedTotalsResponse struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	TaxAmount      string `json:"tax_amount"`
	Total          string `json:"total"`
	TotalPaid      string `json:"total_paid"`
	BalanceDue     string `json:"balance_due"`
}

// Validate bounds every decimal of the request to what storage can hold
func (r ComputeTotalsRequest) Validate() error {
	for i, in := range r.Items {
		if err := valueobject.CheckStorable(fmt.Sprintf("items[%d].quantity", i), in.Quantity); err != nil {
			return err
		}
		if err := valueobject.CheckStorable(fmt.Sprintf("items[%d].rate", i), in.Rate); err != nil {
			return err
		}
	}
	if err := valueobject.CheckStorable("tax.value", r.Tax.Value); err != nil {
		return err
	}
	if err := valueobject.CheckStorable("discount.value", r.Discount.Value); err != nil {
		return err
	}
	return valueobject.CheckStorable("total_paid", r.TotalPaid)
}

// ToDomain converts the request's adjustments and items to domain values
func (r ComputeTotalsRequest) ToDomain() ([]invoicing.LineItem, invoicing.TaxConfig, invoicing.DiscountConfig) {
	items := make([]invoicing.LineItem, 0, len(r.Items))
	for _, in := range r.Items {
		items = append(items, invoicing.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
		})
	}
	tax := invoicing.TaxConfig{Rate: r.Tax.Value, Type: invoicing.AdjustmentType(r.Tax.Type)}
	discount := invoicing.DiscountConfig{
		Value:   r.Discount.Value,
		Type:    invoicing.AdjustmentType(r.Discount.Type),
		Enabled: r.Discount.Enabled,
	}
	return items, tax, discount
}

// =============================================================================
// Money DTOs
// =============================================================================

// FormatMoneyRequest asks for a display string
type FormatMoneyRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"required,len=3"`
	Locale   string          `json:"locale" binding:"max=35"`
}

// ParseMoneyRequest asks for the amount behind a display string
type ParseMoneyRequest struct {
	Text     string `json:"text" binding:"required,max=64"`
	Currency string `json:"currency" binding:"required,len=3"`
	Locale   string `json:"locale" binding:"max=35"`
}

// MoneyResponse is the result of format and parse
type MoneyResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Locale    string          `json:"locale"`
	Formatted string          `json:"formatted"`
}
