package invoicing

import (
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Warning codes reported alongside computed totals
const (
	WarnTaxRateOutOfRange  = "TAX_RATE_OUT_OF_RANGE"
	WarnDiscountOutOfRange = "DISCOUNT_OUT_OF_RANGE"
	WarnDiscountClamped    = "DISCOUNT_EXCEEDS_SUBTOTAL"
	WarnOverpaid           = "OVERPAID"
)

var hundred = decimal.NewFromInt(100)

// Warning is a non-fatal observation about the inputs of a calculation
type Warning struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// InvoiceTotals holds every derived amount of an invoice. Values are exact;
// use Rounded for display.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableBase    decimal.Decimal `json:"taxable_base"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	BalanceDue     decimal.Decimal `json:"balance_due"`
	Overpaid       bool            `json:"overpaid"`
	Warnings       []Warning       `json:"warnings,omitempty"`
}

// ComputeTotals derives subtotal, discount, tax, total and balance due.
//
// The discount is applied before tax and clamped to [0, subtotal]. A fixed
// tax is added as-is. Balance due is signed: overpayment yields a negative
// balance, sets Overpaid and adds a warning. Empty items give zero totals.
func ComputeTotals(items []LineItem, tax TaxConfig, discount DiscountConfig, totalPaid decimal.Decimal) (InvoiceTotals, error) {
	if err := validateItems(items); err != nil {
		return InvoiceTotals{}, err
	}
	if err := tax.Validate(); err != nil {
		return InvoiceTotals{}, err
	}
	if err := discount.Validate(); err != nil {
		return InvoiceTotals{}, err
	}
	if totalPaid.IsNegative() {
		return InvoiceTotals{}, shared.NewInvalidInputError("total_paid", "total paid cannot be negative")
	}

	var warnings []Warning

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	discountAmount := decimal.Zero
	if discount.Enabled {
		if discount.Type.IsPercentage() {
			if discount.Value.GreaterThan(hundred) {
				warnings = append(warnings, Warning{
					Code:    WarnDiscountOutOfRange,
					Field:   "discount.value",
					Message: "discount percentage is above 100",
				})
			}
			discountAmount = subtotal.Mul(discount.Value).Div(hundred)
		} else {
			discountAmount = discount.Value
		}
		if discountAmount.GreaterThan(subtotal) {
			warnings = append(warnings, Warning{
				Code:    WarnDiscountClamped,
				Field:   "discount.value",
				Message: "discount exceeds the subtotal and was limited to it",
			})
			discountAmount = subtotal
		}
	}

	taxableBase := subtotal.Sub(discountAmount)

	var taxAmount decimal.Decimal
	if tax.Type.IsPercentage() {
		if tax.Rate.GreaterThan(hundred) {
			warnings = append(warnings, Warning{
				Code:    WarnTaxRateOutOfRange,
				Field:   "tax.rate",
				Message: "tax percentage is above 100",
			})
		}
		taxAmount = taxableBase.Mul(tax.Rate).Div(hundred)
	} else {
		taxAmount = tax.Rate
	}

	total := taxableBase.Add(taxAmount)
	balanceDue := total.Sub(totalPaid)

	overpaid := balanceDue.IsNegative()
	if overpaid {
		warnings = append(warnings, Warning{
			Code:    WarnOverpaid,
			Field:   "total_paid",
			Message: "payments exceed the invoice total",
		})
	}

	return InvoiceTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableBase:    taxableBase,
		TaxAmount:      taxAmount,
		Total:          total,
		TotalPaid:      totalPaid,
		BalanceDue:     balanceDue,
		Overpaid:       overpaid,
		Warnings:       warnings,
	}, nil
}

// Rounded returns a copy with every amount rounded half away from zero to
// scale fractional digits
func (t InvoiceTotals) Rounded(scale int32) InvoiceTotals {
	r := t
	r.Subtotal = t.Subtotal.Round(scale)
	r.DiscountAmount = t.DiscountAmount.Round(scale)
	r.TaxableBase = t.TaxableBase.Round(scale)
	r.TaxAmount = t.TaxAmount.Round(scale)
	r.Total = t.Total.Round(scale)
	r.TotalPaid = t.TotalPaid.Round(scale)
	r.BalanceDue = t.BalanceDue.Round(scale)
	if t.Warnings != nil {
		r.Warnings = append([]Warning(nil), t.Warnings...)
	}
	return r
}

// HasWarning reports whether a warning with the given code was raised
func (t InvoiceTotals) HasWarning(code string) bool {
	for _, w := range t.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
