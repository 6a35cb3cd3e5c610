package invoicing

import (
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AdjustmentType says whether a tax or discount value is a percentage of
// its base or a fixed amount in the invoice currency
type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)

// IsValid checks if the type is known. The zero value counts as percentage.
func (t AdjustmentType) IsValid() bool {
	switch t {
	case "", AdjustmentPercentage, AdjustmentFixed:
		return true
	}
	return false
}

// IsPercentage reports whether the value is a percentage
func (t AdjustmentType) IsPercentage() bool {
	return t == "" || t == AdjustmentPercentage
}

// String returns the string representation of AdjustmentType
func (t AdjustmentType) String() string {
	if t == "" {
		return string(AdjustmentPercentage)
	}
	return string(t)
}

// TaxConfig describes the tax applied to the taxable base
type TaxConfig struct {
	Rate decimal.Decimal `json:"rate"`
	Type AdjustmentType  `json:"type"`
}

// PercentageTax returns a percentage tax config
func PercentageTax(rate decimal.Decimal) TaxConfig {
	return TaxConfig{Rate: rate, Type: AdjustmentPercentage}
}

// FixedTax returns a fixed-amount tax config
func FixedTax(amount decimal.Decimal) TaxConfig {
	return TaxConfig{Rate: amount, Type: AdjustmentFixed}
}

// Validate rejects negative rates and unknown types
func (c TaxConfig) Validate() error {
	if !c.Type.IsValid() {
		return shared.NewInvalidInputError("tax.type", "tax type must be percentage or fixed")
	}
	if c.Rate.IsNegative() {
		return shared.NewInvalidInputError("tax.rate", "tax rate cannot be negative")
	}
	return nil
}

// DiscountConfig describes the optional invoice-level discount
type DiscountConfig struct {
	Value   decimal.Decimal `json:"value"`
	Type    AdjustmentType  `json:"type"`
	Enabled bool            `json:"enabled"`
}

// NoDiscount returns a disabled discount
func NoDiscount() DiscountConfig {
	return DiscountConfig{Type: AdjustmentPercentage}
}

// PercentageDiscount returns an enabled percentage discount
func PercentageDiscount(value decimal.Decimal) DiscountConfig {
	return DiscountConfig{Value: value, Type: AdjustmentPercentage, Enabled: true}
}

// FixedDiscount returns an enabled fixed-amount discount
func FixedDiscount(amount decimal.Decimal) DiscountConfig {
	return DiscountConfig{Value: amount, Type: AdjustmentFixed, Enabled: true}
}

// Validate rejects negative values and unknown types, enabled or not
func (c DiscountConfig) Validate() error {
	if !c.Type.IsValid() {
		return shared.NewInvalidInputError("discount.type", "discount type must be percentage or fixed")
	}
	if c.Value.IsNegative() {
		return shared.NewInvalidInputError("discount.value", "discount value cannot be negative")
	}
	return nil
}
