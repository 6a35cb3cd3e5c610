package valueobject

import (
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Limits for amounts accepted from callers. They match the decimal(20,4)
// columns amounts are stored in.
const (
	MaxIntegerDigits  = 16
	MaxFractionDigits = 4

	// maxExponent bounds the exponent of any decimal before it is rounded or
	// rescaled, both of which cost 10^|exponent|.
	maxExponent = 32
)

// CheckMagnitude rejects decimals whose integer part has more than
// MaxIntegerDigits digits or whose exponent is out of range.
// Excess fractional digits are allowed; display rounds them away.
func CheckMagnitude(field string, d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > maxExponent || exp < -maxExponent {
		return shared.NewInvalidInputError(field, "value is out of range")
	}
	if d.IsZero() {
		return nil
	}
	if int64(d.NumDigits())+int64(exp) > MaxIntegerDigits {
		return shared.NewInvalidInputError(field, "value is out of range")
	}
	return nil
}

// CheckStorable applies CheckMagnitude and also rejects more than
// MaxFractionDigits significant fractional digits
func CheckStorable(field string, d decimal.Decimal) error {
	if err := CheckMagnitude(field, d); err != nil {
		return err
	}
	if d.Exponent() < -MaxFractionDigits && !d.Equal(d.Truncate(MaxFractionDigits)) {
		return shared.NewInvalidInputError(field, "value has more than 4 decimal places")
	}
	return nil
}
