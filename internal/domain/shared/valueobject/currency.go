package valueobject

import (
	"strings"

	"github.com/invoicer/backend/internal/domain/shared"
	"golang.org/x/text/currency"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD" // US Dollar (default)
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	JPY Currency = "JPY" // Japanese Yen
	CAD Currency = "CAD" // Canadian Dollar
	AUD Currency = "AUD" // Australian Dollar
	CHF Currency = "CHF" // Swiss Franc
	CNY Currency = "CNY" // Chinese Yuan
	INR Currency = "INR" // Indian Rupee
	KWD Currency = "KWD" // Kuwaiti Dinar, three minor digits
)

// DefaultCurrency is the currency used when an invoice does not name one
const DefaultCurrency = USD

// ParseCurrency validates an ISO 4217 code against the CLDR currency table.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", shared.NewInvalidInputError("currency", "currency cannot be empty")
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", shared.NewInvalidInputError("currency", "unknown ISO 4217 currency code "+code)
	}
	return Currency(unit.String()), nil
}

// MustParseCurrency is ParseCurrency for compile-time constants; it panics on error.
func MustParseCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether c is a known ISO 4217 code
func (c Currency) IsValid() bool {
	_, err := ParseCurrency(string(c))
	return err == nil
}

// String returns the ISO code
func (c Currency) String() string {
	return string(c)
}

// Scale returns the number of minor-unit digits of the currency
// (2 for USD, 0 for JPY, 3 for KWD). Unknown codes fall back to 2.
func (c Currency) Scale() int32 {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}
