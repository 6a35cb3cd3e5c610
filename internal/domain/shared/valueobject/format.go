package valueobject

import (
	"strings"
	"sync"
	"unicode"

	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used by callers that have no user locale
var DefaultLocale = language.AmericanEnglish

// ParseLocale parses a BCP 47 tag such as "de-DE". Blank input yields
// DefaultLocale.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, shared.NewInvalidInputError("locale", "invalid locale "+s)
	}
	return tag, nil
}

// Separators holds the digit grouping and decimal symbols of a locale
type Separators struct {
	Group   string
	Decimal string
}

var fallbackSeparators = Separators{Group: ",", Decimal: "."}

// separatorCache memoizes separators per language tag. Entries are immutable
// once stored, so concurrent formatting in different locales never interferes.
var separatorCache sync.Map

// SeparatorsFor returns the grouping and decimal symbols CLDR defines for the
// locale. They are read back from a message printer bound to the tag, so no
// process-wide locale is consulted.
func SeparatorsFor(locale language.Tag) Separators {
	if v, ok := separatorCache.Load(locale); ok {
		return v.(Separators)
	}

	p := message.NewPrinter(locale)
	seps := Separators{
		Group:   firstSymbolRun(p.Sprintf("%d", 1234567)),
		Decimal: firstSymbolRun(p.Sprintf("%.1f", 1.5)),
	}
	if seps.Decimal == "" || seps.Decimal == seps.Group {
		seps = fallbackSeparators
	}

	separatorCache.Store(locale, seps)
	return seps
}

// firstSymbolRun returns the first run of non-digit characters in s
func firstSymbolRun(s string) string {
	var run strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				break
			}
			continue
		}
		run.WriteRune(r)
	}
	return run.String()
}

// FormatMoney renders amount in the currency's minor unit with the locale's
// separators, prefixed by the ISO code: "USD 1,234.50", "EUR 1.234,50",
// "JPY 1,235". Rounding is half away from zero.
func FormatMoney(amount decimal.Decimal, currencyCode string, locale language.Tag) (string, error) {
	cur, err := ParseCurrency(currencyCode)
	if err != nil {
		return "", err
	}
	return formatAmount(amount, cur, SeparatorsFor(locale)), nil
}

func formatAmount(amount decimal.Decimal, cur Currency, seps Separators) string {
	scale := cur.Scale()
	rounded := amount.Round(scale)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intPart, fracPart, _ := strings.Cut(rounded.StringFixed(scale), ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(cur.String())
	b.WriteByte(' ')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(seps.Group)
		}
		b.WriteRune(c)
	}
	if scale > 0 {
		b.WriteString(seps.Decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}

// ParseMoney is the inverse of FormatMoney. Besides formatted output it
// accepts bare numbers as typed into an edit field ("1234.5", "1,234.50").
// Only digits, the locale's separators, one leading minus sign and the
// currency code are allowed. Digit groups must be well formed: the first has
// one to three digits and every later one exactly three. Inputs with more
// fractional digits than the currency's minor unit are rejected rather than
// silently rounded.
func ParseMoney(text, currencyCode string, locale language.Tag) (decimal.Decimal, error) {
	cur, err := ParseCurrency(currencyCode)
	if err != nil {
		return decimal.Zero, err
	}
	invalid := shared.NewInvalidInputError("amount", "invalid amount "+text)

	s := strings.TrimSpace(text)
	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative = true
		s = rest
	}
	s = trimCurrencyCode(s, cur)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		if negative {
			return decimal.Zero, invalid
		}
		negative = true
		s = rest
	}
	if s == "" {
		return decimal.Zero, shared.NewInvalidInputError("amount", "amount is empty")
	}

	digits, ok := normalizeDigits(s, SeparatorsFor(locale))
	if !ok {
		return decimal.Zero, invalid
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, invalid
	}
	if -d.Exponent() > cur.Scale() && !d.Equal(d.Round(cur.Scale())) {
		return decimal.Zero, shared.NewInvalidInputError("amount",
			"amount has more fractional digits than "+cur.String()+" allows")
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// normalizeDigits turns locale formatted digits into a plain decimal string
// such as "1234.50". It reports false for anything but ASCII digits, well
// formed groups and at most one decimal separator.
func normalizeDigits(s string, seps Separators) (string, bool) {
	group := seps.Group
	if isSpaceSeparator(group) {
		// users type a plain space where CLDR uses a no-break one
		group = " "
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return ' '
			}
			return r
		}, s)
	}

	intPart, fracPart, hasFrac := strings.Cut(s, seps.Decimal)
	if hasFrac && !isDigits(fracPart) {
		return "", false
	}

	groups := []string{intPart}
	if group != "" {
		groups = strings.Split(intPart, group)
	}
	for i, g := range groups {
		if !isDigits(g) {
			return "", false
		}
		if len(groups) > 1 && (i == 0 && len(g) > 3 || i > 0 && len(g) != 3) {
			return "", false
		}
	}

	out := strings.Join(groups, "")
	if hasFrac {
		out += "." + fracPart
	}
	return out, true
}

func isSpaceSeparator(sep string) bool {
	if sep == "" {
		return false
	}
	for _, r := range sep {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func trimCurrencyCode(s string, cur Currency) string {
	code := cur.String()
	if len(s) >= len(code) && strings.EqualFold(s[:len(code)], code) {
		s = s[len(code):]
	} else if len(s) >= len(code) && strings.EqualFold(s[len(s)-len(code):], code) {
		s = s[:len(s)-len(code)]
	}
	return strings.TrimFunc(s, unicode.IsSpace)
}
