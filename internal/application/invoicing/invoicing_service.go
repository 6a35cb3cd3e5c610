package invoicing

import (
	"context"
	"strings"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Defaults are applied when a request leaves currency or locale blank
type Defaults struct {
	Currency valueobject.Currency
	Locale   language.Tag
}

// InvoicingService exposes totals calculation and money formatting
type InvoicingService struct {
	logger   *zap.Logger
	defaults Defaults
}

// NewInvoicingService creates a new InvoicingService
func NewInvoicingService(logger *zap.Logger, defaults Defaults) *InvoicingService {
	if defaults.Currency == "" {
		defaults.Currency = valueobject.DefaultCurrency
	}
	if defaults.Locale == language.Und {
		defaults.Locale = valueobject.DefaultLocale
	}
	return &InvoicingService{
		logger:   logger,
		defaults: defaults,
	}
}

// ComputeTotals calculates exact, rounded and formatted totals for a draft
func (s *InvoicingService) ComputeTotals(ctx context.Context, req ComputeTotalsRequest) (*TotalsResponse, error) {
	cur, locale, err := s.resolve(req.Currency, req.Locale)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	items, tax, discount := req.ToDomain()
	totals, err := invoicing.ComputeTotals(items, tax, discount, req.TotalPaid)
	if err != nil {
		return nil, err
	}
	if len(totals.Warnings) > 0 {
		codes := make([]string, 0, len(totals.Warnings))
		for _, w := range totals.Warnings {
			codes = append(codes, w.Code)
		}
		s.logger.Debug("totals computed with warnings",
			zap.Strings("warnings", codes),
			zap.Int("items", len(items)),
		)
	}

	rounded := totals.Rounded(cur.Scale())
	format := func(d decimal.Decimal) string {
		out, _ := valueobject.FormatMoney(d, cur.String(), locale)
		return out
	}

	lines := make([]LineTotalResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineTotalResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Total:       item.Total(),
		})
	}

	warnings := totals.Warnings
	if warnings == nil {
		warnings = []invoicing.Warning{}
	}

	return &TotalsResponse{
		Currency: cur.String(),
		Locale:   locale.String(),
		Lines:    lines,
		Exact:    totals,
		Rounded:  rounded,
		Formatted: FormattedTotalsResponse{
			Subtotal:       format(rounded.Subtotal),
			DiscountAmount: format(rounded.DiscountAmount),
			TaxAmount:      format(rounded.TaxAmount),
			Total:          format(rounded.Total),
			TotalPaid:      format(rounded.TotalPaid),
			BalanceDue:     format(rounded.BalanceDue),
		},
		Warnings: warnings,
	}, nil
}

// FormatMoney renders an amount for display
func (s *InvoicingService) FormatMoney(ctx context.Context, req FormatMoneyRequest) (*MoneyResponse, error) {
	cur, locale, err := s.resolve(req.Currency, req.Locale)
	if err != nil {
		return nil, err
	}
	if err := valueobject.CheckMagnitude("amount", req.Amount); err != nil {
		return nil, err
	}
	text, err := valueobject.FormatMoney(req.Amount, cur.String(), locale)
	if err != nil {
		return nil, err
	}
	return &MoneyResponse{
		Amount:    req.Amount.Round(cur.Scale()),
		Currency:  cur.String(),
		Locale:    locale.String(),
		Formatted: text,
	}, nil
}

// ParseMoney reads an amount from display or typed text
func (s *InvoicingService) ParseMoney(ctx context.Context, req ParseMoneyRequest) (*MoneyResponse, error) {
	cur, locale, err := s.resolve(req.Currency, req.Locale)
	if err != nil {
		return nil, err
	}
	amount, err := valueobject.ParseMoney(req.Text, cur.String(), locale)
	if err != nil {
		s.logger.Debug("money text rejected",
			zap.String("text", req.Text),
			zap.String("currency", cur.String()),
			zap.Error(err),
		)
		return nil, err
	}
	text, err := valueobject.FormatMoney(amount, cur.String(), locale)
	if err != nil {
		return nil, err
	}
	return &MoneyResponse{
		Amount:    amount,
		Currency:  cur.String(),
		Locale:    locale.String(),
		Formatted: text,
	}, nil
}

func (s *InvoicingService) resolve(currencyCode, localeText string) (valueobject.Currency, language.Tag, error) {
	cur := s.defaults.Currency
	if strings.TrimSpace(currencyCode) != "" {
		parsed, err := valueobject.ParseCurrency(currencyCode)
		if err != nil {
			return "", language.Und, err
		}
		cur = parsed
	}

	locale := s.defaults.Locale
	if strings.TrimSpace(localeText) != "" {
		parsed, err := valueobject.ParseLocale(localeText)
		if err != nil {
			return "", language.Und, err
		}
		locale = parsed
	}
	return cur, locale, nil
}
