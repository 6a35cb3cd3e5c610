package report

import (
	"time"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// Premium insights. Callers are responsible for checking the entitlement
// before computing them.

// RevenueGrowthResult compares paid revenue of two calendar months
type RevenueGrowthResult struct {
	CurrentMonth  decimal.Decimal `json:"current_month"`
	PreviousMonth decimal.Decimal `json:"previous_month"`
	// GrowthPercent is zero when the previous month had no revenue
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

// CustomerValueResult describes what a customer has been worth so far
type CustomerValueResult struct {
	CustomerID     string          `json:"customer_id"`
	LifetimeValue  decimal.Decimal `json:"lifetime_value"`
	PaidCount      int             `json:"paid_count"`
	AverageInvoice decimal.Decimal `json:"average_invoice"`
	FirstInvoice   *time.Time      `json:"first_invoice,omitempty"`
	LastInvoice    *time.Time      `json:"last_invoice,omitempty"`
}

// RevenueGrowth sums the totals of paid invoices issued in now's month and
// in the month before, and returns the growth rounded to two decimals
func RevenueGrowth(invoices []invoicing.Invoice, now time.Time) (RevenueGrowthResult, error) {
	y, m, _ := now.Date()
	currentStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)

	res := RevenueGrowthResult{CurrentMonth: decimal.Zero, PreviousMonth: decimal.Zero, GrowthPercent: decimal.Zero}
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status != invoicing.InvoiceStatusPaid {
			continue
		}
		issued := inv.IssueDate.In(now.Location())
		var bucket *decimal.Decimal
		switch {
		case !issued.Before(currentStart) && issued.Before(nextStart):
			bucket = &res.CurrentMonth
		case !issued.Before(previousStart) && issued.Before(currentStart):
			bucket = &res.PreviousMonth
		default:
			continue
		}
		totals, err := inv.Totals()
		if err != nil {
			return RevenueGrowthResult{}, err
		}
		*bucket = bucket.Add(totals.Total)
	}

	if res.PreviousMonth.IsPositive() {
		res.GrowthPercent = res.CurrentMonth.Sub(res.PreviousMonth).
			Mul(decimal.NewFromInt(100)).
			Div(res.PreviousMonth).
			Round(2)
	}
	return res, nil
}

// CustomerLifetimeValue sums the totals of the customer's paid invoices and
// reports the first and last issue date over all of the customer's invoices
func CustomerLifetimeValue(customer partner.Customer, invoices []invoicing.Invoice) (CustomerValueResult, error) {
	res := CustomerValueResult{
		CustomerID:     customer.ID.String(),
		LifetimeValue:  decimal.Zero,
		AverageInvoice: decimal.Zero,
	}

	for i := range invoices {
		inv := &invoices[i]
		if inv.CustomerID != customer.ID {
			continue
		}
		issued := inv.IssueDate
		if res.FirstInvoice == nil || issued.Before(*res.FirstInvoice) {
			res.FirstInvoice = &issued
		}
		if res.LastInvoice == nil || issued.After(*res.LastInvoice) {
			res.LastInvoice = &issued
		}
		if inv.Status != invoicing.InvoiceStatusPaid {
			continue
		}
		totals, err := inv.Totals()
		if err != nil {
			return CustomerValueResult{}, err
		}
		res.LifetimeValue = res.LifetimeValue.Add(totals.Total)
		res.PaidCount++
	}

	if res.PaidCount > 0 {
		res.AverageInvoice = res.LifetimeValue.Div(decimal.NewFromInt(int64(res.PaidCount))).Round(2)
	}
	return res, nil
}
