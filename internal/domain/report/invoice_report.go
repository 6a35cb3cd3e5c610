package report

import (
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

// FilterInvoices keeps invoices with the given status whose number or
// notes contain query. An empty status matches every status.
func FilterInvoices(invoices []invoicing.Invoice, status invoicing.InvoiceStatus, query string) []invoicing.Invoice {
	q := fold(query)
	if q == "" && status == "" {
		return invoices
	}

	out := make([]invoicing.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && inv.Status != status {
			continue
		}
		if q != "" && !contains(inv.Number, q) && !contains(inv.Notes, q) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// InvoiceStatusCounts counts invoices per status. Every status is present
// in the result, with zero when no invoice has it.
func InvoiceStatusCounts(invoices []invoicing.Invoice) map[invoicing.InvoiceStatus]int {
	counts := make(map[invoicing.InvoiceStatus]int, 3)
	for _, s := range invoicing.AllInvoiceStatuses() {
		counts[s] = 0
	}
	for _, inv := range invoices {
		counts[inv.Status]++
	}
	return counts
}

// OutstandingBalance sums the balance due of every unpaid invoice.
// Overpaid invoices contribute their negative balance.
func OutstandingBalance(invoices []invoicing.Invoice) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i := range invoices {
		if invoices[i].Status == invoicing.InvoiceStatusPaid {
			continue
		}
		totals, err := invoices[i].Totals()
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(totals.BalanceDue)
	}
	return sum, nil
}
