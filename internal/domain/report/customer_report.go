package report

import (
	"strings"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// CustomerSummaryResult is the billed amount and invoice count of a customer
type CustomerSummaryResult struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// FilterCustomers returns the customers whose name, email or organization
// contains query, compared case-insensitively. A blank query returns
// customers unchanged. Customers without an organization never match on it.
func FilterCustomers(customers []partner.Customer, query string) []partner.Customer {
	q := fold(query)
	if q == "" {
		return customers
	}

	out := make([]partner.Customer, 0, len(customers))
	for _, c := range customers {
		if contains(c.Name, q) || contains(c.Email, q) ||
			(c.Organization != nil && contains(*c.Organization, q)) {
			out = append(out, c)
		}
	}
	return out
}

// CustomerSummary sums the subtotal (before discount and tax) of every
// invoice billed to customer and counts them.
func CustomerSummary(customer partner.Customer, invoices []invoicing.Invoice) CustomerSummaryResult {
	res := CustomerSummaryResult{Total: decimal.Zero}
	for i := range invoices {
		if invoices[i].CustomerID != customer.ID {
			continue
		}
		res.Total = res.Total.Add(invoices[i].Subtotal())
		res.Count++
	}
	return res
}

// fold trims and case-folds s. Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func contains(field, foldedQuery string) bool {
	return strings.Contains(fold(field), foldedQuery)
}
