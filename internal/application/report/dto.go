package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CustomerResponse represents a customer in report responses
type CustomerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Organization *string   `json:"organization"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
}

// ToCustomerResponse converts a domain customer
func ToCustomerResponse(c partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Address:      c.Address.String(),
		Status:       string(c.Status),
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = ToCustomerResponse(c)
	}
	return out
}

// CustomerSummaryResponse is the billed subtotal across a customer's invoices
type CustomerSummaryResponse struct {
	Customer CustomerResponse `json:"customer"`
	Total    decimal.Decimal  `json:"total"`
	Count    int              `json:"count"`
}

// =============================================================================
// Product DTOs
// =============================================================================

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Details  string          `json:"details"`
	Rate     decimal.Decimal `json:"rate"`
	Category string          `json:"category"`
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Details:  p.Details,
			Rate:     p.Rate,
			Category: p.Category,
		}
	}
	return out
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceSummaryResponse is one row of an invoice listing. Problem is set,
// and the amounts left zero, when the stored invoice cannot be totalled.
type InvoiceSummaryResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	CustomerID uuid.UUID       `json:"customer_id"`
	IssueDate  time.Time       `json:"issue_date"`
	DueDate    time.Time       `json:"due_date"`
	Currency   string          `json:"currency"`
	Total      decimal.Decimal `json:"total"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	IsOverdue  bool            `json:"is_overdue"`
	Problem    string          `json:"problem,omitempty"`
}

// ToInvoiceSummaryResponse converts a domain invoice; now decides IsOverdue
func ToInvoiceSummaryResponse(inv *invoicing.Invoice, now time.Time) InvoiceSummaryResponse {
	resp := InvoiceSummaryResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		Status:     inv.Status.String(),
		CustomerID: inv.CustomerID,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Currency:   inv.Currency.String(),
		IsOverdue:  inv.IsOverdue(now),
	}
	totals, err := inv.Totals()
	if err != nil {
		resp.Problem = err.Error()
		return resp
	}
	rounded := totals.Rounded(inv.Currency.Scale())
	resp.Total = rounded.Total
	resp.BalanceDue = rounded.BalanceDue
	return resp
}

// InvoiceListResponse is a filtered invoice listing with per-status counts
type InvoiceListResponse struct {
	Invoices    []InvoiceSummaryResponse        `json:"invoices"`
	Counts      map[invoicing.InvoiceStatus]int `json:"counts"`
	Outstanding decimal.Decimal                 `json:"outstanding"`
}
