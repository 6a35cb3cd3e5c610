package invoicing

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// AllInvoiceStatuses returns every status in display order
func AllInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusPaid, InvoiceStatusOverdue}
}

// IsValid checks if the status is valid
func (s InvoiceStatus) IsValid() bool {
	return slices.Contains(AllInvoiceStatuses(), s)
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// ParseInvoiceStatus parses a status case-insensitively
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", shared.NewInvalidInputError("status", fmt.Sprintf("unknown invoice status %q", s))
	}
	return status, nil
}

var statusTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:   {InvoiceStatusPaid, InvoiceStatusOverdue},
	InvoiceStatusOverdue: {InvoiceStatusPaid},
	InvoiceStatusPaid:    {InvoiceStatusDraft},
}

// CanTransitionTo reports whether moving from s to target is allowed
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	return slices.Contains(statusTransitions[s], target)
}

// Invoice is a bill issued by a company to a customer.
// Company and customer are referenced by ID only.
type Invoice struct {
	shared.BaseEntity
	Number     string
	Status     InvoiceStatus
	IssueDate  time.Time
	DueDate    time.Time
	Currency   valueobject.Currency
	CompanyID  uuid.UUID
	CustomerID uuid.UUID
	Items      []LineItem
	Tax        TaxConfig
	Discount   DiscountConfig
	TotalPaid  decimal.Decimal
	Notes      string
	// TemplateID is the "<design>/<theme>" identifier chosen for rendering
	TemplateID string
}

// NewInvoice creates a draft invoice with no items
func NewInvoice(number string, companyID, customerID uuid.UUID, cur valueobject.Currency, issueDate, dueDate time.Time) (*Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewInvalidInputError("number", "invoice number cannot be empty")
	}
	if len(number) > 50 {
		return nil, shared.NewInvalidInputError("number", "invoice number cannot exceed 50 characters")
	}
	parsed, err := valueobject.ParseCurrency(string(cur))
	if err != nil {
		return nil, err
	}
	if dueDate.Before(issueDate) {
		return nil, shared.NewInvalidInputError("due_date", "due date cannot be before the issue date")
	}

	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		Status:     InvoiceStatusDraft,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Currency:   parsed,
		CompanyID:  companyID,
		CustomerID: customerID,
		Items:      []LineItem{},
		Tax:        PercentageTax(decimal.Zero),
		Discount:   NoDiscount(),
		TotalPaid:  decimal.Zero,
	}, nil
}

// AddItem appends a line item
func (inv *Invoice) AddItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	inv.Items = append(inv.Items, item)
	inv.Touch()
	return nil
}

// UpdateItem replaces the item at index
func (inv *Invoice) UpdateItem(index int, item LineItem) error {
	if err := inv.checkIndex(index); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	inv.Items[index] = item
	inv.Touch()
	return nil
}

// RemoveItem deletes the item at index, keeping the order of the rest
func (inv *Invoice) RemoveItem(index int) error {
	if err := inv.checkIndex(index); err != nil {
		return err
	}
	inv.Items = slices.Delete(inv.Items, index, index+1)
	inv.Touch()
	return nil
}

// MoveItem moves the item at from to position to
func (inv *Invoice) MoveItem(from, to int) error {
	if err := inv.checkIndex(from); err != nil {
		return err
	}
	if err := inv.checkIndex(to); err != nil {
		return err
	}
	item := inv.Items[from]
	inv.Items = slices.Delete(inv.Items, from, from+1)
	inv.Items = slices.Insert(inv.Items, to, item)
	inv.Touch()
	return nil
}

func (inv *Invoice) checkIndex(index int) error {
	if index < 0 || index >= len(inv.Items) {
		return shared.NewInvalidInputError("index", fmt.Sprintf("no line item at position %d", index))
	}
	return nil
}

// SetTax replaces the tax configuration
func (inv *Invoice) SetTax(tax TaxConfig) error {
	if err := tax.Validate(); err != nil {
		return err
	}
	inv.Tax = tax
	inv.Touch()
	return nil
}

// SetDiscount replaces the discount configuration
func (inv *Invoice) SetDiscount(discount DiscountConfig) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	inv.Discount = discount
	inv.Touch()
	return nil
}

// RecordPayment adds amount to the total paid. Overpayment is accepted and
// surfaces as a negative balance due.
func (inv *Invoice) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewInvalidInputError("amount", "payment amount must be positive")
	}
	inv.TotalPaid = inv.TotalPaid.Add(amount)
	inv.Touch()
	return nil
}

// SetStatus moves the invoice to target if the transition is allowed
func (inv *Invoice) SetStatus(target InvoiceStatus) error {
	if !target.IsValid() {
		return shared.NewInvalidInputError("status", fmt.Sprintf("unknown invoice status %q", target))
	}
	if inv.Status == target {
		return nil
	}
	if !inv.Status.CanTransitionTo(target) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("cannot change invoice status from %s to %s", inv.Status, target))
	}
	inv.Status = target
	inv.Touch()
	return nil
}

// IsOverdue reports whether the invoice is unpaid and its due date lies
// strictly before the calendar day of now
func (inv *Invoice) IsOverdue(now time.Time) bool {
	if inv.Status == InvoiceStatusPaid {
		return false
	}
	return dateOf(inv.DueDate).Before(dateOf(now.In(inv.DueDate.Location())))
}

// Totals computes the invoice totals from its current fields
func (inv *Invoice) Totals() (InvoiceTotals, error) {
	return ComputeTotals(inv.Items, inv.Tax, inv.Discount, inv.TotalPaid)
}

// Subtotal is the sum of line totals
func (inv *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// InvoiceRepository reads invoices from storage
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindAll returns every invoice, newest issue date first
	FindAll(ctx context.Context) ([]Invoice, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Invoice, error)
}
