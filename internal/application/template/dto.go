package template

import (
	"fmt"
	"time"

	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/invoicer/backend/internal/domain/template"
	"github.com/shopspring/decimal"
)

// DesignResponse describes a catalog design
type DesignResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Layout      string `json:"layout"`
}

// ToDesignResponse converts a domain design
func ToDesignResponse(d template.Design) DesignResponse {
	return DesignResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Layout:      d.Layout().ID(),
	}
}

// ThemeInput is a user supplied theme
type ThemeInput struct {
	ID              string  `json:"id" binding:"required,max=50"`
	Name            string  `json:"name" binding:"required,max=100"`
	PrimaryColor    string  `json:"primary_color" binding:"required"`
	AccentColor     string  `json:"accent_color" binding:"required"`
	TextColor       string  `json:"text_color" binding:"required"`
	BackgroundColor string  `json:"background_color" binding:"required"`
	FontFamily      string  `json:"font_family" binding:"required"`
	FontScale       float64 `json:"font_scale"`
}

// PreviewLineInput is one line of the previewed invoice
type PreviewLineInput struct {
	Description string          `json:"description" binding:"max=1000"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// PreviewInvoiceInput is the invoice content rendered by a preview
type PreviewInvoiceInput struct {
	Number          string             `json:"number" binding:"required,max=50"`
	IssueDate       time.Time          `json:"issue_date" binding:"required"`
	DueDate         time.Time          `json:"due_date" binding:"required"`
	Currency        string             `json:"currency" binding:"omitempty,len=3"`
	Items           []PreviewLineInput `json:"items" binding:"max=1000,dive"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	TaxType         string             `json:"tax_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue   decimal.Decimal    `json:"discount_value"`
	DiscountType    string             `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountEnabled bool               `json:"discount_enabled"`
	TotalPaid       decimal.Decimal    `json:"total_paid"`
	Notes           string             `json:"notes" binding:"max=2000"`
	CompanyName     string             `json:"company_name" binding:"required,max=200"`
	CompanyEmail    string             `json:"company_email" binding:"omitempty,email"`
	CompanyTaxID    string             `json:"company_tax_id" binding:"max=50"`
	CustomerName    string             `json:"customer_name" binding:"required,max=200"`
	CustomerEmail   string             `json:"customer_email" binding:"omitempty,email"`
	Organization    string             `json:"organization" binding:"max=200"`
}

// Validate bounds every decimal of the invoice to what storage can hold
func (in PreviewInvoiceInput) Validate() error {
	for i, line := range in.Items {
		if err := valueobject.CheckStorable(fmt.Sprintf("items[%d].quantity", i), line.Quantity); err != nil {
			return err
		}
		if err := valueobject.CheckStorable(fmt.Sprintf("items[%d].rate", i), line.Rate); err != nil {
			return err
		}
	}
	if err := valueobject.CheckStorable("tax_rate", in.TaxRate); err != nil {
		return err
	}
	if err := valueobject.CheckStorable("discount_value", in.DiscountValue); err != nil {
		return err
	}
	return valueobject.CheckStorable("total_paid", in.TotalPaid)
}

// PreviewRequest asks for an invoice rendered with a template.
// TemplateID selects a catalog pair; Theme, when set, replaces its theme.
type PreviewRequest struct {
	TemplateID string              `json:"template_id" binding:"max=120"`
	Theme      *ThemeInput         `json:"theme"`
	Locale     string              `json:"locale" binding:"max=35"`
	Invoice    PreviewInvoiceInput `json:"invoice" binding:"required"`
}

// PreviewResponse carries the structured view and its HTML rendition
type PreviewResponse struct {
	View *template.View `json:"view"`
	HTML string         `json:"html"`
}
