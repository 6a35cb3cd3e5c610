package template

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

// Document is everything a renderer needs to present one invoice
type Document struct {
	Invoice  *invoicing.Invoice
	Company  *partner.Company
	Customer *partner.Customer
	// Locale selects number separators and title casing
	Locale language.Tag
}

// View is the presentation-neutral result of rendering a document.
// All amounts are already formatted for the document locale.
type View struct {
	TemplateID string      `json:"template_id"`
	Layout     string      `json:"layout"`
	Title      string      `json:"title"`
	Number     string      `json:"number"`
	Status     string      `json:"status"`
	IssueDate  string      `json:"issue_date"`
	DueDate    string      `json:"due_date"`
	Issuer     Party       `json:"issuer"`
	BillTo     Party       `json:"bill_to"`
	Rows       []Row       `json:"rows"`
	Totals     []TotalLine `json:"totals"`
	BalanceDue string      `json:"balance_due"`
	Notes      string      `json:"notes,omitempty"`
	Sidebar    bool        `json:"sidebar"`
	Numbered   bool        `json:"numbered"`
	Style      Style       `json:"style"`
}

// Party is a block of name and detail lines
type Party struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines,omitempty"`
}

// Row is one rendered line item
type Row struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// TotalLine is a labelled amount in the totals block
type TotalLine struct {
	Label    string `json:"label"`
	Amount   string `json:"amount"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// Style carries theme values ready for a stylesheet
type Style struct {
	PrimaryColor    string `json:"primary_color"`
	AccentColor     string `json:"accent_color"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	FontStack       string `json:"font_stack"`
	FontSize        string `json:"font_size"`
}

type blueprintRenderer struct {
	design Design
	theme  Theme
}

func (r *blueprintRenderer) Design() Design { return r.design }
func (r *blueprintRenderer) Theme() Theme   { return r.theme }

// Render lays the document out according to the design's blueprint
func (r *blueprintRenderer) Render(ctx context.Context, doc *Document) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || doc.Invoice == nil {
		return nil, shared.NewInvalidInputError("invoice", "document has no invoice")
	}

	inv := doc.Invoice
	totals, err := inv.Totals()
	if err != nil {
		return nil, err
	}

	locale := doc.Locale
	if locale == language.Und {
		locale = valueobject.DefaultLocale
	}
	seps := valueobject.SeparatorsFor(locale)
	money := func(v decimal.Decimal) (string, error) {
		return valueobject.FormatMoney(v, inv.Currency.String(), locale)
	}
	layout := r.design.layout

	title := "Invoice"
	if layout.UppercaseTitle {
		title = "INVOICE"
	}

	view := &View{
		TemplateID: CompleteTemplate{Design: r.design, Theme: r.theme}.ID(),
		Layout:     layout.ID(),
		Title:      title,
		Number:     inv.Number,
		Status:     cases.Title(locale).String(inv.Status.String()),
		IssueDate:  inv.IssueDate.Format(dateLayout),
		DueDate:    inv.DueDate.Format(dateLayout),
		Issuer:     companyParty(doc.Company, layout),
		BillTo:     customerParty(doc.Customer, layout),
		Rows:       make([]Row, 0, len(inv.Items)),
		Sidebar:    layout.Sidebar,
		Numbered:   layout.NumberedRows,
		Style: Style{
			PrimaryColor:    r.theme.PrimaryColor,
			AccentColor:     r.theme.AccentColor,
			TextColor:       r.theme.TextColor,
			BackgroundColor: r.theme.BackgroundColor,
			FontStack:       r.theme.FontFamily.Stack(),
			FontSize:        strconv.FormatFloat(14*r.theme.FontScale, 'f', 1, 64) + "px",
		},
	}
	if !layout.Compact {
		view.Notes = inv.Notes
	}

	for i, item := range inv.Items {
		rate, err := money(item.Rate)
		if err != nil {
			return nil, err
		}
		amount, err := money(item.Total())
		if err != nil {
			return nil, err
		}
		view.Rows = append(view.Rows, Row{
			Position:    i + 1,
			Description: item.Description,
			Quantity:    formatQuantity(item.Quantity, seps),
			Rate:        rate,
			Amount:      amount,
		})
	}

	lines := []struct {
		label    string
		amount   decimal.Decimal
		emphasis bool
		show     bool
	}{
		{"Subtotal", totals.Subtotal, false, true},
		{adjustmentLabel("Discount", inv.Discount.Value, inv.Discount.Type), totals.DiscountAmount.Neg(), false, !totals.DiscountAmount.IsZero()},
		{adjustmentLabel("Tax", inv.Tax.Rate, inv.Tax.Type), totals.TaxAmount, false, true},
		{"Total", totals.Total, true, true},
		{"Paid", totals.TotalPaid.Neg(), false, !totals.TotalPaid.IsZero()},
	}
	for _, l := range lines {
		if !l.show {
			continue
		}
		text, err := money(l.amount)
		if err != nil {
			return nil, err
		}
		view.Totals = append(view.Totals, TotalLine{Label: l.label, Amount: text, Emphasis: l.emphasis})
	}

	view.BalanceDue, err = money(totals.BalanceDue)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func adjustmentLabel(name string, value decimal.Decimal, typ invoicing.AdjustmentType) string {
	if typ.IsPercentage() {
		return fmt.Sprintf("%s (%s%%)", name, value.String())
	}
	return name
}

// formatQuantity keeps the quantity's own precision and applies the
// locale's decimal separator
func formatQuantity(q decimal.Decimal, seps valueobject.Separators) string {
	return strings.ReplaceAll(q.String(), ".", seps.Decimal)
}

func companyParty(c *partner.Company, layout Layout) Party {
	if c == nil {
		return Party{}
	}
	p := Party{Name: c.Name}
	if !layout.Compact {
		p.Lines = append(p.Lines, c.Address.Lines()...)
	}
	p.Lines = appendNonEmpty(p.Lines, c.Email, c.Phone, c.Website)
	if c.TaxID != "" {
		p.Lines = append(p.Lines, "Tax ID: "+c.TaxID)
	}
	return p
}

func customerParty(c *partner.Customer, layout Layout) Party {
	if c == nil {
		return Party{}
	}
	p := Party{Name: c.Name}
	p.Lines = appendNonEmpty(p.Lines, c.OrganizationName())
	if !layout.Compact {
		p.Lines = append(p.Lines, c.Address.Lines()...)
	}
	p.Lines = appendNonEmpty(p.Lines, c.Email)
	return p
}

func appendNonEmpty(lines []string, values ...string) []string {
	for _, v := range values {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}
