package template

import (
	"context"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/invoicer/backend/internal/domain/template"
	"go.uber.org/zap"
)

// HTMLRenderer turns a rendered view into an HTML document
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, view *template.View) (string, error)
}

// TemplateService lists the template catalog and renders previews
type TemplateService struct {
	html            HTMLRenderer
	logger          *zap.Logger
	defaultTemplate template.CompleteTemplate
	defaultCurrency valueobject.Currency
}

// NewTemplateService creates a new TemplateService. defaultTemplateID is
// resolved once; an unknown identifier is an error.
func NewTemplateService(html HTMLRenderer, logger *zap.Logger, defaultTemplateID string, defaultCurrency valueobject.Currency) (*TemplateService, error) {
	def, err := template.ParseTemplateID(defaultTemplateID)
	if err != nil {
		return nil, err
	}
	if defaultCurrency == "" {
		defaultCurrency = valueobject.DefaultCurrency
	}
	return &TemplateService{
		html:            html,
		logger:          logger,
		defaultTemplate: def,
		defaultCurrency: defaultCurrency,
	}, nil
}

// ListDesigns returns the design catalog
func (s *TemplateService) ListDesigns(ctx context.Context) []DesignResponse {
	designs := template.AllDesigns()
	out := make([]DesignResponse, 0, len(designs))
	for _, d := range designs {
		out = append(out, ToDesignResponse(d))
	}
	return out
}

// ListThemes returns the built-in themes
func (s *TemplateService) ListThemes(ctx context.Context) []template.Theme {
	return template.AllThemes()
}

// Preview renders the supplied invoice with the requested template
func (s *TemplateService) Preview(ctx context.Context, req PreviewRequest) (*PreviewResponse, error) {
	selected := s.defaultTemplate
	if req.TemplateID != "" {
		parsed, err := template.ParseTemplateID(req.TemplateID)
		if err != nil {
			return nil, err
		}
		selected = parsed
	}
	if req.Theme != nil {
		custom, err := template.NewCustomTheme(req.Theme.ID, req.Theme.Name,
			req.Theme.PrimaryColor, req.Theme.AccentColor, req.Theme.TextColor, req.Theme.BackgroundColor,
			template.FontFamily(req.Theme.FontFamily), req.Theme.FontScale)
		if err != nil {
			return nil, err
		}
		selected.Theme = custom
	}

	renderer, err := selected.Renderer()
	if err != nil {
		return nil, err
	}

	locale, err := valueobject.ParseLocale(req.Locale)
	if err != nil {
		return nil, err
	}
	doc, err := s.buildDocument(req.Invoice)
	if err != nil {
		return nil, err
	}
	doc.Locale = locale
	doc.Invoice.TemplateID = selected.ID()

	view, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	html, err := s.html.RenderHTML(ctx, view)
	if err != nil {
		s.logger.Error("failed to render invoice preview",
			zap.String("template_id", selected.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("invoice preview rendered",
		zap.String("template_id", selected.ID()),
		zap.Int("rows", len(view.Rows)),
	)
	return &PreviewResponse{View: view, HTML: html}, nil
}

func (s *TemplateService) buildDocument(in PreviewInvoiceInput) (*template.Document, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	company, err := partner.NewCompany(in.CompanyName)
	if err != nil {
		return nil, err
	}
	if err := company.SetContact(in.CompanyEmail, ""); err != nil {
		return nil, err
	}
	if err := company.SetTaxID(in.CompanyTaxID); err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(in.CustomerName, in.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if err := customer.SetOrganization(in.Organization); err != nil {
		return nil, err
	}

	cur := s.defaultCurrency
	if in.Currency != "" {
		cur = valueobject.Currency(in.Currency)
	}
	inv, err := invoicing.NewInvoice(in.Number, company.ID, customer.ID, cur, in.IssueDate, in.DueDate)
	if err != nil {
		return nil, err
	}
	for _, line := range in.Items {
		item, err := invoicing.NewLineItem(line.Description, line.Quantity, line.Rate)
		if err != nil {
			return nil, err
		}
		if err := inv.AddItem(item); err != nil {
			return nil, err
		}
	}
	if err := inv.SetTax(invoicing.TaxConfig{Rate: in.TaxRate, Type: invoicing.AdjustmentType(in.TaxType)}); err != nil {
		return nil, err
	}
	if err := inv.SetDiscount(invoicing.DiscountConfig{
		Value:   in.DiscountValue,
		Type:    invoicing.AdjustmentType(in.DiscountType),
		Enabled: in.DiscountEnabled,
	}); err != nil {
		return nil, err
	}
	if in.TotalPaid.IsNegative() {
		return nil, shared.NewInvalidInputError("total_paid", "total paid cannot be negative")
	}
	inv.TotalPaid = in.TotalPaid
	inv.Notes = in.Notes

	return &template.Document{Invoice: inv, Company: company, Customer: customer}, nil
}
