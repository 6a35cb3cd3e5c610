package rendering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	domaintemplate "github.com/invoicer/backend/internal/domain/template"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func sampleDocument(t *testing.T) *domaintemplate.Document {
	t.Helper()
	company, err := partner.NewCompany("Ledger <& Co>")
	require.NoError(t, err)
	customer, err := partner.NewCustomer("Pat", "pat@example.com")
	require.NoError(t, err)

	issued := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoicing.NewInvoice("INV-0042", company.ID, customer.ID, valueobject.USD, issued, issued.AddDate(0, 0, 30))
	require.NoError(t, err)
	item, err := invoicing.NewLineItem("Consulting", decimal.NewFromInt(3), decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(item))
	require.NoError(t, inv.SetTax(invoicing.PercentageTax(decimal.NewFromInt(10))))
	inv.Notes = "Thanks!"

	return &domaintemplate.Document{Invoice: inv, Company: company, Customer: customer, Locale: language.AmericanEnglish}
}

func TestNewHTMLRenderer_EveryLayoutHasAPage(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	want := make([]string, 0)
	for _, l := range domaintemplate.AllLayouts() {
		want = append(want, l.ID())
	}
	assert.Equal(t, want, r.Layouts())
}

func TestRenderHTML_EveryDesign(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	doc := sampleDocument(t)

	for _, design := range domaintemplate.AllDesigns() {
		t.Run(design.ID(), func(t *testing.T) {
			renderer, err := domaintemplate.Select(design, domaintemplate.ThemeOcean)
			require.NoError(t, err)
			view, err := renderer.Render(context.Background(), doc)
			require.NoError(t, err)

			html, err := r.RenderHTML(context.Background(), view)
			require.NoError(t, err)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, "INV-0042")
			assert.Contains(t, html, "USD 495.00")
			assert.Contains(t, html, "layout-"+design.Layout().ID())
			assert.Contains(t, html, domaintemplate.ThemeOcean.PrimaryColor)
		})
	}
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	renderer, err := domaintemplate.DefaultTemplate.Renderer()
	require.NoError(t, err)
	view, err := renderer.Render(context.Background(), sampleDocument(t))
	require.NoError(t, err)

	html, err := r.RenderHTML(context.Background(), view)
	require.NoError(t, err)
	assert.Contains(t, html, "Ledger &lt;&amp; Co&gt;")
	assert.NotContains(t, html, "Ledger <& Co>")
	assert.Contains(t, html, "Thanks!")
}

func TestRenderHTML_Errors(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	_, err = r.RenderHTML(context.Background(), nil)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)

	_, err = r.RenderHTML(context.Background(), &domaintemplate.View{Layout: "scroll"})
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeUnknownLayout, renderErr.Code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RenderHTML(ctx, &domaintemplate.View{Layout: "modern"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderError(t *testing.T) {
	cause := errors.New("bad token")
	err := NewRenderError(ErrCodeInvalidHTML, "failed to parse", cause)
	assert.Equal(t, "failed to parse: bad token", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", NewRenderError(ErrCodeRenderFailed, "plain", nil).Error())
}
