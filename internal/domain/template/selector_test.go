package template

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDesignCatalog(t *testing.T) {
	designs := AllDesigns()
	assert.Len(t, designs, 23)

	seen := map[string]bool{}
	for _, d := range designs {
		assert.False(t, d.IsZero())
		assert.False(t, d.Layout().IsZero(), "design %s has no layout", d.ID())
		assert.NotEmpty(t, d.Name())
		assert.False(t, seen[d.ID()], "duplicate design id %s", d.ID())
		seen[d.ID()] = true

		found, ok := DesignByID(d.ID())
		require.True(t, ok)
		assert.Equal(t, d, found)
	}

	_, ok := DesignByID("does-not-exist")
	assert.False(t, ok)
}

func TestSelect_EveryDesignHasRenderer(t *testing.T) {
	for _, d := range AllDesigns() {
		for _, th := range AllThemes() {
			r, err := Select(d, th)
			require.NoError(t, err, "%s/%s", d.ID(), th.ID)
			require.NotNil(t, r)
			assert.Equal(t, d, r.Design())
			assert.Equal(t, th, r.Theme())
		}
	}
}

func TestSelect_ZeroDesign(t *testing.T) {
	_, err := Select(Design{}, ThemeClassicBlue)
	assert.ErrorIs(t, err, shared.ErrUnknownDesign)
}

func TestSelect_InvalidTheme(t *testing.T) {
	bad := ThemeOcean
	bad.PrimaryColor = "blue"
	_, err := Select(DesignModernClean, bad)
	require.Error(t, err)

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeInvalidInput, de.Code)
	assert.Equal(t, "theme.primary_color", de.Field)
}

func TestThemeCatalogIsValid(t *testing.T) {
	for _, th := range AllThemes() {
		assert.NoError(t, th.Validate(), th.ID)
	}
}

func TestNewCustomTheme(t *testing.T) {
	th, err := NewCustomTheme(" Brand ", "Brand", "#ff0066", "#333", "#000000", "#fff", FontSerif, 1.2)
	require.NoError(t, err)
	assert.Equal(t, "brand", th.ID)

	_, err = NewCustomTheme("brand", "Brand", "#ff0066", "#333", "#000", "#fff", "comic", 1)
	assert.Error(t, err)

	_, err = NewCustomTheme("brand", "Brand", "#ff0066", "#333", "#000", "#fff", FontSans, 3)
	assert.Error(t, err)
}

func TestCompleteTemplateID(t *testing.T) {
	ct := CompleteTemplate{Design: DesignSidebarAccent, Theme: ThemeSunset}
	assert.Equal(t, "sidebar-accent/sunset", ct.ID())

	parsed, err := ParseTemplateID(ct.ID())
	require.NoError(t, err)
	assert.Equal(t, ct, parsed)

	bare, err := ParseTemplateID("tech-grid")
	require.NoError(t, err)
	assert.Equal(t, DesignTechGrid, bare.Design)
	assert.Equal(t, DefaultTemplate.Theme, bare.Theme)

	empty, err := ParseTemplateID("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, empty)

	_, err = ParseTemplateID("nope/sunset")
	assert.ErrorIs(t, err, shared.ErrUnknownDesign)

	_, err = ParseTemplateID("tech-grid/neon")
	assert.ErrorIs(t, err, shared.ErrUnknownTheme)
}

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	company, err := partner.NewCompany("Acme GmbH")
	require.NoError(t, err)
	company.Address, err = valueobject.NewAddress("Hauptstr. 1", "Berlin", valueobject.WithPostalCode("10115"))
	require.NoError(t, err)
	company.TaxID = "DE123"

	customer, err := partner.NewCustomer("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	require.NoError(t, customer.SetOrganization("Initech"))

	inv, err := invoicing.NewInvoice("INV-0042", company.ID, customer.ID, valueobject.EUR,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	a, _ := invoicing.NewLineItem("Consulting", decimal.RequireFromString("2.5"), decimal.RequireFromString("1000"))
	b, _ := invoicing.NewLineItem("Travel", decimal.NewFromInt(1), decimal.RequireFromString("250"))
	require.NoError(t, inv.AddItem(a))
	require.NoError(t, inv.AddItem(b))
	require.NoError(t, inv.SetTax(invoicing.PercentageTax(decimal.NewFromInt(19))))
	require.NoError(t, inv.SetDiscount(invoicing.FixedDiscount(decimal.NewFromInt(250))))
	inv.Notes = "Thank you"
	inv.ID = uuid.MustParse("00000000-0000-0000-0000-000000000042")

	return &Document{Invoice: inv, Company: company, Customer: customer, Locale: language.German}
}

func TestRender(t *testing.T) {
	r, err := Select(DesignCorporateFormal, ThemeCrimson)
	require.NoError(t, err)

	view, err := r.Render(context.Background(), sampleDocument(t))
	require.NoError(t, err)

	assert.Equal(t, "corporate-formal/crimson", view.TemplateID)
	assert.Equal(t, "classic", view.Layout)
	assert.Equal(t, "INVOICE", view.Title)
	assert.Equal(t, "Draft", view.Status)
	assert.Equal(t, "2024-05-31", view.DueDate)
	assert.True(t, view.Numbered)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "2,5", view.Rows[0].Quantity)
	assert.Equal(t, "EUR 1.000,00", view.Rows[0].Rate)
	assert.Equal(t, "EUR 2.500,00", view.Rows[0].Amount)

	// subtotal 2750, discount 250, base 2500, tax 475, total 2975
	labels := []string{}
	for _, l := range view.Totals {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Subtotal", "Discount", "Tax (19%)", "Total"}, labels)
	assert.Equal(t, "-EUR 250,00", view.Totals[1].Amount)
	assert.Equal(t, "EUR 2.975,00", view.Totals[3].Amount)
	assert.True(t, view.Totals[3].Emphasis)
	assert.Equal(t, "EUR 2.975,00", view.BalanceDue)

	assert.Equal(t, "Acme GmbH", view.Issuer.Name)
	assert.Contains(t, view.Issuer.Lines, "Hauptstr. 1")
	assert.Contains(t, view.Issuer.Lines, "Tax ID: DE123")
	assert.Equal(t, []string{"Initech", "jane@example.com"}, view.BillTo.Lines)
	assert.Equal(t, "Thank you", view.Notes)
	assert.Equal(t, ThemeCrimson.PrimaryColor, view.Style.PrimaryColor)
	assert.Equal(t, "14.0px", view.Style.FontSize)
}

func TestRender_CompactLayoutDropsAddressesAndNotes(t *testing.T) {
	r, err := Select(DesignCompactReceipt, ThemeMonochrome)
	require.NoError(t, err)

	view, err := r.Render(context.Background(), sampleDocument(t))
	require.NoError(t, err)
	assert.NotContains(t, view.Issuer.Lines, "Hauptstr. 1")
	assert.Empty(t, view.Notes)
	assert.Equal(t, "12.6px", view.Style.FontSize)
}

func TestRender_Errors(t *testing.T) {
	r, err := Select(DesignModernClean, ThemeClassicBlue)
	require.NoError(t, err)

	_, err = r.Render(context.Background(), &Document{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, sampleDocument(t))
	assert.ErrorIs(t, err, context.Canceled)
}
