package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/template"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockHTMLRenderer is a mock implementation of HTMLRenderer
type MockHTMLRenderer struct {
	mock.Mock
}

func (m *MockHTMLRenderer) RenderHTML(ctx context.Context, view *template.View) (string, error) {
	args := m.Called(ctx, view)
	return args.String(0), args.Error(1)
}

func previewInvoice() PreviewInvoiceInput {
	return PreviewInvoiceInput{
		Number:       "INV-0007",
		IssueDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Currency:     "USD",
		Items:        []PreviewLineInput{{Description: "Audit", Quantity: decimal.NewFromInt(4), Rate: decimal.NewFromInt(120)}},
		TaxRate:      decimal.NewFromInt(5),
		CompanyName:  "Ledger & Co",
		CustomerName: "Pat",
		Organization: "Pat's Bakery",
	}
}

func TestNewTemplateService_UnknownDefault(t *testing.T) {
	_, err := NewTemplateService(&MockHTMLRenderer{}, zap.NewNop(), "nope", "")
	assert.ErrorIs(t, err, shared.ErrUnknownDesign)
}

func TestListDesignsAndThemes(t *testing.T) {
	svc, err := NewTemplateService(&MockHTMLRenderer{}, zap.NewNop(), "", "")
	require.NoError(t, err)

	designs := svc.ListDesigns(context.Background())
	assert.Len(t, designs, 23)
	assert.Equal(t, "modern-clean", designs[0].ID)
	assert.Equal(t, "modern", designs[0].Layout)
	assert.NotEmpty(t, svc.ListThemes(context.Background()))
}

func TestPreview(t *testing.T) {
	html := &MockHTMLRenderer{}
	html.On("RenderHTML", mock.Anything, mock.MatchedBy(func(v *template.View) bool {
		return v.TemplateID == "agency-bold/ocean" && len(v.Rows) == 1
	})).Return("<html>ok</html>", nil)

	svc, err := NewTemplateService(html, zap.NewNop(), "modern-clean/classic-blue", "")
	require.NoError(t, err)

	resp, err := svc.Preview(context.Background(), PreviewRequest{
		TemplateID: "agency-bold/ocean",
		Invoice:    previewInvoice(),
	})
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", resp.HTML)
	assert.Equal(t, "USD 504.00", resp.View.BalanceDue)
	assert.Equal(t, []string{"Pat's Bakery"}, resp.View.BillTo.Lines)
	html.AssertExpectations(t)
}

func TestPreview_CustomTheme(t *testing.T) {
	html := &MockHTMLRenderer{}
	html.On("RenderHTML", mock.Anything, mock.Anything).Return("<html/>", nil)
	svc, err := NewTemplateService(html, zap.NewNop(), "", "")
	require.NoError(t, err)

	resp, err := svc.Preview(context.Background(), PreviewRequest{
		Theme: &ThemeInput{
			ID: "brand", Name: "Brand", PrimaryColor: "#112233", AccentColor: "#445566",
			TextColor: "#000", BackgroundColor: "#fff", FontFamily: "serif", FontScale: 1.1,
		},
		Invoice: previewInvoice(),
	})
	require.NoError(t, err)
	assert.Equal(t, "modern-clean/brand", resp.View.TemplateID)
	assert.Equal(t, "#112233", resp.View.Style.PrimaryColor)

	_, err = svc.Preview(context.Background(), PreviewRequest{
		Theme:   &ThemeInput{ID: "x", Name: "X", PrimaryColor: "red", AccentColor: "#000", TextColor: "#000", BackgroundColor: "#fff", FontFamily: "sans", FontScale: 1},
		Invoice: previewInvoice(),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestPreview_Errors(t *testing.T) {
	html := &MockHTMLRenderer{}
	svc, err := NewTemplateService(html, zap.NewNop(), "", "")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Preview(ctx, PreviewRequest{TemplateID: "unknown/ocean", Invoice: previewInvoice()})
	assert.ErrorIs(t, err, shared.ErrUnknownDesign)

	bad := previewInvoice()
	bad.Items[0].Quantity = decimal.NewFromInt(-1)
	_, err = svc.Preview(ctx, PreviewRequest{Invoice: bad})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	huge := previewInvoice()
	huge.Items[0].Rate = decimal.RequireFromString("1e10000000")
	_, err = svc.Preview(ctx, PreviewRequest{Invoice: huge})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	precise := previewInvoice()
	precise.TotalPaid = decimal.RequireFromString("0.123456")
	_, err = svc.Preview(ctx, PreviewRequest{Invoice: precise})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	html.AssertNotCalled(t, "RenderHTML", mock.Anything, mock.Anything)

	html.On("RenderHTML", mock.Anything, mock.Anything).Return("", errors.New("boom"))
	_, err = svc.Preview(ctx, PreviewRequest{Invoice: previewInvoice()})
	assert.EqualError(t, err, "boom")
}
