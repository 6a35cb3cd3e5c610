package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	invoicingapp "github.com/invoicer/backend/internal/application/invoicing"
	reportapp "github.com/invoicer/backend/internal/application/report"
	templateapp "github.com/invoicer/backend/internal/application/template"
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	domaintemplate "github.com/invoicer/backend/internal/domain/template"
	"github.com/invoicer/backend/internal/infrastructure/auth"
	"github.com/invoicer/backend/internal/infrastructure/config"
	"github.com/invoicer/backend/internal/infrastructure/rendering"
	"github.com/invoicer/backend/internal/interfaces/http/dto"
	"github.com/invoicer/backend/internal/interfaces/http/handler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// In-memory repositories

type memCustomers []partner.Customer

func (m memCustomers) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	for i := range m {
		if m[i].ID == id {
			return &m[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m memCustomers) FindAll(context.Context) ([]partner.Customer, error) { return m, nil }

type memProducts []catalog.Product

func (m memProducts) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	for i := range m {
		if m[i].ID == id {
			return &m[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m memProducts) FindAll(context.Context) ([]catalog.Product, error) { return m, nil }

type memInvoices []invoicing.Invoice

func (m memInvoices) FindByID(_ context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	for i := range m {
		if m[i].ID == id {
			return &m[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m memInvoices) FindAll(context.Context) ([]invoicing.Invoice, error) { return m, nil }

func (m memInvoices) FindByCustomer(_ context.Context, id uuid.UUID) ([]invoicing.Invoice, error) {
	var out []invoicing.Invoice
	for _, inv := range m {
		if inv.CustomerID == id {
			out = append(out, inv)
		}
	}
	return out, nil
}

type failingPinger struct{}

func (failingPinger) Ping() error { return errors.New("connection refused") }

// API fixture

type api struct {
	engine   *gin.Engine
	jwt      *auth.JWTService
	customer partner.Customer
}

func newAPI(t *testing.T) *api {
	t.Helper()
	log := zap.NewNop()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	customer, err := partner.NewCustomer("Ana", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, customer.SetOrganization("Acme"))
	other, err := partner.NewCustomer("Ben", "")
	require.NoError(t, err)

	logo, err := catalog.NewProduct("Logo", "vector", decimal.NewFromInt(300), "Design")
	require.NoError(t, err)
	hosting, err := catalog.NewProduct("Hosting", "", decimal.NewFromInt(20), "Ops")
	require.NoError(t, err)

	invoice := func(number string, issued time.Time, amount int64, status invoicing.InvoiceStatus) invoicing.Invoice {
		inv, err := invoicing.NewInvoice(number, uuid.New(), customer.ID, valueobject.USD, issued, issued.AddDate(0, 0, 14))
		require.NoError(t, err)
		item, err := invoicing.NewLineItem("Work", decimal.NewFromInt(1), decimal.NewFromInt(amount))
		require.NoError(t, err)
		require.NoError(t, inv.AddItem(item))
		require.NoError(t, inv.SetStatus(status))
		return *inv
	}
	invoices := memInvoices{
		invoice("INV-0002", now, 150, invoicing.InvoiceStatusPaid),
		invoice("INV-0001", now.AddDate(0, -1, 0), 100, invoicing.InvoiceStatusPaid),
		invoice("INV-0003", now, 40, invoicing.InvoiceStatusDraft),
	}

	html, err := rendering.NewHTMLRenderer()
	require.NoError(t, err)
	templateSvc, err := templateapp.NewTemplateService(html, log, domaintemplate.DefaultTemplate.ID(), valueobject.USD)
	require.NoError(t, err)
	reportSvc := reportapp.NewReportService(memCustomers{*customer, *other}, memProducts{*hosting, *logo}, invoices, log).
		WithClock(func() time.Time { return now })

	jwtService := auth.NewJWTService(config.JWTConfig{Secret: testSecret})
	engine := NewEngine(config.HTTPConfig{MaxBodySize: 1 << 20}, jwtService, log, Handlers{
		Invoicing: handler.NewInvoicingHandler(invoicingapp.NewInvoicingService(log, invoicingapp.Defaults{})),
		Template:  handler.NewTemplateHandler(templateSvc),
		Report:    handler.NewReportHandler(reportSvc),
		System:    handler.NewSystemHandler(nil),
	})
	return &api{engine: engine, jwt: jwtService, customer: *customer}
}

func (a *api) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var resp dto.Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (a *api) token(t *testing.T, premium bool) string {
	t.Helper()
	token, err := a.jwt.GenerateToken("user-1", premium, time.Hour)
	require.NoError(t, err)
	return token
}

func dataMap(t *testing.T, resp dto.Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return m
}

func TestHealth(t *testing.T) {
	a := newAPI(t)
	w, _ := a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	gin.SetMode(gin.TestMode)
	down := gin.New()
	down.GET("/health", handler.NewSystemHandler(failingPinger{}).Health)
	rec := httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestComputeTotalsEndpoint(t *testing.T) {
	a := newAPI(t)
	body := `{
		"currency": "USD",
		"items": [{"description": "Design", "quantity": 2, "rate": "50"}, {"description": "Copy", "quantity": 1, "rate": 25}],
		"discount": {"value": 20, "type": "percentage", "enabled": true},
		"tax": {"value": 10, "type": "percentage"}
	}`
	w, resp := a.do(t, http.MethodPost, "/api/v1/invoices/totals", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	formatted := dataMap(t, resp)["formatted"].(map[string]any)
	assert.Equal(t, "USD 125.00", formatted["subtotal"])
	assert.Equal(t, "USD 25.00", formatted["discount_amount"])
	assert.Equal(t, "USD 110.00", formatted["balance_due"])

	w, resp = a.do(t, http.MethodPost, "/api/v1/invoices/totals", `{"items":[{"quantity":-1,"rate":5}]}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)

	w, resp = a.do(t, http.MethodPost, "/api/v1/invoices/totals", `{"currency":"DOLLARS"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
}

func TestMoneyEndpoints(t *testing.T) {
	a := newAPI(t)
	w, resp := a.do(t, http.MethodPost, "/api/v1/money/format", `{"amount":"1234.5","currency":"EUR","locale":"de-DE"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "EUR 1.234,50", dataMap(t, resp)["formatted"])

	w, resp = a.do(t, http.MethodPost, "/api/v1/money/parse", `{"text":"EUR 1.234,50","currency":"EUR","locale":"de-DE"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "1234.5", dataMap(t, resp)["amount"])

	w, resp = a.do(t, http.MethodPost, "/api/v1/money/parse", `{"text":"12abc","currency":"USD"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

const previewBody = `{
	"template_id": "agency-bold/ocean",
	"invoice": {
		"number": "INV-0042",
		"issue_date": "2024-03-01T00:00:00Z",
		"due_date": "2024-03-31T00:00:00Z",
		"items": [{"description": "Consulting", "quantity": 4, "rate": 120}],
		"tax_rate": 5,
		"company_name": "Ledger & Co",
		"customer_name": "Pat"
	}
}`

func TestTemplateEndpoints(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do(t, http.MethodGet, "/api/v1/templates/designs", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(domaintemplate.AllDesigns()), resp.Meta.Total)

	w, resp = a.do(t, http.MethodGet, "/api/v1/templates/themes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Positive(t, resp.Meta.Total)

	w, resp = a.do(t, http.MethodPost, "/api/v1/templates/preview", previewBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, dataMap(t, resp)["html"], "INV-0042")

	w, _ = a.do(t, http.MethodPost, "/api/v1/templates/preview?format=html", previewBody, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "USD 504.00")

	unknown := strings.Replace(previewBody, "agency-bold/ocean", "no-such-design", 1)
	w, resp = a.do(t, http.MethodPost, "/api/v1/templates/preview", unknown, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeUnknownDesign, resp.Error.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do(t, http.MethodGet, "/api/v1/customers?search=acme", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, resp.Meta.Total)

	w, resp = a.do(t, http.MethodGet, "/api/v1/customers/"+a.customer.ID.String()+"/summary", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, dataMap(t, resp)["count"])
	assert.Equal(t, "290", dataMap(t, resp)["total"])

	w, resp = a.do(t, http.MethodGet, "/api/v1/customers/"+uuid.NewString()+"/summary", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)

	w, resp = a.do(t, http.MethodGet, "/api/v1/customers/not-a-uuid/summary", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestProductEndpoints(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do(t, http.MethodGet, "/api/v1/products?category=Design", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, resp.Meta.Total)

	w, resp = a.do(t, http.MethodGet, "/api/v1/products/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, dataMap(t, resp)["count"])

	w, resp = a.do(t, http.MethodGet, "/api/v1/products/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"All", "Design", "Ops"}, resp.Data)
}

func TestInvoiceListEndpoint(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do(t, http.MethodGet, "/api/v1/invoices?status=paid", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Len(t, data["invoices"], 2)
	assert.Equal(t, "40", data["outstanding"])

	w, resp = a.do(t, http.MethodGet, "/api/v1/invoices/next-number", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INV-0004", dataMap(t, resp)["number"])

	w, resp = a.do(t, http.MethodGet, "/api/v1/invoices?status=void", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestPremiumInsightEndpoints(t *testing.T) {
	a := newAPI(t)
	growthPath := "/api/v1/insights/revenue-growth"
	valuePath := "/api/v1/customers/" + a.customer.ID.String() + "/lifetime-value"

	for _, path := range []string{growthPath, valuePath} {
		w, resp := a.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Equal(t, dto.ErrCodePremiumRequired, resp.Error.Code)

		w, _ = a.do(t, http.MethodGet, path, "", a.token(t, false))
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}

	premium := a.token(t, true)
	w, resp := a.do(t, http.MethodGet, growthPath, "", premium)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "50", dataMap(t, resp)["growth_percent"])

	w, resp = a.do(t, http.MethodGet, valuePath, "", premium)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "250", dataMap(t, resp)["lifetime_value"])

	w, resp = a.do(t, http.MethodGet, growthPath, "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenInvalid, resp.Error.Code)
}
