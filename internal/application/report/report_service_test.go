package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]invoicing.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]invoicing.Invoice, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

// =============================================================================
// Fixtures
// =============================================================================

type fixture struct {
	customers *MockCustomerRepository
	products  *MockProductRepository
	invoices  *MockInvoiceRepository
	svc       *ReportService
}

var june15 = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newFixture(logger *zap.Logger) *fixture {
	f := &fixture{
		customers: new(MockCustomerRepository),
		products:  new(MockProductRepository),
		invoices:  new(MockInvoiceRepository),
	}
	f.svc = NewReportService(f.customers, f.products, f.invoices, logger).
		WithClock(func() time.Time { return june15 })
	return f
}

func newCustomer(t *testing.T, name, org string) partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer(name, "")
	require.NoError(t, err)
	require.NoError(t, c.SetOrganization(org))
	return *c
}

func newInvoice(t *testing.T, number string, customerID uuid.UUID, issued time.Time, amount int64, status invoicing.InvoiceStatus) invoicing.Invoice {
	t.Helper()
	inv, err := invoicing.NewInvoice(number, uuid.New(), customerID, valueobject.USD, issued, issued.AddDate(0, 0, 14))
	require.NoError(t, err)
	item, err := invoicing.NewLineItem("Work", decimal.NewFromInt(1), decimal.NewFromInt(amount))
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(item))
	require.NoError(t, inv.SetStatus(status))
	return *inv
}

// =============================================================================
// Tests
// =============================================================================

func TestSearchCustomers(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	f.customers.On("FindAll", ctx).Return([]partner.Customer{
		newCustomer(t, "Ana", "Acme GmbH"),
		newCustomer(t, "Ben", ""),
	}, nil)

	got, err := f.svc.SearchCustomers(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)

	all, err := f.svc.SearchCustomers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCustomerSummary(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	c := newCustomer(t, "Ana", "")
	f.customers.On("FindByID", ctx, c.ID).Return(&c, nil)
	f.invoices.On("FindByCustomer", ctx, c.ID).Return([]invoicing.Invoice{
		newInvoice(t, "INV-0001", c.ID, june15, 100, invoicing.InvoiceStatusDraft),
		newInvoice(t, "INV-0002", c.ID, june15, 50, invoicing.InvoiceStatusPaid),
	}, nil)

	got, err := f.svc.CustomerSummary(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.True(t, decimal.NewFromInt(150).Equal(got.Total))
	assert.Equal(t, "Ana", got.Customer.Name)

	missing := uuid.New()
	f.customers.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
	_, err = f.svc.CustomerSummary(ctx, missing)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductQueries(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	p1, _ := catalog.NewProduct("Logo", "vector", decimal.NewFromInt(300), "Design")
	p2, _ := catalog.NewProduct("Hosting", "", decimal.NewFromInt(20), "Ops")
	p3, _ := catalog.NewProduct("Banner", "", decimal.NewFromInt(100), "Design")
	f.products.On("FindAll", ctx).Return([]catalog.Product{*p1, *p2, *p3}, nil)

	list, err := f.svc.SearchProducts(ctx, "", "Design")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	stats, err := f.svc.ProductStats(ctx, "", catalog.AllCategories)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.CategoryCount)
	assert.True(t, decimal.NewFromInt(140).Equal(stats.AverageRate))

	cats, err := f.svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Design", "Ops"}, cats)
}

func TestProductQueries_RepositoryError(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	f.products.On("FindAll", ctx).Return(nil, errors.New("db down"))

	_, err := f.svc.Categories(ctx)
	assert.EqualError(t, err, "db down")
}

func TestSearchInvoices(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	cid := uuid.New()
	f.invoices.On("FindAll", ctx).Return([]invoicing.Invoice{
		newInvoice(t, "INV-0001", cid, june15.AddDate(0, -1, 0), 100, invoicing.InvoiceStatusDraft),
		newInvoice(t, "INV-0002", cid, june15, 40, invoicing.InvoiceStatusPaid),
		newInvoice(t, "INV-0003", cid, june15, 10, invoicing.InvoiceStatusOverdue),
	}, nil)

	got, err := f.svc.SearchInvoices(ctx, "draft", "")
	require.NoError(t, err)
	require.Len(t, got.Invoices, 1)
	assert.Equal(t, "INV-0001", got.Invoices[0].Number)
	assert.True(t, got.Invoices[0].IsOverdue)
	assert.Equal(t, 1, got.Counts[invoicing.InvoiceStatusPaid])
	assert.True(t, decimal.NewFromInt(110).Equal(got.Outstanding))

	_, err = f.svc.SearchInvoices(ctx, "void", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	next, err := f.svc.NextInvoiceNumber(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "INV-0004", next)
	next, err = f.svc.NextInvoiceNumber(ctx, "Q-")
	require.NoError(t, err)
	assert.Equal(t, "Q-0001", next)
}

func TestSearchInvoices_SkipsUntotallableInvoice(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(zap.New(core))
	ctx := context.Background()
	cid := uuid.New()

	broken := newInvoice(t, "INV-0002", cid, june15, 70, invoicing.InvoiceStatusDraft)
	broken.TotalPaid = decimal.NewFromInt(-5)
	f.invoices.On("FindAll", ctx).Return([]invoicing.Invoice{
		newInvoice(t, "INV-0001", cid, june15, 100, invoicing.InvoiceStatusDraft),
		broken,
	}, nil)

	got, err := f.svc.SearchInvoices(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, got.Invoices, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Outstanding), "got %s", got.Outstanding)
	assert.Empty(t, got.Invoices[0].Problem)
	assert.Equal(t, "INV-0002", got.Invoices[1].Number)
	assert.Contains(t, got.Invoices[1].Problem, "total_paid")
	assert.True(t, got.Invoices[1].Total.IsZero())
	assert.Equal(t, 2, got.Counts[invoicing.InvoiceStatusDraft])

	entries := logs.FilterMessage("invoice excluded from outstanding balance").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "INV-0002", entries[0].ContextMap()["number"])
}

func TestPremiumInsights_Denied(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(zap.New(core))
	ctx := context.Background()

	_, err := f.svc.RevenueGrowth(ctx, false)
	assert.ErrorIs(t, err, shared.ErrPremiumRequired)
	_, err = f.svc.CustomerLifetimeValue(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, shared.ErrPremiumRequired)

	assert.Equal(t, 2, logs.FilterMessage("premium insight denied").Len())
	f.invoices.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestPremiumInsights(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()
	c := newCustomer(t, "Ana", "")
	invoices := []invoicing.Invoice{
		newInvoice(t, "INV-0001", c.ID, june15.AddDate(0, -1, 0), 100, invoicing.InvoiceStatusPaid),
		newInvoice(t, "INV-0002", c.ID, june15, 150, invoicing.InvoiceStatusPaid),
		newInvoice(t, "INV-0003", c.ID, june15, 999, invoicing.InvoiceStatusDraft),
	}
	f.invoices.On("FindAll", ctx).Return(invoices, nil)
	f.invoices.On("FindByCustomer", ctx, c.ID).Return(invoices, nil)
	f.customers.On("FindByID", ctx, c.ID).Return(&c, nil)

	growth, err := f.svc.RevenueGrowth(ctx, true)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(growth.CurrentMonth))
	assert.True(t, decimal.NewFromInt(100).Equal(growth.PreviousMonth))
	assert.True(t, decimal.NewFromInt(50).Equal(growth.GrowthPercent))

	value, err := f.svc.CustomerLifetimeValue(ctx, c.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 2, value.PaidCount)
	assert.True(t, decimal.NewFromInt(250).Equal(value.LifetimeValue))
	assert.True(t, decimal.NewFromInt(125).Equal(value.AverageInvoice))
}
