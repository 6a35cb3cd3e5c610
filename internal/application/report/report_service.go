package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/report"
	"github.com/invoicer/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportService loads collections from storage and runs the pure report
// queries over them
type ReportService struct {
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	invoiceRepo  invoicing.InvoiceRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	invoiceRepo invoicing.InvoiceRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the time source used by month based insights
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// SearchCustomers returns customers matching query
func (s *ReportService) SearchCustomers(ctx context.Context, query string) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(report.FilterCustomers(customers, query)), nil
}

// CustomerSummary returns the billed subtotal and invoice count of a customer
func (s *ReportService) CustomerSummary(ctx context.Context, customerID uuid.UUID) (*CustomerSummaryResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	summary := report.CustomerSummary(*customer, invoices)
	return &CustomerSummaryResponse{
		Customer: ToCustomerResponse(*customer),
		Total:    summary.Total,
		Count:    summary.Count,
	}, nil
}

// SearchProducts returns products matching query within category
func (s *ReportService) SearchProducts(ctx context.Context, query, category string) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(report.FilterProducts(products, query, category)), nil
}

// ProductStats summarises the products matching query within category
func (s *ReportService) ProductStats(ctx context.Context, query, category string) (report.ProductStatistics, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return report.ProductStatistics{}, err
	}
	return report.ProductStats(report.FilterProducts(products, query, category)), nil
}

// Categories lists product categories with the "All" sentinel first
func (s *ReportService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.Categories(products), nil
}

// SearchInvoices filters invoices by status and query and reports
// per-status counts over the unfiltered list. Invoices whose stored data
// cannot be totalled are left out of the outstanding balance and listed
// with their problem.
func (s *ReportService) SearchInvoices(ctx context.Context, status, query string) (*InvoiceListResponse, error) {
	var st invoicing.InvoiceStatus
	if status != "" {
		parsed, err := invoicing.ParseInvoiceStatus(status)
		if err != nil {
			return nil, err
		}
		st = parsed
	}

	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totallable := make([]invoicing.Invoice, 0, len(invoices))
	for i := range invoices {
		if _, err := invoices[i].Totals(); err != nil {
			s.logger.Warn("invoice excluded from outstanding balance",
				zap.String("invoice_id", invoices[i].ID.String()),
				zap.String("number", invoices[i].Number),
				zap.Error(err),
			)
			continue
		}
		totallable = append(totallable, invoices[i])
	}
	outstanding, err := report.OutstandingBalance(totallable)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterInvoices(invoices, st, query)
	items := make([]InvoiceSummaryResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, ToInvoiceSummaryResponse(&filtered[i], s.now()))
	}

	return &InvoiceListResponse{
		Invoices:    items,
		Counts:      report.InvoiceStatusCounts(invoices),
		Outstanding: outstanding,
	}, nil
}

// NextInvoiceNumber suggests the number following the highest stored
// invoice number carrying prefix
func (s *ReportService) NextInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		prefix = invoicing.DefaultNumberPrefix
	}
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return "", err
	}
	numbers := make([]string, len(invoices))
	for i := range invoices {
		numbers[i] = invoices[i].Number
	}
	return invoicing.NextNumber(prefix, numbers), nil
}

// RevenueGrowth compares this month's paid revenue with last month's.
// Requires premium.
func (s *ReportService) RevenueGrowth(ctx context.Context, isPremiumEnabled bool) (*report.RevenueGrowthResult, error) {
	if err := s.requirePremium("revenue_growth", isPremiumEnabled); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res, err := report.RevenueGrowth(invoices, s.now())
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CustomerLifetimeValue reports what a customer has paid so far.
// Requires premium.
func (s *ReportService) CustomerLifetimeValue(ctx context.Context, customerID uuid.UUID, isPremiumEnabled bool) (*report.CustomerValueResult, error) {
	if err := s.requirePremium("customer_lifetime_value", isPremiumEnabled); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	res, err := report.CustomerLifetimeValue(*customer, invoices)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReportService) requirePremium(insight string, isPremiumEnabled bool) error {
	if isPremiumEnabled {
		return nil
	}
	s.logger.Warn("premium insight denied", zap.String("insight", insight))
	return shared.ErrPremiumRequired
}
