package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/invoicer/backend/internal/application/report"
	"github.com/invoicer/backend/internal/interfaces/http/middleware"
)

// ReportHandler serves customer, product and invoice queries and the
// premium insights
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListCustomers handles GET /customers?search=
func (h *ReportHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.SearchCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, customers, len(customers))
}

// CustomerSummary handles GET /customers/:id/summary
func (h *ReportHandler) CustomerSummary(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	summary, err := h.service.CustomerSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// CustomerLifetimeValue handles GET /customers/:id/lifetime-value (premium)
func (h *ReportHandler) CustomerLifetimeValue(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	value, err := h.service.CustomerLifetimeValue(c.Request.Context(), id, middleware.IsPremiumEnabled(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, value)
}

// ListProducts handles GET /products?search=&category=
func (h *ReportHandler) ListProducts(c *gin.Context) {
	products, err := h.service.SearchProducts(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, products, len(products))
}

// ProductStats handles GET /products/stats?search=&category=
func (h *ReportHandler) ProductStats(c *gin.Context) {
	stats, err := h.service.ProductStats(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// ProductCategories handles GET /products/categories
func (h *ReportHandler) ProductCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// ListInvoices handles GET /invoices?status=&search=
func (h *ReportHandler) ListInvoices(c *gin.Context) {
	list, err := h.service.SearchInvoices(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// NextInvoiceNumber handles GET /invoices/next-number?prefix=
func (h *ReportHandler) NextInvoiceNumber(c *gin.Context) {
	number, err := h.service.NextInvoiceNumber(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"number": number})
}

// RevenueGrowth handles GET /insights/revenue-growth (premium)
func (h *ReportHandler) RevenueGrowth(c *gin.Context) {
	growth, err := h.service.RevenueGrowth(c.Request.Context(), middleware.IsPremiumEnabled(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, growth)
}
