package handler

import (
	"github.com/gin-gonic/gin"
	invoicingapp "github.com/invoicer/backend/internal/application/invoicing"
)

// InvoicingHandler handles totals and money formatting endpoints
type InvoicingHandler struct {
	BaseHandler
	service *invoicingapp.InvoicingService
}

// NewInvoicingHandler creates a new InvoicingHandler
func NewInvoicingHandler(service *invoicingapp.InvoicingService) *InvoicingHandler {
	return &InvoicingHandler{service: service}
}

// ComputeTotals handles POST /invoices/totals
func (h *InvoicingHandler) ComputeTotals(c *gin.Context) {
	var req invoicingapp.ComputeTotalsRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.ComputeTotals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// FormatMoney handles POST /money/format
func (h *InvoicingHandler) FormatMoney(c *gin.Context) {
	var req invoicingapp.FormatMoneyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.FormatMoney(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ParseMoney handles POST /money/parse
func (h *InvoicingHandler) ParseMoney(c *gin.Context) {
	var req invoicingapp.ParseMoneyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.ParseMoney(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
