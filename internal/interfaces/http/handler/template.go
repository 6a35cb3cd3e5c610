package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	templateapp "github.com/invoicer/backend/internal/application/template"
)

// TemplateHandler serves the template catalog and invoice previews
type TemplateHandler struct {
	BaseHandler
	service *templateapp.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(service *templateapp.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// ListDesigns handles GET /templates/designs
func (h *TemplateHandler) ListDesigns(c *gin.Context) {
	designs := h.service.ListDesigns(c.Request.Context())
	h.SuccessList(c, designs, len(designs))
}

// ListThemes handles GET /templates/themes
func (h *TemplateHandler) ListThemes(c *gin.Context) {
	themes := h.service.ListThemes(c.Request.Context())
	h.SuccessList(c, themes, len(themes))
}

// Preview handles POST /templates/preview. With ?format=html the rendered
// document is returned as text/html instead of JSON.
func (h *TemplateHandler) Preview(c *gin.Context) {
	var req templateapp.PreviewRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(resp.HTML))
		return
	}
	h.Success(c, resp)
}
