package router

import (
	"github.com/gin-gonic/gin"
	"github.com/invoicer/backend/internal/infrastructure/auth"
	"github.com/invoicer/backend/internal/infrastructure/config"
	"github.com/invoicer/backend/internal/infrastructure/logger"
	"github.com/invoicer/backend/internal/interfaces/http/handler"
	"github.com/invoicer/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewEngine
type Handlers struct {
	Invoicing *handler.InvoicingHandler
	Template  *handler.TemplateHandler
	Report    *handler.ReportHandler
	System    *handler.SystemHandler
}

// NewEngine builds the gin engine with the middleware chain and every
// invoice API route
func NewEngine(cfg config.HTTPConfig, jwtService *auth.JWTService, log *zap.Logger, h Handlers) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.CORS(middleware.CORSConfigFrom(cfg)),
		middleware.BodyLimit(cfg.MaxBodySize),
	)
	engine.GET("/health", h.System.Health)

	entitlement := middleware.Entitlement(jwtService, log)

	invoices := NewDomainGroup("invoices", "/invoices").Use(entitlement)
	invoices.POST("/totals", h.Invoicing.ComputeTotals)
	invoices.GET("", h.Report.ListInvoices)
	invoices.GET("/next-number", h.Report.NextInvoiceNumber)

	money := NewDomainGroup("money", "/money")
	money.POST("/format", h.Invoicing.FormatMoney)
	money.POST("/parse", h.Invoicing.ParseMoney)

	templates := NewDomainGroup("templates", "/templates")
	templates.GET("/designs", h.Template.ListDesigns)
	templates.GET("/themes", h.Template.ListThemes)
	templates.POST("/preview", h.Template.Preview)

	customers := NewDomainGroup("customers", "/customers").Use(entitlement)
	customers.GET("", h.Report.ListCustomers)
	customers.GET("/:id/summary", h.Report.CustomerSummary)
	customers.GET("/:id/lifetime-value", h.Report.CustomerLifetimeValue)

	products := NewDomainGroup("products", "/products")
	products.GET("", h.Report.ListProducts)
	products.GET("/stats", h.Report.ProductStats)
	products.GET("/categories", h.Report.ProductCategories)

	insights := NewDomainGroup("insights", "/insights").Use(entitlement)
	insights.GET("/revenue-growth", h.Report.RevenueGrowth)

	NewRouter(engine).
		Register(invoices).
		Register(money).
		Register(templates).
		Register(customers).
		Register(products).
		Register(insights).
		Setup()

	return engine
}
