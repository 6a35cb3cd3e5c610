package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicer/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler serves the health check
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. db may be nil.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db, startTime: time.Now()}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status, database := http.StatusOK, "up"
	if h.db == nil {
		database = "none"
	} else if err := h.db.Ping(); err != nil {
		logger.L(c.Request.Context()).Warn("Health check failed", zap.Error(err))
		status, database = http.StatusServiceUnavailable, "down"
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": database,
		"uptime":   time.Since(h.startTime).Round(time.Second).String(),
	})
}
