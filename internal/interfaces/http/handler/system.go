package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the storage backing the service is
// reachable
type HealthChecker interface {
	Ping() error
}

// SystemHandler handles health and liveness requests
type SystemHandler struct {
	BaseHandler
	checker HealthChecker
	started time.Time
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(checker HealthChecker, version string) *SystemHandler {
	return &SystemHandler{
		checker: checker,
		started: time.Now(),
		version: version,
	}
}

// RegisterRoutes registers system routes under the API prefix
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
}

// Ping handles GET /api/v1/ping
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := h.checker.Ping(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
