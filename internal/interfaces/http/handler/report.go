package handler

import (
	"github.com/gin-gonic/gin"

	appreport "github.com/garmentshop/backend/internal/application/report"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	BaseHandler
	service *appreport.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *appreport.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/sales", h.Sales)
		reports.GET("/inventory", h.Inventory)
	}
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dashboard)
}

// Sales handles GET /reports/sales
func (h *ReportHandler) Sales(c *gin.Context) {
	report, err := h.service.Sales(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}

// Inventory handles GET /reports/inventory
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.service.Inventory(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, report)
}
