package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/garmentshop/backend/internal/application/inventory"
)

// InventoryHandler handles stock and movement history HTTP requests
type InventoryHandler struct {
	BaseHandler
	service *appinventory.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/inventory")
	{
		inv.GET("/stock", h.ListStock)
		inv.GET("/stock/:sku", h.GetStock)
		inv.GET("/low-stock", h.ListLowStock)
		inv.POST("/adjustments", h.Adjust)
		inv.GET("/history", h.History)
	}
}

// ListStock handles GET /inventory/stock
func (h *InventoryHandler) ListStock(c *gin.Context) {
	records, err := h.service.ListStock(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, len(records))
}

// GetStock handles GET /inventory/stock/:sku
func (h *InventoryHandler) GetStock(c *gin.Context) {
	record, err := h.service.GetStock(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// ListLowStock handles GET /inventory/low-stock
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	records, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, len(records))
}

// Adjust handles POST /inventory/adjustments
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req appinventory.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	delta, err := h.service.Adjust(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, delta)
}

// History handles GET /inventory/history
func (h *InventoryHandler) History(c *gin.Context) {
	var filter appinventory.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	entries, err := h.service.History(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}
