package handler

import (
	"github.com/gin-gonic/gin"

	apptrade "github.com/garmentshop/backend/internal/application/trade"
	"github.com/garmentshop/backend/internal/domain/trade"
)

// OrderHandler handles purchase order HTTP requests
type OrderHandler struct {
	BaseHandler
	service *apptrade.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *apptrade.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers purchase order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/trade/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.PUT("/:id/status", h.UpdateStatus)
	}
}

// List handles GET /trade/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, len(orders))
}

// Create handles POST /trade/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req apptrade.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// Get handles GET /trade/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Update handles PUT /trade/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req apptrade.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	order, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete handles DELETE /trade/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UpdateStatus handles PUT /trade/orders/:id/status. Moving an order to
// Delivered receives its goods into stock and reports the movements.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	result, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), trade.OrderStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
