package handler

import (
	"github.com/gin-gonic/gin"

	apppartner "github.com/garmentshop/backend/internal/application/partner"
)

// SupplierHandler handles supplier HTTP requests
type SupplierHandler struct {
	BaseHandler
	service *apppartner.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(service *apppartner.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// RegisterRoutes registers supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/partner/suppliers")
	{
		suppliers.GET("", h.List)
		suppliers.POST("", h.Create)
		suppliers.GET("/deleted", h.ListDeleted)
		suppliers.GET("/:id", h.Get)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

// List handles GET /partner/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, suppliers, len(suppliers))
}

// Create handles POST /partner/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req apppartner.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	supplier, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, supplier)
}

// Get handles GET /partner/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	supplier, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Update handles PUT /partner/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	var req apppartner.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	supplier, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Delete handles DELETE /partner/suppliers/:id and reports the cascade
func (h *SupplierHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// ListDeleted handles GET /partner/suppliers/deleted
func (h *SupplierHandler) ListDeleted(c *gin.Context) {
	deleted, err := h.service.ListDeleted(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, deleted, len(deleted))
}
