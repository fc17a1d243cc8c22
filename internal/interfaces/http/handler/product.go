package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/garmentshop/backend/internal/application/catalog"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.POST("/sku-preview", h.PreviewSKU)
		products.GET("/:sku", h.Get)
		products.DELETE("/:sku", h.Delete)
	}

	options := rg.Group("/catalog/options")
	{
		options.GET("/:kind", h.GetOptions)
		options.PUT("/:kind", h.PutOptions)
	}
}

// List handles GET /catalog/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, len(products))
}

// Create handles POST /catalog/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /catalog/products/:sku
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.Get(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /catalog/products/:sku
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("sku")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// PreviewSKU handles POST /catalog/products/sku-preview
func (h *ProductHandler) PreviewSKU(c *gin.Context) {
	var req appcatalog.SKUPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	sku, err := h.service.PreviewSKU(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"sku": sku})
}

// GetOptions handles GET /catalog/options/:kind
func (h *ProductHandler) GetOptions(c *gin.Context) {
	values, err := h.service.GetOptions(c.Request.Context(), c.Param("kind"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, values)
}

// PutOptions handles PUT /catalog/options/:kind
func (h *ProductHandler) PutOptions(c *gin.Context) {
	var req struct {
		Values []string `json:"values" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	values, err := h.service.PutOptions(c.Request.Context(), c.Param("kind"), req.Values)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, values)
}
