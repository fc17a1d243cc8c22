package handler

import (
	"github.com/gin-gonic/gin"

	appsettings "github.com/garmentshop/backend/internal/application/settings"
	"github.com/garmentshop/backend/internal/domain/settings"
)

// SettingsHandler handles store configuration HTTP requests
type SettingsHandler struct {
	BaseHandler
	service *appsettings.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *appsettings.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/settings")
	{
		s.GET("/business", h.GetBusinessInfo)
		s.PUT("/business", h.PutBusinessInfo)
		s.GET("/invoice", h.GetInvoiceSettings)
		s.PUT("/invoice", h.PutInvoiceSettings)
		s.GET("/store", h.GetStoreSettings)
		s.PUT("/store", h.PutStoreSettings)
		s.GET("/staff", h.ListStaff)
		s.POST("/staff", h.AddStaff)
		s.DELETE("/staff/:id", h.RemoveStaff)
		s.GET("/addresses", h.ListAddresses)
		s.POST("/addresses", h.AddAddress)
		s.DELETE("/addresses/:id", h.RemoveAddress)
	}
}

// GetBusinessInfo handles GET /settings/business
func (h *SettingsHandler) GetBusinessInfo(c *gin.Context) {
	info, err := h.service.GetBusinessInfo(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, info)
}

// PutBusinessInfo handles PUT /settings/business
func (h *SettingsHandler) PutBusinessInfo(c *gin.Context) {
	var info settings.BusinessInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if err := h.service.PutBusinessInfo(c.Request.Context(), info); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, info)
}

// GetInvoiceSettings handles GET /settings/invoice
func (h *SettingsHandler) GetInvoiceSettings(c *gin.Context) {
	cfg, err := h.service.GetInvoiceSettings(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cfg)
}

// PutInvoiceSettings handles PUT /settings/invoice
func (h *SettingsHandler) PutInvoiceSettings(c *gin.Context) {
	var cfg settings.InvoiceSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if err := h.service.PutInvoiceSettings(c.Request.Context(), cfg); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cfg)
}

// GetStoreSettings handles GET /settings/store
func (h *SettingsHandler) GetStoreSettings(c *gin.Context) {
	cfg, err := h.service.GetStoreSettings(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cfg)
}

// PutStoreSettings handles PUT /settings/store
func (h *SettingsHandler) PutStoreSettings(c *gin.Context) {
	var cfg settings.StoreSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if err := h.service.PutStoreSettings(c.Request.Context(), cfg); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cfg)
}

// ListStaff handles GET /settings/staff
func (h *SettingsHandler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, staff, len(staff))
}

// AddStaff handles POST /settings/staff
func (h *SettingsHandler) AddStaff(c *gin.Context) {
	var req appsettings.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	member, err := h.service.AddStaff(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, member)
}

// RemoveStaff handles DELETE /settings/staff/:id
func (h *SettingsHandler) RemoveStaff(c *gin.Context) {
	if err := h.service.RemoveStaff(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAddresses handles GET /settings/addresses
func (h *SettingsHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.service.ListAddresses(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, addresses, len(addresses))
}

// AddAddress handles POST /settings/addresses
func (h *SettingsHandler) AddAddress(c *gin.Context) {
	var req appsettings.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	address, err := h.service.AddAddress(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, address)
}

// RemoveAddress handles DELETE /settings/addresses/:id
func (h *SettingsHandler) RemoveAddress(c *gin.Context) {
	if err := h.service.RemoveAddress(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
