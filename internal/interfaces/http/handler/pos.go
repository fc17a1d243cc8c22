package handler

import (
	"github.com/gin-gonic/gin"

	apptrade "github.com/garmentshop/backend/internal/application/trade"
)

// POSHandler handles point-of-sale HTTP requests
type POSHandler struct {
	BaseHandler
	service *apptrade.POSService
}

// NewPOSHandler creates a new POSHandler
func NewPOSHandler(service *apptrade.POSService) *POSHandler {
	return &POSHandler{service: service}
}

// RegisterRoutes registers POS routes
func (h *POSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pos := rg.Group("/trade/pos")
	{
		pos.POST("/checkout", h.Checkout)
		pos.GET("/invoices", h.ListInvoices)
		pos.GET("/invoices/:number", h.GetInvoice)
		pos.POST("/returns", h.ProcessReturn)
		pos.GET("/returns", h.ListReturns)
	}
}

// Checkout handles POST /trade/pos/checkout
func (h *POSHandler) Checkout(c *gin.Context) {
	var req apptrade.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	result, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// ListInvoices handles GET /trade/pos/invoices
func (h *POSHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, len(invoices))
}

// GetInvoice handles GET /trade/pos/invoices/:number
func (h *POSHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

// ProcessReturn handles POST /trade/pos/returns
func (h *POSHandler) ProcessReturn(c *gin.Context) {
	var req apptrade.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	result, err := h.service.ProcessReturn(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// ListReturns handles GET /trade/pos/returns
func (h *POSHandler) ListReturns(c *gin.Context) {
	returns, err := h.service.ListReturns(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, returns, len(returns))
}
