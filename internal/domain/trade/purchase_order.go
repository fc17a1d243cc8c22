package trade

import (
	"fmt"
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem is a line item in a purchase order
type OrderItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

// PaymentDetails records the agreed payment for an order
type PaymentDetails struct {
	Type      string          `json:"type"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// PurchaseOrder is an order placed with a supplier. Marking it
// Delivered is what brings its goods into stock, exactly once.
type PurchaseOrder struct {
	OrderID          string         `json:"orderId"`
	SupplierID       string         `json:"supplierId"`
	SupplierName     string         `json:"supplierName"`
	OrderDate        time.Time      `json:"orderDate"`
	ExpectedDelivery time.Time      `json:"expectedDelivery"`
	Items            []OrderItem    `json:"items"`
	ShippingAddress  string         `json:"shippingAddress"`
	Payment          PaymentDetails `json:"payment"`
	Status           OrderStatus    `json:"status"`
	DeliveredAt      *time.Time     `json:"deliveredAt,omitempty"`
}

// NewPurchaseOrder creates a pending order with a generated id
func NewPurchaseOrder(supplierID, supplierName string, items []OrderItem) (*PurchaseOrder, error) {
	if supplierID == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must have at least one item")
	}
	for _, item := range items {
		if item.SKU == "" {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Order item SKU cannot be empty")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Order item quantity must be positive")
		}
		if item.CostPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Order item cost cannot be negative")
		}
	}

	return &PurchaseOrder{
		OrderID:      NewOrderID(),
		SupplierID:   supplierID,
		SupplierName: supplierName,
		OrderDate:    time.Now(),
		Items:        items,
		Status:       OrderStatusPending,
	}, nil
}

// MarkDelivered transitions the order to Delivered. An order that is
// already Delivered or Cancelled cannot be delivered again, which is
// what guarantees its stock receipt fires exactly once.
func (o *PurchaseOrder) MarkDelivered() error {
	if !o.Status.CanTransitionTo(OrderStatusDelivered) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot deliver order in status %s", o.Status))
	}
	now := time.Now()
	o.Status = OrderStatusDelivered
	o.DeliveredAt = &now
	return nil
}

// Cancel transitions the order to Cancelled
func (o *PurchaseOrder) Cancel() error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in status %s", o.Status))
	}
	o.Status = OrderStatusCancelled
	return nil
}

// IsPending returns true while the order can still change
func (o *PurchaseOrder) IsPending() bool {
	return o.Status == OrderStatusPending
}

// TotalQuantity returns the number of units across all line items
func (o *PurchaseOrder) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// ComputeTotals fills the payment subtotal, tax and total from the line
// items and the given tax rate percentage, keeping paid/remaining
// consistent
func (o *PurchaseOrder) ComputeTotals(taxRate decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	o.Payment.Subtotal = subtotal.Round(2)
	o.Payment.Tax = tax
	o.Payment.Total = o.Payment.Subtotal.Add(tax)
	o.Payment.Remaining = o.Payment.Total.Sub(o.Payment.Paid)
}

// NewOrderID generates a time-derived order id (PO-xxxxxx)
func NewOrderID() string {
	return fmt.Sprintf("PO-%06d", time.Now().UnixMilli()%1000000)
}
