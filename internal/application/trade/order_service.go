package trade

import (
	"context"
	"time"

	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/partner"
	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/garmentshop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries the purchase order payload
type CreateOrderRequest struct {
	SupplierID       string            `json:"supplierId" binding:"required"`
	ExpectedDelivery time.Time         `json:"expectedDelivery"`
	Items            []trade.OrderItem `json:"items" binding:"required"`
	ShippingAddress  string            `json:"shippingAddress"`
	PaymentType      string            `json:"paymentType"`
	TaxRate          decimal.Decimal   `json:"taxRate"`
	Paid             decimal.Decimal   `json:"paid"`
}

// UpdateOrderRequest carries the editable fields of a pending order
type UpdateOrderRequest struct {
	ExpectedDelivery time.Time         `json:"expectedDelivery"`
	Items            []trade.OrderItem `json:"items"`
	ShippingAddress  string            `json:"shippingAddress"`
	PaymentType      string            `json:"paymentType"`
	TaxRate          decimal.Decimal   `json:"taxRate"`
	Paid             decimal.Decimal   `json:"paid"`
}

// StatusUpdateResult reports a status change and, when the change
// delivered goods into stock, the resulting movements
type StatusUpdateResult struct {
	Order *trade.PurchaseOrder   `json:"order"`
	Stock *inventory.BatchResult `json:"stock,omitempty"`
}

// OrderService handles purchase orders. Marking an order Delivered is
// the only path that receives its goods into stock, and the status
// machine guarantees that happens at most once per order.
type OrderService struct {
	orders    trade.OrderRepository
	suppliers partner.SupplierRepository
	ledger    *inventory.Ledger
}

// NewOrderService creates a new OrderService
func NewOrderService(orders trade.OrderRepository, suppliers partner.SupplierRepository, ledger *inventory.Ledger) *OrderService {
	return &OrderService{
		orders:    orders,
		suppliers: suppliers,
		ledger:    ledger,
	}
}

// Create places a new pending order with the supplier
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*trade.PurchaseOrder, error) {
	supplierName, err := s.resolveSupplierName(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(req.SupplierID, supplierName, req.Items)
	if err != nil {
		return nil, err
	}
	order.ExpectedDelivery = req.ExpectedDelivery
	order.ShippingAddress = req.ShippingAddress
	order.Payment.Type = req.PaymentType
	order.Payment.Paid = req.Paid
	order.ComputeTotals(req.TaxRate)

	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, *order)
	if err := s.orders.Save(ctx, orders); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns all purchase orders
func (s *OrderService) List(ctx context.Context) ([]trade.PurchaseOrder, error) {
	return s.orders.Load(ctx)
}

// Get returns one order by id
func (s *OrderService) Get(ctx context.Context, orderID string) (*trade.PurchaseOrder, error) {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Update replaces the editable fields of a pending order
func (s *OrderService) Update(ctx context.Context, orderID string, req UpdateOrderRequest) (*trade.PurchaseOrder, error) {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		if !orders[i].IsPending() {
			return nil, shared.NewDomainError("INVALID_STATE", "Only pending orders can be edited")
		}
		if len(req.Items) > 0 {
			orders[i].Items = req.Items
		}
		if !req.ExpectedDelivery.IsZero() {
			orders[i].ExpectedDelivery = req.ExpectedDelivery
		}
		if req.ShippingAddress != "" {
			orders[i].ShippingAddress = req.ShippingAddress
		}
		if req.PaymentType != "" {
			orders[i].Payment.Type = req.PaymentType
		}
		orders[i].Payment.Paid = req.Paid
		orders[i].ComputeTotals(req.TaxRate)

		if err := s.orders.Save(ctx, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, shared.ErrNotFound
}

// Delete removes a pending order
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return err
	}
	remaining := orders[:0]
	found := false
	for _, o := range orders {
		if o.OrderID == orderID {
			if !o.IsPending() {
				return shared.NewDomainError("INVALID_STATE", "Only pending orders can be deleted")
			}
			found = true
			continue
		}
		remaining = append(remaining, o)
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.orders.Save(ctx, remaining)
}

// UpdateStatus transitions an order. Delivering it receives the
// ordered quantities into stock through the ledger.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status trade.OrderStatus) (*StatusUpdateResult, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown order status: "+string(status))
	}

	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}

		result := &StatusUpdateResult{Order: &orders[i]}
		switch status {
		case trade.OrderStatusDelivered:
			if err := orders[i].MarkDelivered(); err != nil {
				return nil, err
			}
			items := make([]inventory.LineItem, 0, len(orders[i].Items))
			for _, item := range orders[i].Items {
				items = append(items, inventory.LineItem{SKU: item.SKU, Quantity: item.Quantity})
			}
			stock, err := s.ledger.ReceiveStock(ctx, items, orders[i].OrderID, orders[i].SupplierName)
			if err != nil {
				return nil, err
			}
			result.Stock = stock
		case trade.OrderStatusCancelled:
			if err := orders[i].Cancel(); err != nil {
				return nil, err
			}
		default:
			return nil, shared.NewDomainError("INVALID_STATE", "Orders cannot move back to Pending")
		}

		if err := s.orders.Save(ctx, orders); err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, shared.ErrNotFound
}

// resolveSupplierName returns the supplier's display name, falling
// back to the raw id when the supplier is unknown
func (s *OrderService) resolveSupplierName(ctx context.Context, supplierID string) (string, error) {
	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return "", err
	}
	for _, supplier := range suppliers {
		if supplier.SupplierID == supplierID {
			return supplier.BusinessName, nil
		}
	}
	return supplierID, nil
}
