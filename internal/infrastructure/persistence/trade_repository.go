package persistence

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/trade"
)

// OrderRepository implements trade.OrderRepository over the collection store
type OrderRepository struct {
	store *CollectionStore
}

// NewOrderRepository creates a purchase order repository
func NewOrderRepository(store *CollectionStore) *OrderRepository {
	return &OrderRepository{store: store}
}

// Load returns all purchase orders
func (r *OrderRepository) Load(ctx context.Context) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	if err := r.store.Load(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []trade.PurchaseOrder{}
	}
	return orders, nil
}

// Save overwrites the stored purchase orders
func (r *OrderRepository) Save(ctx context.Context, orders []trade.PurchaseOrder) error {
	return r.store.Save(ctx, KeyOrders, orders)
}

// InvoiceRepository implements trade.InvoiceRepository over the collection store
type InvoiceRepository struct {
	store *CollectionStore
}

// NewInvoiceRepository creates an invoice repository
func NewInvoiceRepository(store *CollectionStore) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// Load returns all invoices
func (r *InvoiceRepository) Load(ctx context.Context) ([]trade.Invoice, error) {
	var invoices []trade.Invoice
	if err := r.store.Load(ctx, KeyInvoices, &invoices); err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []trade.Invoice{}
	}
	return invoices, nil
}

// Save overwrites the stored invoices
func (r *InvoiceRepository) Save(ctx context.Context, invoices []trade.Invoice) error {
	return r.store.Save(ctx, KeyInvoices, invoices)
}

// ReturnRepository implements trade.ReturnRepository over the collection store
type ReturnRepository struct {
	store *CollectionStore
}

// NewReturnRepository creates a return/exchange history repository
func NewReturnRepository(store *CollectionStore) *ReturnRepository {
	return &ReturnRepository{store: store}
}

// Load returns the full return/exchange history
func (r *ReturnRepository) Load(ctx context.Context) ([]trade.ReturnExchange, error) {
	var returns []trade.ReturnExchange
	if err := r.store.Load(ctx, KeyReturns, &returns); err != nil {
		return nil, err
	}
	if returns == nil {
		returns = []trade.ReturnExchange{}
	}
	return returns, nil
}

// Save overwrites the stored return/exchange history
func (r *ReturnRepository) Save(ctx context.Context, returns []trade.ReturnExchange) error {
	return r.store.Save(ctx, KeyReturns, returns)
}
