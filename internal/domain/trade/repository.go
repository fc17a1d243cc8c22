package trade

import "context"

// OrderRepository persists the purchase order collection as a whole
type OrderRepository interface {
	Load(ctx context.Context) ([]PurchaseOrder, error)
	Save(ctx context.Context, orders []PurchaseOrder) error
}

// InvoiceRepository persists the invoice collection as a whole
type InvoiceRepository interface {
	Load(ctx context.Context) ([]Invoice, error)
	Save(ctx context.Context, invoices []Invoice) error
}

// ReturnRepository persists the return/exchange history
type ReturnRepository interface {
	Load(ctx context.Context) ([]ReturnExchange, error)
	Save(ctx context.Context, returns []ReturnExchange) error
}
