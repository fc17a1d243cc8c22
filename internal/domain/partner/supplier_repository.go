package partner

import "context"

// SupplierRepository persists the supplier collection as a whole
type SupplierRepository interface {
	Load(ctx context.Context) ([]Supplier, error)
	Save(ctx context.Context, suppliers []Supplier) error
}

// DeletedSupplierRepository persists the tombstones of deleted suppliers
type DeletedSupplierRepository interface {
	Load(ctx context.Context) ([]DeletedSupplier, error)
	Save(ctx context.Context, tombstones []DeletedSupplier) error
}
