package persistence

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/partner"
)

// SupplierRepository implements partner.SupplierRepository over the
// collection store
type SupplierRepository struct {
	store *CollectionStore
}

// NewSupplierRepository creates a supplier repository
func NewSupplierRepository(store *CollectionStore) *SupplierRepository {
	return &SupplierRepository{store: store}
}

// Load returns all suppliers
func (r *SupplierRepository) Load(ctx context.Context) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	if err := r.store.Load(ctx, KeySuppliers, &suppliers); err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = []partner.Supplier{}
	}
	return suppliers, nil
}

// Save overwrites the stored suppliers
func (r *SupplierRepository) Save(ctx context.Context, suppliers []partner.Supplier) error {
	return r.store.Save(ctx, KeySuppliers, suppliers)
}

// DeletedSupplierRepository implements partner.DeletedSupplierRepository
type DeletedSupplierRepository struct {
	store *CollectionStore
}

// NewDeletedSupplierRepository creates a tombstone repository
func NewDeletedSupplierRepository(store *CollectionStore) *DeletedSupplierRepository {
	return &DeletedSupplierRepository{store: store}
}

// Load returns all supplier tombstones
func (r *DeletedSupplierRepository) Load(ctx context.Context) ([]partner.DeletedSupplier, error) {
	var tombstones []partner.DeletedSupplier
	if err := r.store.Load(ctx, KeyDeletedSuppliers, &tombstones); err != nil {
		return nil, err
	}
	if tombstones == nil {
		tombstones = []partner.DeletedSupplier{}
	}
	return tombstones, nil
}

// Save overwrites the stored tombstones
func (r *DeletedSupplierRepository) Save(ctx context.Context, tombstones []partner.DeletedSupplier) error {
	return r.store.Save(ctx, KeyDeletedSuppliers, tombstones)
}
