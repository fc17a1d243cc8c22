package partner

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/partner"
	"github.com/garmentshop/backend/internal/domain/shared"
)

// SupplierRequest carries the supplier create/update payload
type SupplierRequest struct {
	BusinessName    string                   `json:"businessName" binding:"required"`
	ContactName     string                   `json:"contactName"`
	Phone           string                   `json:"phone"`
	AlternatePhone  string                   `json:"alternatePhone"`
	Email           string                   `json:"email"`
	GSTIN           string                   `json:"gstin"`
	Address         string                   `json:"address"`
	BankDetails     partner.BankDetails      `json:"bankDetails"`
	PaymentTerms    string                   `json:"paymentTerms"`
	OfferedProducts []partner.OfferedProduct `json:"offeredProducts"`
}

// DeleteResult reports what a cascading supplier delete removed
type DeleteResult struct {
	SupplierID      string `json:"supplierId"`
	RemovedProducts int    `json:"removedProducts"`
}

// SupplierService handles supplier operations, including the cascade
// that removes a deleted supplier's products and records a tombstone
type SupplierService struct {
	suppliers partner.SupplierRepository
	deleted   partner.DeletedSupplierRepository
	products  catalog.ProductRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers partner.SupplierRepository, deleted partner.DeletedSupplierRepository, products catalog.ProductRepository) *SupplierService {
	return &SupplierService{
		suppliers: suppliers,
		deleted:   deleted,
		products:  products,
	}
}

// Create registers a new supplier
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(req.BusinessName, req.ContactName, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(requestToSupplier(req)); err != nil {
		return nil, err
	}

	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return nil, err
	}
	suppliers = append(suppliers, *supplier)
	if err := s.suppliers.Save(ctx, suppliers); err != nil {
		return nil, err
	}
	return supplier, nil
}

// List returns all suppliers
func (s *SupplierService) List(ctx context.Context) ([]partner.Supplier, error) {
	return s.suppliers.Load(ctx)
}

// Get returns one supplier by id
func (s *SupplierService) Get(ctx context.Context, supplierID string) (*partner.Supplier, error) {
	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].SupplierID == supplierID {
			return &suppliers[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Update replaces a supplier's editable fields
func (s *SupplierService) Update(ctx context.Context, supplierID string, req SupplierRequest) (*partner.Supplier, error) {
	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].SupplierID != supplierID {
			continue
		}
		if err := suppliers[i].Update(requestToSupplier(req)); err != nil {
			return nil, err
		}
		if err := s.suppliers.Save(ctx, suppliers); err != nil {
			return nil, err
		}
		return &suppliers[i], nil
	}
	return nil, shared.ErrNotFound
}

// Delete removes a supplier, cascades to its catalog products and
// appends a tombstone to the deleted-suppliers collection
func (s *SupplierService) Delete(ctx context.Context, supplierID string) (*DeleteResult, error) {
	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Copy the match out before compacting; remaining reuses the same
	// backing array and would overwrite it.
	var target *partner.Supplier
	remaining := suppliers[:0]
	for i := range suppliers {
		if suppliers[i].SupplierID == supplierID {
			match := suppliers[i]
			target = &match
			continue
		}
		remaining = append(remaining, suppliers[i])
	}
	if target == nil {
		return nil, shared.ErrNotFound
	}

	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	kept := products[:0]
	removed := 0
	for _, p := range products {
		if p.SupplierID == supplierID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed > 0 {
		if err := s.products.Save(ctx, kept); err != nil {
			return nil, err
		}
	}

	tombstones, err := s.deleted.Load(ctx)
	if err != nil {
		return nil, err
	}
	tombstones = append(tombstones, target.Tombstone(removed))
	if err := s.deleted.Save(ctx, tombstones); err != nil {
		return nil, err
	}

	if err := s.suppliers.Save(ctx, remaining); err != nil {
		return nil, err
	}
	return &DeleteResult{SupplierID: supplierID, RemovedProducts: removed}, nil
}

// ListDeleted returns the tombstones of deleted suppliers
func (s *SupplierService) ListDeleted(ctx context.Context) ([]partner.DeletedSupplier, error) {
	return s.deleted.Load(ctx)
}

func requestToSupplier(req SupplierRequest) partner.Supplier {
	return partner.Supplier{
		BusinessName:    req.BusinessName,
		ContactName:     req.ContactName,
		Phone:           req.Phone,
		AlternatePhone:  req.AlternatePhone,
		Email:           req.Email,
		GSTIN:           req.GSTIN,
		Address:         req.Address,
		BankDetails:     req.BankDetails,
		PaymentTerms:    req.PaymentTerms,
		OfferedProducts: req.OfferedProducts,
	}
}
