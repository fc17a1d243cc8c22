package settings

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/settings"
	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/garmentshop/backend/internal/domain/shared/valueobject"
)

// StaffRequest carries the staff creation payload
type StaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// AddressRequest carries the shipping address payload
type AddressRequest struct {
	Label       string `json:"label"`
	AddressLine string `json:"addressLine" binding:"required"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"isDefault"`
}

// SettingsService handles store configuration, staff and the shipping
// address book
type SettingsService struct {
	repo settings.Repository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetBusinessInfo returns the stored business identity
func (s *SettingsService) GetBusinessInfo(ctx context.Context) (settings.BusinessInfo, error) {
	return s.repo.LoadBusinessInfo(ctx)
}

// PutBusinessInfo overwrites the business identity
func (s *SettingsService) PutBusinessInfo(ctx context.Context, info settings.BusinessInfo) error {
	return s.repo.SaveBusinessInfo(ctx, info)
}

// GetInvoiceSettings returns the invoice numbering settings
func (s *SettingsService) GetInvoiceSettings(ctx context.Context) (settings.InvoiceSettings, error) {
	return s.repo.LoadInvoiceSettings(ctx)
}

// PutInvoiceSettings overwrites the invoice numbering settings
func (s *SettingsService) PutInvoiceSettings(ctx context.Context, cfg settings.InvoiceSettings) error {
	if cfg.NextNumber < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Next invoice number cannot be negative")
	}
	return s.repo.SaveInvoiceSettings(ctx, cfg)
}

// GetStoreSettings returns the store preferences
func (s *SettingsService) GetStoreSettings(ctx context.Context) (settings.StoreSettings, error) {
	return s.repo.LoadStoreSettings(ctx)
}

// PutStoreSettings overwrites the store preferences
func (s *SettingsService) PutStoreSettings(ctx context.Context, cfg settings.StoreSettings) error {
	if cfg.Currency != "" {
		if _, err := valueobject.ParseCurrency(cfg.Currency); err != nil {
			return shared.NewDomainError("INVALID_INPUT", err.Error())
		}
	}
	return s.repo.SaveStoreSettings(ctx, cfg)
}

// ListStaff returns all staff members
func (s *SettingsService) ListStaff(ctx context.Context) ([]settings.Staff, error) {
	return s.repo.LoadStaff(ctx)
}

// AddStaff appends a staff member
func (s *SettingsService) AddStaff(ctx context.Context, req StaffRequest) (*settings.Staff, error) {
	member, err := settings.NewStaff(req.Name, req.Role, req.Phone)
	if err != nil {
		return nil, err
	}
	staff, err := s.repo.LoadStaff(ctx)
	if err != nil {
		return nil, err
	}
	staff = append(staff, *member)
	if err := s.repo.SaveStaff(ctx, staff); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveStaff deletes a staff member by id
func (s *SettingsService) RemoveStaff(ctx context.Context, id string) error {
	staff, err := s.repo.LoadStaff(ctx)
	if err != nil {
		return err
	}
	remaining := staff[:0]
	found := false
	for _, member := range staff {
		if member.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, member)
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.repo.SaveStaff(ctx, remaining)
}

// ListAddresses returns the shipping address book
func (s *SettingsService) ListAddresses(ctx context.Context) ([]settings.ShippingAddress, error) {
	return s.repo.LoadAddresses(ctx)
}

// AddAddress appends an address; marking it default clears the flag
// on every other address
func (s *SettingsService) AddAddress(ctx context.Context, req AddressRequest) (*settings.ShippingAddress, error) {
	address, err := settings.NewShippingAddress(req.Label, req.AddressLine, req.City, req.State, req.Pincode, req.Phone)
	if err != nil {
		return nil, err
	}
	address.IsDefault = req.IsDefault

	addresses, err := s.repo.LoadAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if address.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}
	addresses = append(addresses, *address)
	if err := s.repo.SaveAddresses(ctx, addresses); err != nil {
		return nil, err
	}
	return address, nil
}

// RemoveAddress deletes an address by id
func (s *SettingsService) RemoveAddress(ctx context.Context, id string) error {
	addresses, err := s.repo.LoadAddresses(ctx)
	if err != nil {
		return err
	}
	remaining := addresses[:0]
	found := false
	for _, address := range addresses {
		if address.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, address)
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.repo.SaveAddresses(ctx, remaining)
}
