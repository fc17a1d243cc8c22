package persistence

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/settings"
)

// SettingsRepository implements settings.Repository over the
// collection store, one document or list per collection key
type SettingsRepository struct {
	store *CollectionStore
}

// NewSettingsRepository creates a settings repository
func NewSettingsRepository(store *CollectionStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// LoadBusinessInfo returns the stored business info
func (r *SettingsRepository) LoadBusinessInfo(ctx context.Context) (settings.BusinessInfo, error) {
	var info settings.BusinessInfo
	err := r.store.Load(ctx, KeyBusinessInfo, &info)
	return info, err
}

// SaveBusinessInfo overwrites the stored business info
func (r *SettingsRepository) SaveBusinessInfo(ctx context.Context, info settings.BusinessInfo) error {
	return r.store.Save(ctx, KeyBusinessInfo, info)
}

// LoadInvoiceSettings returns the stored invoice settings
func (r *SettingsRepository) LoadInvoiceSettings(ctx context.Context) (settings.InvoiceSettings, error) {
	var s settings.InvoiceSettings
	err := r.store.Load(ctx, KeyInvoiceSettings, &s)
	return s, err
}

// SaveInvoiceSettings overwrites the stored invoice settings
func (r *SettingsRepository) SaveInvoiceSettings(ctx context.Context, s settings.InvoiceSettings) error {
	return r.store.Save(ctx, KeyInvoiceSettings, s)
}

// LoadStoreSettings returns the stored preferences, defaulted when unset
func (r *SettingsRepository) LoadStoreSettings(ctx context.Context) (settings.StoreSettings, error) {
	var s settings.StoreSettings
	if err := r.store.Load(ctx, KeyStoreSettings, &s); err != nil {
		return s, err
	}
	if s.Currency == "" {
		s = settings.DefaultStoreSettings()
	}
	return s, nil
}

// SaveStoreSettings overwrites the stored preferences
func (r *SettingsRepository) SaveStoreSettings(ctx context.Context, s settings.StoreSettings) error {
	return r.store.Save(ctx, KeyStoreSettings, s)
}

// LoadStaff returns the staff list
func (r *SettingsRepository) LoadStaff(ctx context.Context) ([]settings.Staff, error) {
	var staff []settings.Staff
	if err := r.store.Load(ctx, KeyStaff, &staff); err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []settings.Staff{}
	}
	return staff, nil
}

// SaveStaff overwrites the staff list
func (r *SettingsRepository) SaveStaff(ctx context.Context, staff []settings.Staff) error {
	return r.store.Save(ctx, KeyStaff, staff)
}

// LoadAddresses returns the shipping address book
func (r *SettingsRepository) LoadAddresses(ctx context.Context) ([]settings.ShippingAddress, error) {
	var addresses []settings.ShippingAddress
	if err := r.store.Load(ctx, KeyShippingAddresses, &addresses); err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []settings.ShippingAddress{}
	}
	return addresses, nil
}

// SaveAddresses overwrites the shipping address book
func (r *SettingsRepository) SaveAddresses(ctx context.Context, addresses []settings.ShippingAddress) error {
	return r.store.Save(ctx, KeyShippingAddresses, addresses)
}
