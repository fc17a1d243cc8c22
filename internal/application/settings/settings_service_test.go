package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmentshop/backend/internal/domain/settings"
	"github.com/garmentshop/backend/internal/domain/shared"
)

type memRepo struct {
	business  settings.BusinessInfo
	invoice   settings.InvoiceSettings
	store     settings.StoreSettings
	staff     []settings.Staff
	addresses []settings.ShippingAddress
}

func (m *memRepo) LoadBusinessInfo(ctx context.Context) (settings.BusinessInfo, error) {
	return m.business, nil
}
func (m *memRepo) SaveBusinessInfo(ctx context.Context, info settings.BusinessInfo) error {
	m.business = info
	return nil
}
func (m *memRepo) LoadInvoiceSettings(ctx context.Context) (settings.InvoiceSettings, error) {
	return m.invoice, nil
}
func (m *memRepo) SaveInvoiceSettings(ctx context.Context, s settings.InvoiceSettings) error {
	m.invoice = s
	return nil
}
func (m *memRepo) LoadStoreSettings(ctx context.Context) (settings.StoreSettings, error) {
	if m.store.Currency == "" {
		return settings.DefaultStoreSettings(), nil
	}
	return m.store, nil
}
func (m *memRepo) SaveStoreSettings(ctx context.Context, s settings.StoreSettings) error {
	m.store = s
	return nil
}
func (m *memRepo) LoadStaff(ctx context.Context) ([]settings.Staff, error) { return m.staff, nil }
func (m *memRepo) SaveStaff(ctx context.Context, staff []settings.Staff) error {
	m.staff = staff
	return nil
}
func (m *memRepo) LoadAddresses(ctx context.Context) ([]settings.ShippingAddress, error) {
	return m.addresses, nil
}
func (m *memRepo) SaveAddresses(ctx context.Context, addresses []settings.ShippingAddress) error {
	m.addresses = addresses
	return nil
}

func TestStoreSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&memRepo{})

	cfg, err := svc.GetStoreSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INR", cfg.Currency)
	assert.True(t, cfg.EnableLowStockAlert)
}

func TestPutStoreSettingsRejectsUnknownCurrency(t *testing.T) {
	svc := NewSettingsService(&memRepo{})

	err := svc.PutStoreSettings(context.Background(), settings.StoreSettings{Currency: "XYZ"})
	require.Error(t, err)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "INVALID_INPUT", derr.Code)
}

func TestPutInvoiceSettingsRejectsNegativeNumber(t *testing.T) {
	svc := NewSettingsService(&memRepo{})

	err := svc.PutInvoiceSettings(context.Background(), settings.InvoiceSettings{NextNumber: -1})
	require.Error(t, err)
}

func TestStaffLifecycle(t *testing.T) {
	repo := &memRepo{}
	svc := NewSettingsService(repo)

	member, err := svc.AddStaff(context.Background(), StaffRequest{Name: "Ravi", Role: "Cashier"})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)

	staff, err := svc.ListStaff(context.Background())
	require.NoError(t, err)
	require.Len(t, staff, 1)

	require.NoError(t, svc.RemoveStaff(context.Background(), member.ID))
	staff, err = svc.ListStaff(context.Background())
	require.NoError(t, err)
	assert.Empty(t, staff)

	err = svc.RemoveStaff(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDefaultAddressClearsOthers(t *testing.T) {
	repo := &memRepo{}
	svc := NewSettingsService(repo)

	first, err := svc.AddAddress(context.Background(), AddressRequest{
		Label:       "Shop",
		AddressLine: "12 MG Road",
		IsDefault:   true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	_, err = svc.AddAddress(context.Background(), AddressRequest{
		Label:       "Warehouse",
		AddressLine: "4 Industrial Estate",
		IsDefault:   true,
	})
	require.NoError(t, err)

	addresses, err := svc.ListAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.False(t, addresses[0].IsDefault)
	assert.True(t, addresses[1].IsDefault)
}
