package settings

import "context"

// Repository persists the settings documents and lists. Each method
// pair maps to one stored collection; loads of unset documents return
// zero values so callers can apply defaults.
type Repository interface {
	LoadBusinessInfo(ctx context.Context) (BusinessInfo, error)
	SaveBusinessInfo(ctx context.Context, info BusinessInfo) error

	LoadInvoiceSettings(ctx context.Context) (InvoiceSettings, error)
	SaveInvoiceSettings(ctx context.Context, s InvoiceSettings) error

	LoadStoreSettings(ctx context.Context) (StoreSettings, error)
	SaveStoreSettings(ctx context.Context, s StoreSettings) error

	LoadStaff(ctx context.Context) ([]Staff, error)
	SaveStaff(ctx context.Context, staff []Staff) error

	LoadAddresses(ctx context.Context) ([]ShippingAddress, error)
	SaveAddresses(ctx context.Context, addresses []ShippingAddress) error
}
