package settings

import (
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/garmentshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BusinessInfo is the store's identity as printed on invoices
type BusinessInfo struct {
	ShopName string `json:"shopName"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	GSTIN    string `json:"gstin"`
}

// InvoiceSettings controls invoice numbering and footer text
type InvoiceSettings struct {
	Prefix     string `json:"prefix"`
	NextNumber int    `json:"nextNumber"`
	Terms      string `json:"terms"`
}

// StoreSettings holds store-wide preferences
type StoreSettings struct {
	Currency            string `json:"currency"`
	DateFormat          string `json:"dateFormat"`
	EnableLowStockAlert bool   `json:"enableLowStockAlert"`
}

// DefaultStoreSettings returns the initial preferences for a new store
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Currency:            string(valueobject.DefaultCurrency),
		DateFormat:          "DD/MM/YYYY",
		EnableLowStockAlert: true,
	}
}

// Staff is a named store operator. There is no authentication; the
// list only feeds attribution and the settings page.
type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewStaff creates a staff member with a generated id
func NewStaff(name, role, phone string) (*Staff, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	return &Staff{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		Phone:     phone,
		CreatedAt: time.Now(),
	}, nil
}

// ShippingAddress is one saved delivery address for purchase orders
type ShippingAddress struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"isDefault"`
}

// NewShippingAddress creates an address with a generated id
func NewShippingAddress(label, addressLine, city, state, pincode, phone string) (*ShippingAddress, error) {
	if addressLine == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	return &ShippingAddress{
		ID:          uuid.NewString(),
		Label:       label,
		AddressLine: addressLine,
		City:        city,
		State:       state,
		Pincode:     pincode,
		Phone:       phone,
	}, nil
}
