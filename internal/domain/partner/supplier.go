package partner

import (
	"fmt"
	"strings"
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BankDetails holds the supplier's payout account
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
}

// OfferedProduct is one entry in a supplier's price list
type OfferedProduct struct {
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// Supplier represents a garment supplier. Suppliers own their catalog
// products: deleting a supplier removes its products and leaves a
// tombstone in the deleted-suppliers collection.
type Supplier struct {
	SupplierID      string           `json:"supplierId"`
	BusinessName    string           `json:"businessName"`
	ContactName     string           `json:"contactName"`
	Phone           string           `json:"phone"`
	AlternatePhone  string           `json:"alternatePhone"`
	Email           string           `json:"email"`
	GSTIN           string           `json:"gstin"`
	Address         string           `json:"address"`
	BankDetails     BankDetails      `json:"bankDetails"`
	PaymentTerms    string           `json:"paymentTerms"`
	OfferedProducts []OfferedProduct `json:"offeredProducts"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// DeletedSupplier is the tombstone kept after a cascading delete
type DeletedSupplier struct {
	Supplier
	DeletedAt       time.Time `json:"deletedAt"`
	RemovedProducts int       `json:"removedProducts"`
}

// NewSupplier creates a supplier with a generated id
func NewSupplier(businessName, contactName, phone string) (*Supplier, error) {
	if err := validateBusinessName(businessName); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := ValidatePhone(phone); err != nil {
			return nil, err
		}
	}

	return &Supplier{
		SupplierID:      NewSupplierID(),
		BusinessName:    businessName,
		ContactName:     contactName,
		Phone:           phone,
		OfferedProducts: []OfferedProduct{},
		CreatedAt:       time.Now(),
	}, nil
}

// Update replaces the supplier's editable fields. SupplierID and
// CreatedAt are immutable.
func (s *Supplier) Update(updated Supplier) error {
	if err := validateBusinessName(updated.BusinessName); err != nil {
		return err
	}
	if updated.Phone != "" {
		if err := ValidatePhone(updated.Phone); err != nil {
			return err
		}
	}
	if updated.Email != "" {
		if err := ValidateEmail(updated.Email); err != nil {
			return err
		}
	}
	if updated.GSTIN != "" {
		if err := ValidateGSTIN(updated.GSTIN); err != nil {
			return err
		}
	}

	s.BusinessName = updated.BusinessName
	s.ContactName = updated.ContactName
	s.Phone = updated.Phone
	s.AlternatePhone = updated.AlternatePhone
	s.Email = updated.Email
	s.GSTIN = strings.ToUpper(updated.GSTIN)
	s.Address = updated.Address
	s.BankDetails = updated.BankDetails
	s.PaymentTerms = updated.PaymentTerms
	if updated.OfferedProducts != nil {
		s.OfferedProducts = updated.OfferedProducts
	}
	return nil
}

// Tombstone converts the supplier into its deleted-suppliers record
func (s *Supplier) Tombstone(removedProducts int) DeletedSupplier {
	return DeletedSupplier{
		Supplier:        *s,
		DeletedAt:       time.Now(),
		RemovedProducts: removedProducts,
	}
}

// NewSupplierID generates a time-derived supplier id (SUP-xxxxxx)
func NewSupplierID() string {
	return fmt.Sprintf("SUP-%06d", time.Now().UnixMilli()%1000000)
}

func validateBusinessName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 200 characters")
	}
	return nil
}

// ValidatePhone accepts 10-digit Indian mobile numbers, optionally
// prefixed with +91
func ValidatePhone(phone string) error {
	digits := strings.TrimPrefix(phone, "+91")
	digits = strings.ReplaceAll(digits, " ", "")
	if len(digits) != 10 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must have 10 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_PHONE", "Phone number can only contain digits")
		}
	}
	return nil
}

// ValidateEmail performs a minimal sanity check
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	return nil
}

// ValidateGSTIN checks the 15-character GST identification number
func ValidateGSTIN(gstin string) error {
	if len(gstin) != 15 {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN must be 15 characters")
	}
	for _, r := range strings.ToUpper(gstin) {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return shared.NewDomainError("INVALID_GSTIN", "GSTIN can only contain letters and digits")
		}
	}
	return nil
}
