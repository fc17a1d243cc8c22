package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable SKU in the catalog.
// The catalog is add/delete only: a product is created once and never
// updated in place; it is removed when its owning supplier is deleted.
// Quantity is a denormalized mirror of the ledger's stock level and is
// written only by the inventory ledger (and seeded at creation time).
type Product struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	FabricType    string          `json:"fabricType"`
	Gender        string          `json:"gender"`
	Barcode       string          `json:"barcode"`
	SupplierID    string          `json:"supplierId"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Quantity      int             `json:"quantity"`
	MinStockAlert int             `json:"minStockAlert"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewProduct creates a new product after validating its identity and prices
func NewProduct(sku, name, category, supplierID string, costPrice, sellingPrice decimal.Decimal) (*Product, error) {
	if err := ValidateSKU(sku); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	return &Product{
		SKU:          strings.ToUpper(sku),
		Name:         name,
		Category:     category,
		SupplierID:   supplierID,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		CreatedAt:    time.Now(),
	}, nil
}

// GetProfitMargin returns the profit margin percentage
// Returns 0 if cost price is zero
func (p *Product) GetProfitMargin() decimal.Decimal {
	if p.CostPrice.IsZero() {
		return decimal.Zero
	}
	profit := p.SellingPrice.Sub(p.CostPrice)
	return profit.Div(p.CostPrice).Mul(decimal.NewFromInt(100))
}

// IsLowStock returns true if the mirrored quantity is at or below the alert threshold
func (p *Product) IsLowStock() bool {
	return p.MinStockAlert > 0 && p.Quantity <= p.MinStockAlert
}

// ValidateSKU validates a product SKU
func ValidateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// GenerateSKU derives a SKU from the product's defining attributes:
// supplier code, category (6 chars), brand (2 chars), size, color (3 chars).
// Returns an empty string when any required attribute is missing, matching
// the behavior of the product-creation form.
func GenerateSKU(supplierID, category, brand, size, color string) string {
	if supplierID == "" || category == "" || brand == "" || size == "" || color == "" {
		return ""
	}

	supplierCode := strings.TrimPrefix(supplierID, "SUP")
	if supplierCode == "" {
		supplierCode = "-0001"
	}

	return fmt.Sprintf("SUP%s-%s-%s-%s-%s",
		supplierCode,
		truncateUpper(category, 6),
		truncateUpper(brand, 2),
		strings.ToUpper(size),
		truncateUpper(color, 3),
	)
}

func truncateUpper(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.ToUpper(s)
}
