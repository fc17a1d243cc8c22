package catalog

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the product creation payload. When SKU
// is empty one is generated from the attribute fields.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	FabricType    string          `json:"fabricType"`
	Gender        string          `json:"gender"`
	Barcode       string          `json:"barcode"`
	SupplierID    string          `json:"supplierId" binding:"required"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Quantity      int             `json:"quantity"`
	MinStockAlert int             `json:"minStockAlert"`
}

// SKUPreviewRequest carries the attributes used to derive a SKU
type SKUPreviewRequest struct {
	SupplierID string `json:"supplierId"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	Size       string `json:"size"`
	Color      string `json:"color"`
}

// ProductService handles catalog operations. Creating a product also
// seeds its stock record through the ledger; the catalog itself is
// add/delete only.
type ProductService struct {
	products catalog.ProductRepository
	options  catalog.OptionRepository
	ledger   *inventory.Ledger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, options catalog.OptionRepository, ledger *inventory.Ledger) *ProductService {
	return &ProductService{
		products: products,
		options:  options,
		ledger:   ledger,
	}
}

// Create adds a product to the catalog and seeds its stock record
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	sku := req.SKU
	if sku == "" {
		sku = catalog.GenerateSKU(req.SupplierID, req.Category, req.Brand, req.Size, req.Color)
		if sku == "" {
			return nil, shared.NewDomainError("INVALID_SKU", "SKU is empty and cannot be derived: supplier, category, brand, size and color are required")
		}
	}

	product, err := catalog.NewProduct(sku, req.Name, req.Category, req.SupplierID, req.CostPrice, req.SellingPrice)
	if err != nil {
		return nil, err
	}
	product.Brand = req.Brand
	product.Size = req.Size
	product.Color = req.Color
	product.FabricType = req.FabricType
	product.Gender = req.Gender
	product.Barcode = req.Barcode
	product.TaxRate = req.TaxRate
	product.Quantity = req.Quantity
	product.MinStockAlert = req.MinStockAlert

	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range products {
		if existing.SKU == product.SKU {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
		}
	}

	products = append(products, *product)
	if err := s.products.Save(ctx, products); err != nil {
		return nil, err
	}

	if err := s.ledger.InitializeStock(ctx, []catalog.Product{*product}); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns the whole catalog
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.products.Load(ctx)
}

// Get returns one product by SKU
func (s *ProductService) Get(ctx context.Context, sku string) (*catalog.Product, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].SKU == sku {
			return &products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Delete removes a product from the catalog. Its stock record and
// history stay behind as the trail of past movements.
func (s *ProductService) Delete(ctx context.Context, sku string) error {
	products, err := s.products.Load(ctx)
	if err != nil {
		return err
	}
	remaining := products[:0]
	found := false
	for _, p := range products {
		if p.SKU == sku {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.products.Save(ctx, remaining)
}

// PreviewSKU derives the SKU that Create would generate for the
// given attributes
func (s *ProductService) PreviewSKU(req SKUPreviewRequest) (string, error) {
	sku := catalog.GenerateSKU(req.SupplierID, req.Category, req.Brand, req.Size, req.Color)
	if sku == "" {
		return "", shared.NewDomainError("INVALID_SKU", "Supplier, category, brand, size and color are required to derive a SKU")
	}
	return sku, nil
}

// GetOptions returns the option set for a kind
func (s *ProductService) GetOptions(ctx context.Context, kind string) ([]string, error) {
	k, err := catalog.ParseOptionKind(kind)
	if err != nil {
		return nil, err
	}
	return s.options.Load(ctx, k)
}

// PutOptions overwrites the option set for a kind. Blank values are
// dropped.
func (s *ProductService) PutOptions(ctx context.Context, kind string, values []string) ([]string, error) {
	k, err := catalog.ParseOptionKind(kind)
	if err != nil {
		return nil, err
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if err := s.options.Save(ctx, k, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
