package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/shared"
)

type memProducts struct{ items []catalog.Product }

func (m *memProducts) Load(ctx context.Context) ([]catalog.Product, error) {
	return append([]catalog.Product{}, m.items...), nil
}
func (m *memProducts) Save(ctx context.Context, items []catalog.Product) error {
	m.items = items
	return nil
}

type memStock struct{ items []inventory.StockRecord }

func (m *memStock) Load(ctx context.Context) ([]inventory.StockRecord, error) {
	return append([]inventory.StockRecord{}, m.items...), nil
}
func (m *memStock) Save(ctx context.Context, items []inventory.StockRecord) error {
	m.items = items
	return nil
}

type memHistory struct{ items []inventory.HistoryEntry }

func (m *memHistory) Load(ctx context.Context) ([]inventory.HistoryEntry, error) {
	return append([]inventory.HistoryEntry{}, m.items...), nil
}
func (m *memHistory) Save(ctx context.Context, items []inventory.HistoryEntry) error {
	m.items = items
	return nil
}

type memOptions struct{ sets map[catalog.OptionKind][]string }

func (m *memOptions) Load(ctx context.Context, kind catalog.OptionKind) ([]string, error) {
	if values, ok := m.sets[kind]; ok {
		return values, nil
	}
	return catalog.DefaultOptions(kind), nil
}
func (m *memOptions) Save(ctx context.Context, kind catalog.OptionKind, values []string) error {
	if m.sets == nil {
		m.sets = map[catalog.OptionKind][]string{}
	}
	m.sets[kind] = values
	return nil
}

func newProductFixture() (*ProductService, *memProducts, *memStock) {
	products := &memProducts{}
	stock := &memStock{}
	ledger := inventory.NewLedger(stock, &memHistory{}, products)
	return NewProductService(products, &memOptions{}, ledger), products, stock
}

func createRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:          "Blue Cotton Shirt",
		Category:      "Shirts",
		Brand:         "Zara",
		Size:          "M",
		Color:         "Blue",
		SupplierID:    "SUP-000001",
		CostPrice:     decimal.NewFromInt(250),
		SellingPrice:  decimal.NewFromInt(500),
		TaxRate:       decimal.NewFromInt(12),
		Quantity:      10,
		MinStockAlert: 3,
	}
}

func TestProductService_Create(t *testing.T) {
	t.Run("generates SKU and seeds the stock record", func(t *testing.T) {
		service, products, stock := newProductFixture()

		created, err := service.Create(context.Background(), createRequest())
		require.NoError(t, err)

		assert.Equal(t, "SUP-000001-SHIRTS-ZA-M-BLU", created.SKU)
		require.Len(t, products.items, 1)
		require.Len(t, stock.items, 1)
		assert.Equal(t, created.SKU, stock.items[0].SKU)
		assert.Equal(t, 10, stock.items[0].QuantityInStock)
		assert.Equal(t, 3, stock.items[0].MinimumAlertLevel)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		service, _, _ := newProductFixture()
		ctx := context.Background()

		_, err := service.Create(ctx, createRequest())
		require.NoError(t, err)
		_, err = service.Create(ctx, createRequest())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rejects underivable SKU", func(t *testing.T) {
		service, _, _ := newProductFixture()
		req := createRequest()
		req.Brand = ""

		_, err := service.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestProductService_Delete(t *testing.T) {
	service, products, stock := newProductFixture()
	ctx := context.Background()

	created, err := service.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.SKU))
	assert.Empty(t, products.items)
	assert.Len(t, stock.items, 1, "stock record stays as the movement trail")

	assert.ErrorIs(t, service.Delete(ctx, created.SKU), shared.ErrNotFound)
}

func TestProductService_PreviewSKU(t *testing.T) {
	service, _, _ := newProductFixture()

	sku, err := service.PreviewSKU(SKUPreviewRequest{
		SupplierID: "SUP-000001", Category: "Shirts", Brand: "Zara", Size: "M", Color: "Blue",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP-000001-SHIRTS-ZA-M-BLU", sku)

	_, err = service.PreviewSKU(SKUPreviewRequest{Category: "Shirts"})
	assert.Error(t, err)
}

func TestProductService_Options(t *testing.T) {
	service, _, _ := newProductFixture()
	ctx := context.Background()

	sizes, err := service.GetOptions(ctx, "sizes")
	require.NoError(t, err)
	assert.Contains(t, sizes, "M")

	saved, err := service.PutOptions(ctx, "fabric-types", []string{"Cotton", "", "Khadi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cotton", "Khadi"}, saved, "blank values are dropped")

	_, err = service.GetOptions(ctx, "unknown")
	assert.Error(t, err)
}
