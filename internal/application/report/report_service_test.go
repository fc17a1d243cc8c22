package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/partner"
	"github.com/garmentshop/backend/internal/domain/trade"
)

type memProducts struct{ items []catalog.Product }

func (m *memProducts) Load(ctx context.Context) ([]catalog.Product, error) { return m.items, nil }
func (m *memProducts) Save(ctx context.Context, products []catalog.Product) error {
	m.items = products
	return nil
}

type memStock struct{ items []inventory.StockRecord }

func (m *memStock) Load(ctx context.Context) ([]inventory.StockRecord, error) { return m.items, nil }
func (m *memStock) Save(ctx context.Context, records []inventory.StockRecord) error {
	m.items = records
	return nil
}

type memSuppliers struct{ items []partner.Supplier }

func (m *memSuppliers) Load(ctx context.Context) ([]partner.Supplier, error) { return m.items, nil }
func (m *memSuppliers) Save(ctx context.Context, suppliers []partner.Supplier) error {
	m.items = suppliers
	return nil
}

type memOrders struct{ items []trade.PurchaseOrder }

func (m *memOrders) Load(ctx context.Context) ([]trade.PurchaseOrder, error) { return m.items, nil }
func (m *memOrders) Save(ctx context.Context, orders []trade.PurchaseOrder) error {
	m.items = orders
	return nil
}

type memInvoices struct{ items []trade.Invoice }

func (m *memInvoices) Load(ctx context.Context) ([]trade.Invoice, error) { return m.items, nil }
func (m *memInvoices) Save(ctx context.Context, invoices []trade.Invoice) error {
	m.items = invoices
	return nil
}

func newService() (*ReportService, *memProducts, *memStock, *memSuppliers, *memOrders, *memInvoices) {
	products := &memProducts{}
	stock := &memStock{}
	suppliers := &memSuppliers{}
	orders := &memOrders{}
	invoices := &memInvoices{}
	return NewReportService(products, stock, suppliers, orders, invoices), products, stock, suppliers, orders, invoices
}

func TestDashboard(t *testing.T) {
	svc, products, stock, suppliers, orders, invoices := newService()

	products.items = []catalog.Product{
		{SKU: "SKU-A", CostPrice: decimal.NewFromInt(100)},
		{SKU: "SKU-B", CostPrice: decimal.NewFromInt(50)},
	}
	stock.items = []inventory.StockRecord{
		{SKU: "SKU-A", QuantityInStock: 10, MinimumAlertLevel: 5},
		{SKU: "SKU-B", QuantityInStock: 2, MinimumAlertLevel: 5},
	}
	suppliers.items = []partner.Supplier{{SupplierID: "SUP-000001"}}
	orders.items = []trade.PurchaseOrder{
		{OrderID: "PO-000001", Status: trade.OrderStatusPending},
		{OrderID: "PO-000002", Status: trade.OrderStatusDelivered},
	}
	invoices.items = []trade.Invoice{
		{InvoiceNumber: "INV-1", Date: time.Now(), Totals: trade.InvoiceTotals{Total: decimal.NewFromInt(500)}},
		{InvoiceNumber: "INV-2", Date: time.Now().AddDate(0, 0, -1), Totals: trade.InvoiceTotals{Total: decimal.NewFromInt(900)}},
	}

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, d.TotalProducts)
	assert.Equal(t, 1, d.TotalSuppliers)
	assert.Equal(t, 12, d.UnitsInStock)
	assert.True(t, d.StockValue.Amount().Equal(decimal.NewFromInt(1100)), d.StockValue.String())
	assert.True(t, d.SalesToday.Amount().Equal(decimal.NewFromInt(500)), d.SalesToday.String())
	assert.Equal(t, 1, d.InvoicesToday)
	assert.Equal(t, 1, d.PendingOrders)
	require.Len(t, d.LowStockItems, 1)
	assert.Equal(t, "SKU-B", d.LowStockItems[0].SKU)
}

func TestSalesReportRanksTopItems(t *testing.T) {
	svc, _, _, _, _, invoices := newService()

	invoices.items = []trade.Invoice{
		{
			Totals: trade.InvoiceTotals{Total: decimal.NewFromInt(300)},
			Items: []trade.InvoiceItem{
				{SKU: "SKU-A", Name: "Shirt", Quantity: 2},
				{SKU: "SKU-B", Name: "Kurta", Quantity: 5},
			},
		},
		{
			Totals: trade.InvoiceTotals{Total: decimal.NewFromInt(200)},
			Items: []trade.InvoiceItem{
				{SKU: "SKU-A", Name: "Shirt", Quantity: 4},
			},
		},
	}

	report, err := svc.Sales(context.Background())
	require.NoError(t, err)

	assert.True(t, report.TotalRevenue.Amount().Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 2, report.TotalInvoices)
	assert.Equal(t, 11, report.UnitsSold)
	require.Len(t, report.TopItems, 2)
	assert.Equal(t, "SKU-A", report.TopItems[0].SKU)
	assert.Equal(t, 6, report.TopItems[0].Quantity)
}

func TestInventoryReportValues(t *testing.T) {
	svc, products, stock, _, _, _ := newService()

	products.items = []catalog.Product{
		{SKU: "SKU-A", CostPrice: decimal.NewFromInt(100), SellingPrice: decimal.NewFromInt(150)},
	}
	stock.items = []inventory.StockRecord{
		{SKU: "SKU-A", QuantityInStock: 4, MinimumAlertLevel: 5},
		{SKU: "SKU-GONE", QuantityInStock: -2, MinimumAlertLevel: 5},
	}

	report, err := svc.Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalSKUs)
	assert.Equal(t, 2, report.UnitsInStock)
	assert.True(t, report.CostValue.Amount().Equal(decimal.NewFromInt(400)))
	assert.True(t, report.RetailValue.Amount().Equal(decimal.NewFromInt(600)))
	assert.Len(t, report.LowStockItems, 2)
}
