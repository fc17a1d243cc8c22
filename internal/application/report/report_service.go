package report

import (
	"context"
	"sort"
	"time"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/partner"
	"github.com/garmentshop/backend/internal/domain/shared/valueobject"
	"github.com/garmentshop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Dashboard is the landing-page summary
type Dashboard struct {
	TotalProducts   int                     `json:"totalProducts"`
	TotalSuppliers  int                     `json:"totalSuppliers"`
	UnitsInStock    int                     `json:"unitsInStock"`
	StockValue      valueobject.Money       `json:"stockValue"`
	LowStockItems   []inventory.StockRecord `json:"lowStockItems"`
	SalesToday      valueobject.Money       `json:"salesToday"`
	InvoicesToday   int                     `json:"invoicesToday"`
	PendingOrders   int                     `json:"pendingOrders"`
}

// SalesReport aggregates the invoice history
type SalesReport struct {
	TotalRevenue  valueobject.Money `json:"totalRevenue"`
	TotalInvoices int               `json:"totalInvoices"`
	UnitsSold     int               `json:"unitsSold"`
	TopItems      []TopItem         `json:"topItems"`
}

// TopItem is one best-selling SKU
type TopItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// InventoryReport aggregates the current stock position
type InventoryReport struct {
	TotalSKUs     int                     `json:"totalSkus"`
	UnitsInStock  int                     `json:"unitsInStock"`
	CostValue     valueobject.Money       `json:"costValue"`
	RetailValue   valueobject.Money       `json:"retailValue"`
	LowStockItems []inventory.StockRecord `json:"lowStockItems"`
}

// ReportService computes read-only aggregates over the collections
type ReportService struct {
	products  catalog.ProductRepository
	stock     inventory.StockRepository
	suppliers partner.SupplierRepository
	orders    trade.OrderRepository
	invoices  trade.InvoiceRepository
}

// NewReportService creates a new ReportService
func NewReportService(products catalog.ProductRepository, stock inventory.StockRepository, suppliers partner.SupplierRepository, orders trade.OrderRepository, invoices trade.InvoiceRepository) *ReportService {
	return &ReportService{
		products:  products,
		stock:     stock,
		suppliers: suppliers,
		orders:    orders,
		invoices:  invoices,
	}
}

// Dashboard returns the landing-page summary
func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.suppliers.Load(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.Load(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalProducts:  len(products),
		TotalSuppliers: len(suppliers),
		LowStockItems:  []inventory.StockRecord{},
	}

	costBySKU := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		costBySKU[p.SKU] = p.CostPrice
	}
	stockValue := decimal.Zero
	for _, r := range records {
		d.UnitsInStock += r.QuantityInStock
		if cost, ok := costBySKU[r.SKU]; ok && r.QuantityInStock > 0 {
			stockValue = stockValue.Add(cost.Mul(decimal.NewFromInt(int64(r.QuantityInStock))))
		}
		if r.IsLowStock() {
			d.LowStockItems = append(d.LowStockItems, r)
		}
	}
	d.StockValue = valueobject.NewMoneyINR(stockValue)

	today := time.Now()
	salesToday := decimal.Zero
	for _, inv := range invoices {
		if sameDay(inv.Date, today) {
			salesToday = salesToday.Add(inv.Totals.Total)
			d.InvoicesToday++
		}
	}
	d.SalesToday = valueobject.NewMoneyINR(salesToday)
	for _, o := range orders {
		if o.IsPending() {
			d.PendingOrders++
		}
	}
	return d, nil
}

// Sales returns the all-time sales aggregates
func (s *ReportService) Sales(ctx context.Context) (*SalesReport, error) {
	invoices, err := s.invoices.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		TotalInvoices: len(invoices),
		TopItems:      []TopItem{},
	}
	type tally struct {
		name string
		qty  int
	}
	counts := map[string]*tally{}
	revenue := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.Totals.Total)
		for _, item := range inv.Items {
			report.UnitsSold += item.Quantity
			if t, ok := counts[item.SKU]; ok {
				t.qty += item.Quantity
			} else {
				counts[item.SKU] = &tally{name: item.Name, qty: item.Quantity}
			}
		}
	}

	report.TotalRevenue = valueobject.NewMoneyINR(revenue)

	for sku, t := range counts {
		report.TopItems = append(report.TopItems, TopItem{SKU: sku, Name: t.name, Quantity: t.qty})
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Quantity != report.TopItems[j].Quantity {
			return report.TopItems[i].Quantity > report.TopItems[j].Quantity
		}
		return report.TopItems[i].SKU < report.TopItems[j].SKU
	})
	if len(report.TopItems) > 10 {
		report.TopItems = report.TopItems[:10]
	}
	return report, nil
}

// Inventory returns the current stock position aggregates
func (s *ReportService) Inventory(ctx context.Context) (*InventoryReport, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.stock.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		TotalSKUs:     len(records),
		LowStockItems: []inventory.StockRecord{},
	}
	byCost := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byCost[p.SKU] = p
	}
	costValue, retailValue := decimal.Zero, decimal.Zero
	for _, r := range records {
		report.UnitsInStock += r.QuantityInStock
		if r.QuantityInStock > 0 {
			if p, ok := byCost[r.SKU]; ok {
				qty := decimal.NewFromInt(int64(r.QuantityInStock))
				costValue = costValue.Add(p.CostPrice.Mul(qty))
				retailValue = retailValue.Add(p.SellingPrice.Mul(qty))
			}
		}
		if r.IsLowStock() {
			report.LowStockItems = append(report.LowStockItems, r)
		}
	}
	report.CostValue = valueobject.NewMoneyINR(costValue)
	report.RetailValue = valueobject.NewMoneyINR(retailValue)
	return report, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
