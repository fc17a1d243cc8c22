package trade

import (
	"context"
	"fmt"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/garmentshop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CheckoutLine is one cart line at the counter
type CheckoutLine struct {
	SKU             string          `json:"sku" binding:"required"`
	Quantity        int             `json:"quantity" binding:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// CheckoutRequest carries the POS checkout payload
type CheckoutRequest struct {
	CustomerName   string         `json:"customerName"`
	CustomerMobile string         `json:"customerMobile"`
	Items          []CheckoutLine `json:"items" binding:"required"`
	PaymentMethod  string         `json:"paymentMethod"`
}

// CheckoutResult is the finalized invoice plus the stock movements it
// caused
type CheckoutResult struct {
	Invoice *trade.Invoice         `json:"invoice"`
	Stock   *inventory.BatchResult `json:"stock"`
}

// ReturnRequest carries the return/exchange payload
type ReturnRequest struct {
	InvoiceNumber  string             `json:"invoiceNumber" binding:"required"`
	ReturnedItems  []trade.ReturnLine `json:"returnedItems"`
	ExchangedItems []trade.ReturnLine `json:"exchangedItems"`
}

// ReturnResult is the recorded return/exchange plus the stock
// movements it caused
type ReturnResult struct {
	Return *trade.ReturnExchange  `json:"return"`
	Stock  []inventory.StockDelta `json:"stock"`
}

// POSService handles counter sales and returns. Checkout prices the
// cart from the catalog, finalizes the invoice and sells the stock
// through the ledger in one pass.
type POSService struct {
	invoices trade.InvoiceRepository
	returns  trade.ReturnRepository
	products catalog.ProductRepository
	stock    inventory.StockRepository
	ledger   *inventory.Ledger
}

// NewPOSService creates a new POSService
func NewPOSService(invoices trade.InvoiceRepository, returns trade.ReturnRepository, products catalog.ProductRepository, stock inventory.StockRepository, ledger *inventory.Ledger) *POSService {
	return &POSService{
		invoices: invoices,
		returns:  returns,
		products: products,
		stock:    stock,
		ledger:   ledger,
	}
}

// Checkout finalizes a sale: price the lines from the catalog, write
// the invoice and move the stock
func (s *POSService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	bySKU := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		bySKU[p.SKU] = p
	}

	items := make([]trade.InvoiceItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, ok := bySKU[line.SKU]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "No product with SKU "+line.SKU)
		}
		items = append(items, trade.InvoiceItem{
			SKU:             product.SKU,
			Name:            product.Name,
			Quantity:        line.Quantity,
			UnitPrice:       product.SellingPrice,
			GSTRate:         product.TaxRate,
			DiscountPercent: line.DiscountPercent,
		})
	}

	invoice, err := trade.NewInvoice(req.CustomerName, req.CustomerMobile, items, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	lineItems := make([]inventory.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, inventory.LineItem{SKU: item.SKU, Quantity: item.Quantity})
	}
	stock, err := s.ledger.SellStock(ctx, lineItems, invoice.InvoiceNumber)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoices.Load(ctx)
	if err != nil {
		return nil, err
	}
	invoices = append([]trade.Invoice{*invoice}, invoices...)
	if err := s.invoices.Save(ctx, invoices); err != nil {
		return nil, err
	}

	return &CheckoutResult{Invoice: invoice, Stock: stock}, nil
}

// ListInvoices returns all invoices, newest first
func (s *POSService) ListInvoices(ctx context.Context) ([]trade.Invoice, error) {
	return s.invoices.Load(ctx)
}

// GetInvoice returns one invoice by number
func (s *POSService) GetInvoice(ctx context.Context, number string) (*trade.Invoice, error) {
	invoices, err := s.invoices.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].InvoiceNumber == number {
			return &invoices[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// ProcessReturn records a return/exchange against an invoice. Returned
// units are adjusted back into stock, exchanged units are sold out of
// it, all through the ledger so the history stays complete.
func (s *POSService) ProcessReturn(ctx context.Context, req ReturnRequest) (*ReturnResult, error) {
	if _, err := s.GetInvoice(ctx, req.InvoiceNumber); err != nil {
		return nil, err
	}

	ret, err := trade.NewReturnExchange(req.InvoiceNumber, req.ReturnedItems, req.ExchangedItems)
	if err != nil {
		return nil, err
	}

	deltas := []inventory.StockDelta{}
	for _, line := range ret.ReturnedItems {
		records, err := s.stock.Load(ctx)
		if err != nil {
			return nil, err
		}
		current, found := 0, false
		for _, r := range records {
			if r.SKU == line.SKU {
				current, found = r.QuantityInStock, true
				break
			}
		}
		if !found {
			return nil, shared.NewDomainError("NOT_FOUND", "No stock record for SKU "+line.SKU)
		}
		reason := fmt.Sprintf("Return against %s", req.InvoiceNumber)
		delta, err := s.ledger.AdjustStock(ctx, line.SKU, current+line.Quantity, reason, inventory.EntryTypeAdjustment)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, *delta)
	}

	if len(ret.ExchangedItems) > 0 {
		items := make([]inventory.LineItem, 0, len(ret.ExchangedItems))
		for _, line := range ret.ExchangedItems {
			items = append(items, inventory.LineItem{SKU: line.SKU, Quantity: line.Quantity})
		}
		stock, err := s.ledger.SellStock(ctx, items, ret.ReferenceID)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, stock.Applied...)
	}

	returns, err := s.returns.Load(ctx)
	if err != nil {
		return nil, err
	}
	returns = append([]trade.ReturnExchange{*ret}, returns...)
	if err := s.returns.Save(ctx, returns); err != nil {
		return nil, err
	}

	return &ReturnResult{Return: ret, Stock: deltas}, nil
}

// ListReturns returns the return/exchange history, newest first
func (s *POSService) ListReturns(ctx context.Context) ([]trade.ReturnExchange, error) {
	return s.returns.Load(ctx)
}
