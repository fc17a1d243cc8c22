package trade

import (
	"fmt"
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCustomerName is used for anonymous counter sales
const DefaultCustomerName = "Walk-in"

// InvoiceItem is one sold line on an invoice
type InvoiceItem struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	GSTRate         decimal.Decimal `json:"gstRate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// InvoiceTotals holds the computed amounts. GST is split evenly into
// CGST and SGST halves.
type InvoiceTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	Total    decimal.Decimal `json:"total"`
}

// Invoice is a finalized POS sale
type Invoice struct {
	InvoiceNumber  string        `json:"invoiceNumber"`
	Date           time.Time     `json:"date"`
	CustomerName   string        `json:"customerName"`
	CustomerMobile string        `json:"customerMobile"`
	Items          []InvoiceItem `json:"items"`
	Totals         InvoiceTotals `json:"totals"`
	PaymentMethod  string        `json:"paymentMethod"`
}

// NewInvoice creates an invoice from the cart lines, computing totals.
// Customer name defaults to the walk-in placeholder.
func NewInvoice(customerName, customerMobile string, items []InvoiceItem, paymentMethod string) (*Invoice, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice must have at least one item")
	}
	for _, item := range items {
		if item.SKU == "" {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice item SKU cannot be empty")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice item price cannot be negative")
		}
	}
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	inv := &Invoice{
		InvoiceNumber:  NewInvoiceNumber(),
		Date:           time.Now(),
		CustomerName:   customerName,
		CustomerMobile: customerMobile,
		Items:          items,
		PaymentMethod:  paymentMethod,
	}
	inv.Totals = ComputeTotals(items)
	return inv, nil
}

// ComputeTotals derives the invoice amounts from its lines: per line,
// discount applies to the gross amount and GST applies to the
// discounted taxable amount
func ComputeTotals(items []InvoiceItem) InvoiceTotals {
	hundred := decimal.NewFromInt(100)
	subtotal := decimal.Zero
	discount := decimal.Zero
	gst := decimal.Zero

	for _, item := range items {
		gross := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lineDiscount := gross.Mul(item.DiscountPercent).Div(hundred)
		taxable := gross.Sub(lineDiscount)
		lineGST := taxable.Mul(item.GSTRate).Div(hundred)

		subtotal = subtotal.Add(gross)
		discount = discount.Add(lineDiscount)
		gst = gst.Add(lineGST)
	}

	half := gst.Div(decimal.NewFromInt(2)).Round(2)
	return InvoiceTotals{
		Subtotal: subtotal.Round(2),
		Discount: discount.Round(2),
		CGST:     half,
		SGST:     half,
		Total:    subtotal.Sub(discount).Add(half).Add(half).Round(2),
	}
}

// NewInvoiceNumber generates a time-derived invoice number (INV-<ms>)
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%d", time.Now().UnixMilli())
}
