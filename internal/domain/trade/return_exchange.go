package trade

import (
	"fmt"
	"time"

	"github.com/garmentshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReturnLine is one returned or exchanged unit count against an invoice
type ReturnLine struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ReturnExchange records a return or exchange against a past invoice.
// Returned lines go back into stock, exchanged lines go out; the net
// amount is what the store refunds (positive) or collects (negative).
type ReturnExchange struct {
	ReferenceID    string          `json:"referenceId"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Date           time.Time       `json:"date"`
	ReturnedItems  []ReturnLine    `json:"returnedItems"`
	ExchangedItems []ReturnLine    `json:"exchangedItems"`
	NetRefund      decimal.Decimal `json:"netRefund"`
}

// NewReturnExchange creates a return/exchange record against an invoice
func NewReturnExchange(invoiceNumber string, returned, exchanged []ReturnLine) (*ReturnExchange, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice number is required")
	}
	if len(returned) == 0 && len(exchanged) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Return must have at least one returned or exchanged item")
	}
	for _, line := range append(append([]ReturnLine{}, returned...), exchanged...) {
		if line.SKU == "" {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Return line SKU cannot be empty")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ITEMS", "Return line quantity must be positive")
		}
	}

	r := &ReturnExchange{
		ReferenceID:    newReturnID(),
		InvoiceNumber:  invoiceNumber,
		Date:           time.Now(),
		ReturnedItems:  returned,
		ExchangedItems: exchanged,
	}
	r.NetRefund = r.computeNetRefund()
	return r, nil
}

// computeNetRefund is returned value minus exchanged value
func (r *ReturnExchange) computeNetRefund() decimal.Decimal {
	net := decimal.Zero
	for _, line := range r.ReturnedItems {
		net = net.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	for _, line := range r.ExchangedItems {
		net = net.Sub(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return net.Round(2)
}

func newReturnID() string {
	return fmt.Sprintf("RET-%06d", time.Now().UnixMilli()%1000000)
}
