package inventory

import "time"

// DefaultMinimumAlertLevel is used when a product does not specify
// its own low-stock threshold.
const DefaultMinimumAlertLevel = 5

// StockRecord is the authoritative stock level for one SKU.
// The catalog mirrors QuantityInStock into Product.Quantity; the ledger
// is the only writer of both sides.
type StockRecord struct {
	SKU               string    `json:"sku"`
	ProductName       string    `json:"productName"`
	QuantityInStock   int       `json:"quantityInStock"`
	MinimumAlertLevel int       `json:"minimumAlertLevel"`
	LastRestocked     time.Time `json:"lastRestocked"`
}

// IsLowStock returns true if the stock level is at or below the alert threshold
func (r *StockRecord) IsLowStock() bool {
	return r.MinimumAlertLevel > 0 && r.QuantityInStock <= r.MinimumAlertLevel
}

// LineItem is one requested movement in a stock batch (receive or sell).
// Quantity is always positive; direction comes from the operation.
type LineItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// StockDelta records one applied movement. Delivered is positive for
// receipts and negative for sales, so NewQty = OldQty + Delivered holds
// for every entry ever written.
type StockDelta struct {
	SKU       string `json:"sku"`
	OldQty    int    `json:"oldQty"`
	Delivered int    `json:"delivered"`
	NewQty    int    `json:"newQty"`
}

// SkippedLine reports a batch line that was not applied, with the reason.
// Skipped lines are a partial-success result, not an error.
type SkippedLine struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// BatchResult is the outcome of a receive or sell batch
type BatchResult struct {
	Applied []StockDelta  `json:"applied"`
	Skipped []SkippedLine `json:"skipped"`
}
