package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/shared"
)

// DefaultActor is recorded on history entries until staff accounts exist
const DefaultActor = "Current User"

// Ledger owns stock records and movement history, and keeps the catalog
// quantity mirror in lockstep. Every mutating operation persists its
// changes before returning. A mutex serializes operations because the
// underlying store has no cross-collection transactions.
type Ledger struct {
	mu       sync.Mutex
	stock    StockRepository
	history  HistoryRepository
	products catalog.ProductRepository

	lastEntryID int64
}

// NewLedger creates the inventory ledger
func NewLedger(stock StockRepository, history HistoryRepository, products catalog.ProductRepository) *Ledger {
	return &Ledger{
		stock:    stock,
		history:  history,
		products: products,
	}
}

// InitializeStock creates a stock record for every product that does not
// have one yet, seeded from the product's quantity and alert threshold.
// Existing records are left untouched, so the operation is idempotent.
func (l *Ledger) InitializeStock(ctx context.Context, products []catalog.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.stock.Load(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(records))
	for _, r := range records {
		known[r.SKU] = struct{}{}
	}

	created := false
	for _, p := range products {
		if _, ok := known[p.SKU]; ok {
			continue
		}
		qty := p.Quantity
		if qty < 0 {
			qty = 0
		}
		alert := p.MinStockAlert
		if alert <= 0 {
			alert = DefaultMinimumAlertLevel
		}
		records = append(records, StockRecord{
			SKU:               p.SKU,
			ProductName:       p.Name,
			QuantityInStock:   qty,
			MinimumAlertLevel: alert,
			LastRestocked:     time.Now(),
		})
		known[p.SKU] = struct{}{}
		created = true
	}

	if !created {
		return nil
	}
	return l.stock.Save(ctx, records)
}

// ReceiveStock applies a delivery batch. Lines are applied strictly in
// input order, each reading the previously updated value, so duplicate
// SKUs compound. Lines whose SKU has no stock record are skipped and
// reported, not failed. One IN history entry is appended for the batch
// with the supplier as counterparty.
func (l *Ledger) ReceiveStock(ctx context.Context, items []LineItem, referenceID, supplier string) (*BatchResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	index := indexBySKU(records)

	now := time.Now()
	result := &BatchResult{Applied: []StockDelta{}, Skipped: []SkippedLine{}}
	for _, item := range items {
		i, ok := index[item.SKU]
		if !ok {
			result.Skipped = append(result.Skipped, SkippedLine{
				SKU:      item.SKU,
				Quantity: item.Quantity,
				Reason:   "no stock record for SKU",
			})
			continue
		}
		old := records[i].QuantityInStock
		records[i].QuantityInStock = old + item.Quantity
		records[i].LastRestocked = now
		result.Applied = append(result.Applied, StockDelta{
			SKU:       item.SKU,
			OldQty:    old,
			Delivered: item.Quantity,
			NewQty:    old + item.Quantity,
		})
	}

	if err := l.stock.Save(ctx, records); err != nil {
		return nil, err
	}
	if err := l.syncMirror(ctx, result.Applied); err != nil {
		return nil, err
	}

	entry := NewReceiptEntry(l.nextEntryID(), referenceID, supplier, result.Applied, DefaultActor)
	if err := l.appendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return result, nil
}

// SellStock applies a sale batch, the mirror image of ReceiveStock:
// quantities are subtracted and deltas recorded with negative Delivered.
// Stock may go negative; overselling is the operator's call, not the
// ledger's. One OUT history entry is appended for the batch.
func (l *Ledger) SellStock(ctx context.Context, items []LineItem, invoiceID string) (*BatchResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	index := indexBySKU(records)

	result := &BatchResult{Applied: []StockDelta{}, Skipped: []SkippedLine{}}
	for _, item := range items {
		i, ok := index[item.SKU]
		if !ok {
			result.Skipped = append(result.Skipped, SkippedLine{
				SKU:      item.SKU,
				Quantity: item.Quantity,
				Reason:   "no stock record for SKU",
			})
			continue
		}
		old := records[i].QuantityInStock
		records[i].QuantityInStock = old - item.Quantity
		result.Applied = append(result.Applied, StockDelta{
			SKU:       item.SKU,
			OldQty:    old,
			Delivered: -item.Quantity,
			NewQty:    old - item.Quantity,
		})
	}

	if err := l.stock.Save(ctx, records); err != nil {
		return nil, err
	}
	if err := l.syncMirror(ctx, result.Applied); err != nil {
		return nil, err
	}

	entry := NewSaleEntry(l.nextEntryID(), invoiceID, result.Applied, DefaultActor)
	if err := l.appendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustStock overwrites one SKU's quantity and appends a single-item
// entry of the given type with the operator's reason. A missing record
// is a NotFound failure with no side effects.
func (l *Ledger) AdjustStock(ctx context.Context, sku string, newQuantity int, reason string, entryType EntryType) (*StockDelta, error) {
	if !entryType.IsValid() {
		entryType = EntryTypeAdjustment
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	index := indexBySKU(records)

	i, ok := index[sku]
	if !ok {
		return nil, shared.ErrNotFound
	}

	old := records[i].QuantityInStock
	records[i].QuantityInStock = newQuantity
	records[i].LastRestocked = time.Now()
	delta := StockDelta{
		SKU:       sku,
		OldQty:    old,
		Delivered: newQuantity - old,
		NewQty:    newQuantity,
	}

	if err := l.stock.Save(ctx, records); err != nil {
		return nil, err
	}
	if err := l.syncMirror(ctx, []StockDelta{delta}); err != nil {
		return nil, err
	}

	id := l.nextEntryID()
	entry := NewAdjustmentEntry(id, fmt.Sprintf("ADJ-%d", id), entryType, reason, delta, DefaultActor)
	if err := l.appendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &delta, nil
}

// syncMirror writes the applied quantities through to the catalog so
// Product.Quantity == StockRecord.QuantityInStock holds for every SKU
func (l *Ledger) syncMirror(ctx context.Context, applied []StockDelta) error {
	if len(applied) == 0 {
		return nil
	}
	products, err := l.products.Load(ctx)
	if err != nil {
		return err
	}
	levels := make(map[string]int, len(applied))
	for _, d := range applied {
		levels[d.SKU] = d.NewQty
	}
	for i := range products {
		if qty, ok := levels[products[i].SKU]; ok {
			products[i].Quantity = qty
		}
	}
	return l.products.Save(ctx, products)
}

// appendEntry prepends the entry so history stays newest-first
func (l *Ledger) appendEntry(ctx context.Context, entry HistoryEntry) error {
	entries, err := l.history.Load(ctx)
	if err != nil {
		return err
	}
	entries = append([]HistoryEntry{entry}, entries...)
	return l.history.Save(ctx, entries)
}

// nextEntryID returns a millisecond timestamp, bumped past the previous
// ID so two entries in the same millisecond still get distinct,
// increasing IDs. Callers hold l.mu.
func (l *Ledger) nextEntryID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastEntryID {
		id = l.lastEntryID + 1
	}
	l.lastEntryID = id
	return id
}

func indexBySKU(records []StockRecord) map[string]int {
	index := make(map[string]int, len(records))
	for i, r := range records {
		index[r.SKU] = i
	}
	return index
}
