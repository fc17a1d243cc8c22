package inventory

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/shared"
)

// AdjustStockRequest carries a manual stock correction
type AdjustStockRequest struct {
	SKU         string `json:"sku" binding:"required"`
	NewQuantity int    `json:"newQuantity"`
	Reason      string `json:"reason" binding:"required"`
	Type        string `json:"type"`
}

// HistoryFilter narrows the movement history query
type HistoryFilter struct {
	Type string `form:"type"`
	SKU  string `form:"sku"`
}

// InventoryService exposes stock queries and the manual adjustment
// operation on top of the ledger
type InventoryService struct {
	stock   inventory.StockRepository
	history inventory.HistoryRepository
	ledger  *inventory.Ledger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(stock inventory.StockRepository, history inventory.HistoryRepository, ledger *inventory.Ledger) *InventoryService {
	return &InventoryService{
		stock:   stock,
		history: history,
		ledger:  ledger,
	}
}

// ListStock returns all stock records
func (s *InventoryService) ListStock(ctx context.Context) ([]inventory.StockRecord, error) {
	return s.stock.Load(ctx)
}

// GetStock returns one stock record by SKU
func (s *InventoryService) GetStock(ctx context.Context, sku string) (*inventory.StockRecord, error) {
	records, err := s.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].SKU == sku {
			return &records[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// ListLowStock returns records at or below their alert threshold
func (s *InventoryService) ListLowStock(ctx context.Context) ([]inventory.StockRecord, error) {
	records, err := s.stock.Load(ctx)
	if err != nil {
		return nil, err
	}
	low := []inventory.StockRecord{}
	for _, r := range records {
		if r.IsLowStock() {
			low = append(low, r)
		}
	}
	return low, nil
}

// Adjust applies a manual stock correction through the ledger
func (s *InventoryService) Adjust(ctx context.Context, req AdjustStockRequest) (*inventory.StockDelta, error) {
	return s.ledger.AdjustStock(ctx, req.SKU, req.NewQuantity, req.Reason, inventory.EntryType(req.Type))
}

// History returns movement history entries, newest first, optionally
// filtered by entry type and SKU
func (s *InventoryService) History(ctx context.Context, filter HistoryFilter) ([]inventory.HistoryEntry, error) {
	entries, err := s.history.Load(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Type == "" && filter.SKU == "" {
		return entries, nil
	}

	filtered := []inventory.HistoryEntry{}
	for _, entry := range entries {
		if filter.Type != "" && entry.Type != inventory.EntryType(filter.Type) {
			continue
		}
		if filter.SKU != "" && !entryTouchesSKU(entry, filter.SKU) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered, nil
}

func entryTouchesSKU(entry inventory.HistoryEntry, sku string) bool {
	for _, item := range entry.Items {
		if item.SKU == sku {
			return true
		}
	}
	return false
}
