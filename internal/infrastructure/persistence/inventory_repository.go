package persistence

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/inventory"
)

// StockRepository implements inventory.StockRepository over the
// collection store
type StockRepository struct {
	store *CollectionStore
}

// NewStockRepository creates a stock record repository
func NewStockRepository(store *CollectionStore) *StockRepository {
	return &StockRepository{store: store}
}

// Load returns all stock records
func (r *StockRepository) Load(ctx context.Context) ([]inventory.StockRecord, error) {
	var records []inventory.StockRecord
	if err := r.store.Load(ctx, KeyInventory, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []inventory.StockRecord{}
	}
	return records, nil
}

// Save overwrites the stored stock records
func (r *StockRepository) Save(ctx context.Context, records []inventory.StockRecord) error {
	return r.store.Save(ctx, KeyInventory, records)
}

// HistoryRepository implements inventory.HistoryRepository over the
// collection store
type HistoryRepository struct {
	store *CollectionStore
}

// NewHistoryRepository creates a movement history repository
func NewHistoryRepository(store *CollectionStore) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Load returns all history entries, newest first
func (r *HistoryRepository) Load(ctx context.Context) ([]inventory.HistoryEntry, error) {
	var entries []inventory.HistoryEntry
	if err := r.store.Load(ctx, KeyStockHistory, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []inventory.HistoryEntry{}
	}
	return entries, nil
}

// Save overwrites the stored history
func (r *HistoryRepository) Save(ctx context.Context, entries []inventory.HistoryEntry) error {
	return r.store.Save(ctx, KeyStockHistory, entries)
}
