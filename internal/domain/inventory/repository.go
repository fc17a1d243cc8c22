package inventory

import "context"

// StockRepository persists the stock record collection as a whole
// (last write wins)
type StockRepository interface {
	// Load returns all stock records (empty slice when none exist)
	Load(ctx context.Context) ([]StockRecord, error)

	// Save overwrites the stored collection with the given records
	Save(ctx context.Context, records []StockRecord) error
}

// HistoryRepository persists the movement history, newest entry first
type HistoryRepository interface {
	// Load returns all history entries, newest first
	Load(ctx context.Context) ([]HistoryEntry, error)

	// Save overwrites the stored history with the given entries
	Save(ctx context.Context, entries []HistoryEntry) error
}
