package inventory

import "time"

// EntryType classifies a stock movement
type EntryType string

const (
	EntryTypeIn         EntryType = "IN"
	EntryTypeOut        EntryType = "OUT"
	EntryTypeAdjustment EntryType = "ADJUSTMENT"
)

// IsValid returns true for a known entry type
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeIn, EntryTypeOut, EntryTypeAdjustment:
		return true
	}
	return false
}

// HistoryEntry is one append-only movement record. Entries are stored
// newest-first. The variant fields depend on Type: Counterparty carries
// the supplier display name for IN entries (OUT entries are implicit
// walk-in sales), Reason carries the operator's free text for
// ADJUSTMENT entries.
type HistoryEntry struct {
	ID           int64        `json:"id"`
	Date         time.Time    `json:"date"`
	Type         EntryType    `json:"type"`
	ReferenceID  string       `json:"referenceId"`
	Counterparty string       `json:"counterparty,omitempty"`
	Reason       string       `json:"reason,omitempty"`
	Items        []StockDelta `json:"items"`
	Actor        string       `json:"actor"`
}

// NewReceiptEntry builds an IN entry for a received purchase order
func NewReceiptEntry(id int64, referenceID, supplier string, items []StockDelta, actor string) HistoryEntry {
	return HistoryEntry{
		ID:           id,
		Date:         time.Now(),
		Type:         EntryTypeIn,
		ReferenceID:  referenceID,
		Counterparty: supplier,
		Items:        items,
		Actor:        actor,
	}
}

// NewSaleEntry builds an OUT entry for a finalized invoice
func NewSaleEntry(id int64, invoiceID string, items []StockDelta, actor string) HistoryEntry {
	return HistoryEntry{
		ID:          id,
		Date:        time.Now(),
		Type:        EntryTypeOut,
		ReferenceID: invoiceID,
		Items:       items,
		Actor:       actor,
	}
}

// NewAdjustmentEntry builds a single-item entry of the given type with
// the operator's reason
func NewAdjustmentEntry(id int64, referenceID string, entryType EntryType, reason string, delta StockDelta, actor string) HistoryEntry {
	return HistoryEntry{
		ID:          id,
		Date:        time.Now(),
		Type:        entryType,
		ReferenceID: referenceID,
		Reason:      reason,
		Items:       []StockDelta{delta},
		Actor:       actor,
	}
}
