package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys. Each key names one stored document: a JSON array
// for list collections, a JSON object for settings documents.
const (
	KeyProducts          = "products"
	KeyInventory         = "inventory"
	KeyStockHistory      = "stockHistory"
	KeySuppliers         = "suppliers"
	KeyDeletedSuppliers  = "deletedSuppliers"
	KeyOrders            = "orders"
	KeyInvoices          = "invoices"
	KeyReturns           = "returnExchangeHistory"
	KeyShippingAddresses = "shippingAddresses"
	KeyBusinessInfo      = "businessInfo"
	KeyInvoiceSettings   = "invoiceSettings"
	KeyStoreSettings     = "storeSettings"
	KeyStaff             = "staff"
)

// collectionRow is one named collection stored as a JSON blob
type collectionRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Data      []byte    `gorm:"column:data;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (collectionRow) TableName() string {
	return "collections"
}

// CollectionStore reads and writes whole named collections. A Save
// overwrites the previous blob (last write wins); a Load of a missing
// key leaves dest at its zero value, so absent collections behave as
// empty ones.
type CollectionStore struct {
	db *gorm.DB
}

// NewCollectionStore creates a collection store over the database
func NewCollectionStore(db *Database) *CollectionStore {
	return &CollectionStore{db: db.DB}
}

// Load unmarshals the collection stored under key into dest
func (s *CollectionStore) Load(ctx context.Context, key string, dest any) error {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %q: %w", key, err)
	}
	if err := json.Unmarshal(row.Data, dest); err != nil {
		return fmt.Errorf("decode collection %q: %w", key, err)
	}
	return nil
}

// Save marshals value and overwrites the collection stored under key
func (s *CollectionStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	row := collectionRow{Key: key, Data: data, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save collection %q: %w", key, err)
	}
	return nil
}
