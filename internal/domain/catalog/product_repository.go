package catalog

import "context"

// ProductRepository defines the interface for product catalog persistence.
// The catalog is stored as a single named collection; loads and saves
// operate on the whole collection (last write wins).
type ProductRepository interface {
	// Load returns all products in the catalog (empty slice when none exist)
	Load(ctx context.Context) ([]Product, error)

	// Save overwrites the stored catalog with the given products
	Save(ctx context.Context, products []Product) error
}
