package persistence

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/catalog"
)

// ProductRepository implements catalog.ProductRepository over the
// collection store
type ProductRepository struct {
	store *CollectionStore
}

// NewProductRepository creates a product repository
func NewProductRepository(store *CollectionStore) *ProductRepository {
	return &ProductRepository{store: store}
}

// Load returns all products in the catalog
func (r *ProductRepository) Load(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.store.Load(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}

// Save overwrites the stored catalog
func (r *ProductRepository) Save(ctx context.Context, products []catalog.Product) error {
	return r.store.Save(ctx, KeyProducts, products)
}

// OptionRepository implements catalog.OptionRepository. Each option
// kind is its own collection keyed by the kind name.
type OptionRepository struct {
	store *CollectionStore
}

// NewOptionRepository creates an option set repository
func NewOptionRepository(store *CollectionStore) *OptionRepository {
	return &OptionRepository{store: store}
}

// Load returns the stored option set, falling back to the defaults
// when the kind has never been saved
func (r *OptionRepository) Load(ctx context.Context, kind catalog.OptionKind) ([]string, error) {
	var values []string
	if err := r.store.Load(ctx, string(kind), &values); err != nil {
		return nil, err
	}
	if values == nil {
		return catalog.DefaultOptions(kind), nil
	}
	return values, nil
}

// Save overwrites the option set for the kind
func (r *OptionRepository) Save(ctx context.Context, kind catalog.OptionKind, values []string) error {
	return r.store.Save(ctx, string(kind), values)
}
