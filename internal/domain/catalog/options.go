package catalog

import (
	"context"

	"github.com/garmentshop/backend/internal/domain/shared"
)

// OptionKind names one of the configurable attribute lists used when
// creating products and suppliers
type OptionKind string

const (
	OptionCategories   OptionKind = "categories"
	OptionBrands       OptionKind = "brands"
	OptionSizes        OptionKind = "sizes"
	OptionColors       OptionKind = "colors"
	OptionFabricTypes  OptionKind = "fabricTypes"
	OptionGenders      OptionKind = "genders"
	OptionPaymentTerms OptionKind = "paymentTerms"
)

// AllOptionKinds lists every configurable option set
var AllOptionKinds = []OptionKind{
	OptionCategories, OptionBrands, OptionSizes, OptionColors,
	OptionFabricTypes, OptionGenders, OptionPaymentTerms,
}

// ParseOptionKind validates and normalizes an option kind string.
// Accepts both the storage key and the kebab-case URL form.
func ParseOptionKind(s string) (OptionKind, error) {
	switch s {
	case "categories":
		return OptionCategories, nil
	case "brands":
		return OptionBrands, nil
	case "sizes":
		return OptionSizes, nil
	case "colors":
		return OptionColors, nil
	case "fabricTypes", "fabric-types":
		return OptionFabricTypes, nil
	case "genders":
		return OptionGenders, nil
	case "paymentTerms", "payment-terms":
		return OptionPaymentTerms, nil
	}
	return "", shared.NewDomainError("INVALID_OPTION_KIND", "Unknown option kind: "+s)
}

// DefaultOptions returns the seed values for an option set. These match
// what a new garment store starts with.
func DefaultOptions(kind OptionKind) []string {
	switch kind {
	case OptionCategories:
		return []string{"Shirts", "T-Shirts", "Jeans", "Trousers", "Kurtas", "Sarees", "Dresses", "Jackets"}
	case OptionBrands:
		return []string{"Zara", "Levis", "Allen Solly", "Raymond", "FabIndia"}
	case OptionSizes:
		return []string{"XS", "S", "M", "L", "XL", "XXL", "Free Size"}
	case OptionColors:
		return []string{"Black", "White", "Blue", "Red", "Green", "Yellow", "Pink", "Beige"}
	case OptionFabricTypes:
		return []string{"Cotton", "Silk", "Denim", "Linen", "Polyester", "Wool", "Rayon"}
	case OptionGenders:
		return []string{"Men", "Women", "Unisex", "Kids"}
	case OptionPaymentTerms:
		return []string{"Advance", "Net 15", "Net 30", "Net 45", "Cash on Delivery"}
	}
	return []string{}
}

// OptionRepository persists one option set per kind
type OptionRepository interface {
	// Load returns the stored option set, or the defaults when none
	// has been saved yet
	Load(ctx context.Context, kind OptionKind) ([]string, error)

	// Save overwrites the option set for the kind
	Save(ctx context.Context, kind OptionKind, values []string) error
}
