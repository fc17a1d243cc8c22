package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("generates id and defaults", func(t *testing.T) {
		s, err := NewSupplier("Mehta Textiles", "Rajesh Mehta", "9876543210")
		require.NoError(t, err)

		assert.Regexp(t, `^SUP-\d{6}$`, s.SupplierID)
		assert.Equal(t, "Mehta Textiles", s.BusinessName)
		assert.NotNil(t, s.OfferedProducts)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("rejects empty business name", func(t *testing.T) {
		_, err := NewSupplier("", "X", "")
		assert.Error(t, err)
	})

	t.Run("rejects short phone", func(t *testing.T) {
		_, err := NewSupplier("Mehta Textiles", "X", "12345")
		assert.Error(t, err)
	})
}

func TestSupplier_Update(t *testing.T) {
	s, err := NewSupplier("Mehta Textiles", "Rajesh Mehta", "9876543210")
	require.NoError(t, err)
	id, created := s.SupplierID, s.CreatedAt

	err = s.Update(Supplier{
		SupplierID:   "SUP-999999",
		BusinessName: "Mehta Textiles Pvt Ltd",
		Phone:        "+91 9876543210",
		Email:        "sales@mehtatextiles.in",
		GSTIN:        "27aapfu0939f1zv",
		PaymentTerms: "Net 30",
	})
	require.NoError(t, err)

	assert.Equal(t, id, s.SupplierID, "supplier id is immutable")
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, "Mehta Textiles Pvt Ltd", s.BusinessName)
	assert.Equal(t, "27AAPFU0939F1ZV", s.GSTIN)

	err = s.Update(Supplier{BusinessName: "X", GSTIN: "too-short"})
	assert.Error(t, err)
}

func TestSupplier_Tombstone(t *testing.T) {
	s, err := NewSupplier("Mehta Textiles", "Rajesh Mehta", "9876543210")
	require.NoError(t, err)

	tomb := s.Tombstone(4)
	assert.Equal(t, s.SupplierID, tomb.SupplierID)
	assert.Equal(t, 4, tomb.RemovedProducts)
	assert.False(t, tomb.DeletedAt.IsZero())
}

func TestValidateGSTIN(t *testing.T) {
	assert.NoError(t, ValidateGSTIN("27AAPFU0939F1ZV"))
	assert.Error(t, ValidateGSTIN("27AAPFU0939F1Z"))
	assert.Error(t, ValidateGSTIN("27AAPFU0939F1Z!"))
}
