package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []OrderItem {
	return []OrderItem{
		{SKU: "SKU-A", Name: "Blue Shirt", Quantity: 10, CostPrice: decimal.NewFromInt(250)},
		{SKU: "SKU-B", Name: "Red Shirt", Quantity: 5, CostPrice: decimal.NewFromInt(300)},
	}
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		order, err := NewPurchaseOrder("SUP-000001", "Mehta Textiles", testItems())
		require.NoError(t, err)

		assert.Regexp(t, `^PO-\d{6}$`, order.OrderID)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Nil(t, order.DeliveredAt)
		assert.Equal(t, 15, order.TotalQuantity())
	})

	t.Run("rejects missing supplier and bad items", func(t *testing.T) {
		_, err := NewPurchaseOrder("", "X", testItems())
		assert.Error(t, err)

		_, err = NewPurchaseOrder("SUP-000001", "X", nil)
		assert.Error(t, err)

		_, err = NewPurchaseOrder("SUP-000001", "X", []OrderItem{{SKU: "SKU-A", Quantity: 0}})
		assert.Error(t, err)
	})
}

func TestPurchaseOrder_StatusTransitions(t *testing.T) {
	t.Run("pending to delivered, exactly once", func(t *testing.T) {
		order, err := NewPurchaseOrder("SUP-000001", "Mehta Textiles", testItems())
		require.NoError(t, err)

		require.NoError(t, order.MarkDelivered())
		assert.Equal(t, OrderStatusDelivered, order.Status)
		require.NotNil(t, order.DeliveredAt)

		assert.Error(t, order.MarkDelivered(), "delivered is terminal")
		assert.Error(t, order.Cancel())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		order, err := NewPurchaseOrder("SUP-000001", "Mehta Textiles", testItems())
		require.NoError(t, err)

		require.NoError(t, order.Cancel())
		assert.Error(t, order.MarkDelivered())
	})
}

func TestPurchaseOrder_ComputeTotals(t *testing.T) {
	order, err := NewPurchaseOrder("SUP-000001", "Mehta Textiles", testItems())
	require.NoError(t, err)
	order.Payment.Paid = decimal.NewFromInt(1000)

	order.ComputeTotals(decimal.NewFromInt(5))

	// 10*250 + 5*300 = 4000, tax 5% = 200
	assert.True(t, order.Payment.Subtotal.Equal(decimal.NewFromInt(4000)))
	assert.True(t, order.Payment.Tax.Equal(decimal.NewFromInt(200)))
	assert.True(t, order.Payment.Total.Equal(decimal.NewFromInt(4200)))
	assert.True(t, order.Payment.Remaining.Equal(decimal.NewFromInt(3200)))
}
