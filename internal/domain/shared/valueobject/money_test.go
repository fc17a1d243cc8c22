package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyINR(decimal.NewFromInt(100))
	b := NewMoneyINR(decimal.NewFromInt(50))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(50)))

	doubled := a.Mul(decimal.NewFromInt(2))
	assert.True(t, doubled.Amount().Equal(decimal.NewFromInt(200)))
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	inr := NewMoneyINR(decimal.NewFromInt(100))
	usd, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)

	_, err = inr.Add(usd)
	assert.Error(t, err)
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("INR")
	require.NoError(t, err)
	assert.Equal(t, INR, c)

	_, err = ParseCurrency("XYZ")
	assert.Error(t, err)
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyINR(decimal.RequireFromString("99.50"))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.5","currency":"INR"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equal(back))
}

func TestMoneyDefaultCurrencyOnUnmarshal(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"10"}`), &m))
	assert.Equal(t, DefaultCurrency, m.Currency())
}
