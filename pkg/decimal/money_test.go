package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConversions(t *testing.T) {
	annual := NewMoney(12000)
	assert.Equal(t, "1000.00", annual.Monthly().String())
	assert.Equal(t, "12000.00", NewMoney(1000).Annual().String())
}

func TestMoneyPercent(t *testing.T) {
	m := NewMoney(200)
	assert.Equal(t, "50.00", m.Percent(decimal.NewFromInt(25)).String())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10.50)
	b := NewMoney(4.25)
	assert.Equal(t, "14.75", a.Add(b).String())
	assert.Equal(t, "6.25", a.Sub(b).String())
	assert.True(t, Zero().IsZero())
}

func TestMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.567")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", m.Round().String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", NewMoney(1234.5).Format())
	assert.Equal(t, "-$250.00", NewMoney(-250).Format())
}
