package service

import (
	"testing"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProduct = domain.Product{
	ID:         "ED-I",
	Code:       "8648P",
	Name:       "Tribal Cross Matte",
	OfferPrice: "2,199 BDT",
	Price:      "2,499 BDT",
}

func TestQuote_SingleUnit(t *testing.T) {
	calc := NewPriceCalculator(0)

	totals, err := calc.Quote(testProduct, 1)
	require.NoError(t, err)

	assert.Equal(t, 2199, totals.UnitPrice)
	assert.Equal(t, 2199, totals.Subtotal)
	assert.Equal(t, 0, totals.Shipping)
	assert.Equal(t, 2199, totals.Final)
}

func TestQuote_LinearInQuantity(t *testing.T) {
	calc := NewPriceCalculator(0)

	one, err := calc.Quote(testProduct, 1)
	require.NoError(t, err)
	two, err := calc.Quote(testProduct, 2)
	require.NoError(t, err)

	assert.Equal(t, 2*one.Subtotal, two.Subtotal)
}

func TestQuote_FreeShippingMeansFinalEqualsSubtotal(t *testing.T) {
	calc := NewPriceCalculator(0)

	for quantity := domain.MinQuantity; quantity <= domain.MaxQuantity; quantity++ {
		totals, err := calc.Quote(testProduct, quantity)
		require.NoError(t, err)
		assert.Equal(t, totals.Subtotal, totals.Final, "quantity %d", quantity)
	}
}

func TestQuote_FlatShippingAddedOnce(t *testing.T) {
	calc := NewPriceCalculator(120)

	totals, err := calc.Quote(testProduct, 3)
	require.NoError(t, err)

	assert.Equal(t, 3*2199, totals.Subtotal)
	assert.Equal(t, 120, totals.Shipping)
	assert.Equal(t, 3*2199+120, totals.Final)
}

func TestQuote_UnparsablePrice(t *testing.T) {
	calc := NewPriceCalculator(0)
	broken := testProduct
	broken.OfferPrice = "priceless"

	_, err := calc.Quote(broken, 1)
	require.Error(t, err)

	_, ok := apperrors.IsInternalError(err)
	assert.True(t, ok)
}
