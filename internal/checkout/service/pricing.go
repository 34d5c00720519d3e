package service

import (
	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"
)

// Totals is the priced breakdown for one order line. Amounts are whole BDT.
type Totals struct {
	UnitPrice int
	Subtotal  int
	Shipping  int
	Final     int
}

// PriceCalculator prices the selected product at its offer price plus a
// flat shipping amount (zero under the current free-shipping policy).
type PriceCalculator struct {
	shippingCost int
}

func NewPriceCalculator(shippingCost int) *PriceCalculator {
	return &PriceCalculator{shippingCost: shippingCost}
}

// Quote computes totals for quantity units of the product. Quantity is
// assumed to already be within the form control's 1-5 bounds; the
// calculator does not defend against out-of-range input.
func (c *PriceCalculator) Quote(product domain.Product, quantity int) (Totals, error) {
	unitPrice, err := product.OfferAmount()
	if err != nil {
		// Catalog prices are static; a parse failure is not user input.
		return Totals{}, apperrors.NewInternalError("parsing product price", err)
	}

	subtotal := unitPrice * quantity

	return Totals{
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
		Shipping:  c.shippingCost,
		Final:     subtotal + c.shippingCost,
	}, nil
}
