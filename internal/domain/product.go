package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is a catalog entry for one limited-edition lighter variant.
// ID identifies the edition for display; Code is the SKU sent to the
// inventory service in order payloads.
type Product struct {
	ID          string
	Code        string
	Name        string
	Edition     string
	Description string
	Price       string
	OfferPrice  string
	Color       string
	Year        string
}

// ParsePrice converts a catalog display price such as "2,199 BDT" into a
// whole-unit amount. It strips thousands separators and the trailing
// currency label. Catalog prices are whole BDT; there are no minor units.
func ParsePrice(display string) (int, error) {
	s := strings.ReplaceAll(display, ",", "")
	s = strings.TrimSuffix(s, " BDT")
	s = strings.TrimSpace(s)

	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", display, err)
	}

	return amount, nil
}

// OfferAmount returns the discounted price actually charged per unit.
func (p Product) OfferAmount() (int, error) {
	return ParsePrice(p.OfferPrice)
}
