package catalog

import (
	"context"
	"fmt"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"
)

// The catalog is fixed for the lifetime of the flow: exactly two
// limited-edition variants, each uniquely selected by its SKU code.
var products = []domain.Product{
	{
		ID:          "ED-I",
		Code:        "8648P",
		Name:        "Tribal Cross Matte",
		Edition:     "I",
		Description: "Handcrafted from volcanic glass, each piece tells a story of fire and earth. The deep black finish captures light like no other material.",
		OfferPrice:  "2,199 BDT",
		Price:       "2,499 BDT",
		Color:       "#1a1a1a",
		Year:        "2026",
	},
	{
		ID:          "ED-II",
		Code:        "7979O",
		Name:        "Tribal Cross Glossy",
		Edition:     "II",
		Description: "Inspired by eternal flame, this piece features a unique copper-infused finish that develops a patina unique to each owner.",
		OfferPrice:  "2,199 BDT",
		Price:       "2,499 BDT",
		Color:       "#b87333",
		Year:        "2026",
	},
}

type StaticRepository struct {
	byCode map[string]domain.Product
}

func NewStaticRepository() *StaticRepository {
	byCode := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}
	return &StaticRepository{byCode: byCode}
}

func (r *StaticRepository) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}

func (r *StaticRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with code %s not found", code))
	}
	return &p, nil
}
