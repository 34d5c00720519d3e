package catalog

import (
	"context"

	"oldenfyre/internal/domain"
)

type Repository interface {
	All(ctx context.Context) ([]domain.Product, error)
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
}
