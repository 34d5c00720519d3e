package repository

import (
	"context"
	"database/sql"
	"fmt"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"
)

type MySQLConfirmedOrderRepository struct {
	db *sql.DB
}

func NewMySQLConfirmedOrderRepository(db *sql.DB) *MySQLConfirmedOrderRepository {
	return &MySQLConfirmedOrderRepository{db: db}
}

// Save upserts by order code. Replaying a confirmation for the same code
// overwrites the mirror row rather than duplicating it.
func (r *MySQLConfirmedOrderRepository) Save(ctx context.Context, order domain.ConfirmedOrder) error {
	query := `
		INSERT INTO ConfirmedOrders
			(code, customerName, phone, altPhone, address, productCode, productName,
			 quantity, unitPrice, subtotal, discount, finalTotal, status, notes,
			 createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			status = VALUES(status),
			updatedAt = VALUES(updatedAt)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.Code, order.CustomerName, order.Phone, order.AltPhone, order.Address,
		order.ProductCode, order.ProductName, order.Quantity, order.UnitPrice,
		order.Subtotal, order.Discount, order.FinalTotal, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting confirmed order: %w", err)
	}

	return nil
}

func (r *MySQLConfirmedOrderRepository) FindByCode(ctx context.Context, code string) (*domain.ConfirmedOrder, error) {
	query := `
		SELECT code, customerName, phone, altPhone, address, productCode, productName,
		       quantity, unitPrice, subtotal, discount, finalTotal, status, notes,
		       createdAt, updatedAt
		FROM ConfirmedOrders
		WHERE code = ?
	`

	var order domain.ConfirmedOrder
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&order.Code, &order.CustomerName, &order.Phone, &order.AltPhone, &order.Address,
		&order.ProductCode, &order.ProductName, &order.Quantity, &order.UnitPrice,
		&order.Subtotal, &order.Discount, &order.FinalTotal, &order.Status, &order.Notes,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with code %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by code: %w", err)
	}

	return &order, nil
}
