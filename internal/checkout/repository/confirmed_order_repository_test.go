package repository

import (
	"context"
	"testing"
	"time"

	"oldenfyre/internal/domain"
	apperrors "oldenfyre/internal/errors"
	"oldenfyre/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(code string) domain.ConfirmedOrder {
	now := time.Now().UTC().Truncate(time.Second)
	notes := "ring the bell twice"

	return domain.ConfirmedOrder{
		Code:         code,
		CustomerName: "Rahim Uddin",
		Phone:        "+8801234567890",
		Address:      "12 Lake Road, Dhaka, 1207, Bangladesh",
		ProductCode:  "8648P",
		ProductName:  "Tribal Cross Matte",
		Quantity:     1,
		UnitPrice:    2199,
		Subtotal:     2199,
		Discount:     0,
		FinalTotal:   2199,
		Status:       domain.OrderStatusPending,
		Notes:        &notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMySQLConfirmedOrderRepository_SaveAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLConfirmedOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testOrder("OF-1042")))

	found, err := repo.FindByCode(ctx, "OF-1042")
	require.NoError(t, err)

	assert.Equal(t, "OF-1042", found.Code)
	assert.Equal(t, "Rahim Uddin", found.CustomerName)
	assert.Equal(t, "Tribal Cross Matte", found.ProductName)
	assert.Equal(t, 2199, found.FinalTotal)
	assert.Equal(t, domain.OrderStatusPending, found.Status)
	assert.Nil(t, found.AltPhone)
	require.NotNil(t, found.Notes)
	assert.Equal(t, "ring the bell twice", *found.Notes)
}

func TestMySQLConfirmedOrderRepository_SaveIsUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLConfirmedOrderRepository(db)
	ctx := context.Background()

	order := testOrder("OF-2001")
	require.NoError(t, repo.Save(ctx, order))

	order.Status = domain.OrderStatusConfirmed
	order.UpdatedAt = order.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByCode(ctx, "OF-2001")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, found.Status)
}

func TestMySQLConfirmedOrderRepository_FindByCode_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLConfirmedOrderRepository(db)

	_, err := repo.FindByCode(context.Background(), "OF-9999")
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
