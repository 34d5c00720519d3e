package usecase

import (
	"context"
	"time"

	"oldenfyre/internal/checkout/service"
	"oldenfyre/internal/domain"
	"oldenfyre/internal/dto"
	apperrors "oldenfyre/internal/errors"

	"go.uber.org/zap"
)

type CatalogRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
}

type InventoryClient interface {
	Submit(ctx context.Context, payload dto.OrderPayload) (*dto.OrderResponse, error)
}

type OrderMirrorRepository interface {
	Save(ctx context.Context, order domain.ConfirmedOrder) error
	FindByCode(ctx context.Context, code string) (*domain.ConfirmedOrder, error)
}

type FormValidator interface {
	Validate(form domain.OrderForm) *apperrors.ValidationError
}

type PriceCalculator interface {
	Quote(product domain.Product, quantity int) (service.Totals, error)
}

type CheckoutUseCase struct {
	catalog   CatalogRepository
	validator FormValidator
	pricing   PriceCalculator
	inventory InventoryClient
	mirror    OrderMirrorRepository
	logger    *zap.Logger
}

func NewCheckoutUseCase(
	catalog CatalogRepository,
	validator FormValidator,
	pricing PriceCalculator,
	inventory InventoryClient,
	mirror OrderMirrorRepository,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		catalog:   catalog,
		validator: validator,
		pricing:   pricing,
		inventory: inventory,
		mirror:    mirror,
		logger:    logger,
	}
}

// PlaceOrder runs the submission workflow end to end: normalize and
// validate the form, price the selection, assemble the payload, and submit
// it to the inventory service. No network call happens for an invalid form.
// Exactly one submission attempt is made per call; there are no retries.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, form domain.OrderForm) (*dto.OrderResponse, error) {
	form = form.Normalize()

	if ve := uc.validator.Validate(form); ve != nil {
		return nil, ve
	}

	product, err := uc.catalog.FindByCode(ctx, form.ProductCode)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
				Field:   "productCode",
				Message: "Selected product is not available",
			})
		}
		return nil, err
	}

	totals, err := uc.pricing.Quote(*product, form.Quantity)
	if err != nil {
		return nil, err
	}

	payload := buildPayload(form, totals)

	uc.logger.Info("submitting order",
		zap.String("productCode", form.ProductCode),
		zap.Int("quantity", form.Quantity),
		zap.Int("final", totals.Final),
	)

	response, err := uc.inventory.Submit(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order confirmed",
		zap.String("orderCode", response.Code),
		zap.String("status", response.Status),
	)

	// The inventory service owns the order; the local mirror only feeds the
	// confirmation view. A mirror failure must not fail a placed order.
	if err := uc.mirror.Save(ctx, toConfirmedOrder(form, *product, totals, response)); err != nil {
		uc.logger.Warn("mirroring confirmed order failed",
			zap.String("orderCode", response.Code),
			zap.Error(err),
		)
	}

	return response, nil
}

// Quote prices a selection without submitting anything. It backs the
// order form's running total.
func (uc *CheckoutUseCase) Quote(ctx context.Context, productCode string, quantity int) (service.Totals, error) {
	product, err := uc.catalog.FindByCode(ctx, productCode)
	if err != nil {
		return service.Totals{}, err
	}
	return uc.pricing.Quote(*product, quantity)
}

// Confirmation returns the mirrored record of a previously placed order.
func (uc *CheckoutUseCase) Confirmation(ctx context.Context, code string) (*domain.ConfirmedOrder, error) {
	return uc.mirror.FindByCode(ctx, code)
}

func buildPayload(form domain.OrderForm, totals service.Totals) dto.OrderPayload {
	return dto.OrderPayload{
		Customer: dto.OrderCustomer{
			Name:     form.CustomerName(),
			Phone:    form.Phone,
			AltPhone: form.AltPhone,
			Address:  form.ShippingAddress(),
		},
		Items: []dto.OrderItem{
			{
				ProductCode: form.ProductCode,
				Quantity:    form.Quantity,
				Price:       totals.UnitPrice,
			},
		},
		Totals: dto.OrderTotals{
			Subtotal: totals.Subtotal,
			Discount: 0,
			Final:    totals.Final,
		},
		Status: domain.OrderStatusPending,
		Notes:  form.Notes,
	}
}

func toConfirmedOrder(form domain.OrderForm, product domain.Product, totals service.Totals, response *dto.OrderResponse) domain.ConfirmedOrder {
	now := time.Now().UTC()

	record := domain.ConfirmedOrder{
		Code:         response.Code,
		CustomerName: form.CustomerName(),
		Phone:        form.Phone,
		Address:      form.ShippingAddress(),
		ProductCode:  form.ProductCode,
		ProductName:  product.Name,
		Quantity:     form.Quantity,
		UnitPrice:    totals.UnitPrice,
		Subtotal:     response.Totals.Subtotal,
		Discount:     response.Totals.Discount,
		FinalTotal:   response.Totals.Final,
		Status:       response.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if form.AltPhone != "" {
		altPhone := form.AltPhone
		record.AltPhone = &altPhone
	}
	if form.Notes != "" {
		notes := form.Notes
		record.Notes = &notes
	}

	return record
}
