package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"oldenfyre/internal/checkout/service"
	"oldenfyre/internal/domain"
	"oldenfyre/internal/dto"
	apperrors "oldenfyre/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutUseCase interface {
	PlaceOrder(ctx context.Context, form domain.OrderForm) (*dto.OrderResponse, error)
	Quote(ctx context.Context, productCode string, quantity int) (service.Totals, error)
	Confirmation(ctx context.Context, code string) (*domain.ConfirmedOrder, error)
}

type CheckoutController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

// PlaceOrder handles POST /api/orders.
func (c *CheckoutController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.NewValidationError(
			"invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"},
		))
		return
	}

	// The form's quantity control clamps to 1-5; a request outside that
	// range never came from the form.
	if req.Quantity < domain.MinQuantity || req.Quantity > domain.MaxQuantity {
		c.writeValidationError(w, "validation failed", apperrors.NewValidationError(
			"validation failed",
			apperrors.ValidationDetail{
				Field:   "quantity",
				Message: fmt.Sprintf("Quantity must be between %d and %d", domain.MinQuantity, domain.MaxQuantity),
			},
		))
		return
	}

	response, err := c.useCase.PlaceOrder(r.Context(), toOrderForm(req))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		TraceID:   traceID,
		Data:      *response,
		Timestamp: time.Now().UTC(),
	})
}

// GetConfirmation handles GET /api/orders/{code}.
func (c *CheckoutController) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	code := chi.URLParam(r, "code")

	order, err := c.useCase.Confirmation(r.Context(), code)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ConfirmationResponse{
		Code:         order.Code,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		ProductCode:  order.ProductCode,
		Quantity:     order.Quantity,
		FinalTotal:   order.FinalTotal,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	})
}

// GetQuote handles GET /api/checkout/quote.
func (c *CheckoutController) GetQuote(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productCode := r.URL.Query().Get("productCode")
	if productCode == "" {
		c.writeValidationError(w, "validation failed", apperrors.NewValidationError(
			"validation failed",
			apperrors.ValidationDetail{Field: "productCode", Message: "productCode is required"},
		))
		return
	}

	quantityParam := r.URL.Query().Get("quantity")
	quantity, err := strconv.Atoi(quantityParam)
	if err != nil || quantity < domain.MinQuantity || quantity > domain.MaxQuantity {
		c.writeValidationError(w, "validation failed", apperrors.NewValidationError(
			"validation failed",
			apperrors.ValidationDetail{
				Field:   "quantity",
				Message: fmt.Sprintf("Quantity must be between %d and %d", domain.MinQuantity, domain.MaxQuantity),
			},
		))
		return
	}

	totals, err := c.useCase.Quote(r.Context(), productCode, quantity)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.QuoteResponse{
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   totals.UnitPrice,
		Subtotal:    totals.Subtotal,
		Shipping:    totals.Shipping,
		Final:       totals.Final,
	})
}

func (c *CheckoutController) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			TraceID:   traceID,
			Error:     "NOT_FOUND",
			Message:   nfe.Message,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	if se, ok := apperrors.IsSubmissionError(err); ok {
		logger.Warn("order submission failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, dto.ErrorResponse{
			TraceID:   traceID,
			Error:     "SUBMISSION_FAILED",
			Message:   se.Message,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID:   traceID,
		Error:     "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
	})
}

func (c *CheckoutController) writeValidationError(w http.ResponseWriter, message string, ve *apperrors.ValidationError) {
	c.writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		Error:           "VALIDATION_ERROR",
		Message:         message,
		Details:         ve.Details,
		FirstErrorField: ve.FirstField(),
	})
}

func (c *CheckoutController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toOrderForm(req dto.PlaceOrderRequest) domain.OrderForm {
	return domain.OrderForm{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		AltPhone:    req.AltPhone,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		ProductCode: req.ProductCode,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	}
}
