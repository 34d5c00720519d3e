package dto

import (
	"time"

	apperrors "oldenfyre/internal/errors"
)

type PlaceOrderResponse struct {
	TraceID   string        `json:"traceId"`
	Data      OrderResponse `json:"data"`
	Timestamp time.Time     `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Error           string                       `json:"error"`
	Message         string                       `json:"message"`
	Details         []apperrors.ValidationDetail `json:"details"`
	FirstErrorField string                       `json:"firstErrorField,omitempty"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId,omitempty"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type QuoteResponse struct {
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unitPrice"`
	Subtotal    int    `json:"subtotal"`
	Shipping    int    `json:"shipping"`
	Final       int    `json:"final"`
}

// ConfirmationResponse is what GET /api/orders/{code} returns: the fields
// the confirmation view renders, read from the local mirror.
type ConfirmationResponse struct {
	Code         string    `json:"code"`
	CustomerName string    `json:"customerName"`
	ProductName  string    `json:"productName"`
	ProductCode  string    `json:"productCode"`
	Quantity     int       `json:"quantity"`
	FinalTotal   int       `json:"finalTotal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
