package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oldenfyre/internal/config"
	"oldenfyre/internal/dto"
	apperrors "oldenfyre/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPayload() dto.OrderPayload {
	return dto.OrderPayload{
		Customer: dto.OrderCustomer{
			Name:    "Rahim Uddin",
			Phone:   "+8801234567890",
			Address: "12 Lake Road, Dhaka, 1207, Bangladesh",
		},
		Items: []dto.OrderItem{
			{ProductCode: "8648P", Quantity: 1, Price: 2199},
		},
		Totals: dto.OrderTotals{Subtotal: 2199, Discount: 0, Final: 2199},
		Status: "pending",
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.InventoryConfig{BaseURL: baseURL, Timeout: 0}, zap.NewNop())
}

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload dto.OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Rahim Uddin", payload.Customer.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": dto.OrderResponse{
				Code:     "OF-1042",
				Customer: payload.Customer,
				Items:    payload.Items,
				Totals:   payload.Totals,
				Status:   "pending",
			},
		})
	}))
	defer srv.Close()

	response, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, "OF-1042", response.Code)
	assert.Equal(t, "pending", response.Status)
	assert.Equal(t, 2199, response.Totals.Final)
}

func TestSubmit_ErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Out of stock"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.Error(t, err)

	se, ok := apperrors.IsSubmissionError(err)
	require.True(t, ok)
	assert.Equal(t, "Out of stock", se.Message)
}

func TestSubmit_ErrorWithoutMessageUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway exploded"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.Error(t, err)

	se, ok := apperrors.IsSubmissionError(err)
	require.True(t, ok)
	assert.Equal(t, FallbackErrorMessage, se.Message)
}

func TestSubmit_SuccessWithoutData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.Error(t, err)

	se, ok := apperrors.IsSubmissionError(err)
	require.True(t, ok)
	assert.Equal(t, FallbackErrorMessage, se.Message)
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.Error(t, err)

	_, ok := apperrors.IsSubmissionError(err)
	assert.True(t, ok)
}

func TestSubmit_SingleAttempt(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), testPayload())
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
