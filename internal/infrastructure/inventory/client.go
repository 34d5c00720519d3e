package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"oldenfyre/internal/config"
	"oldenfyre/internal/dto"
	apperrors "oldenfyre/internal/errors"

	"go.uber.org/zap"
)

// FallbackErrorMessage is shown when the inventory service fails without a
// usable message in its error body.
const FallbackErrorMessage = "Failed to place order"

const ordersPath = "/api/orders"

// Client talks to the external inventory/order service. That service owns
// all real order state; this client issues exactly one POST per call and
// never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.InventoryConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type dataEnvelope struct {
	Data *dto.OrderResponse `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// Submit POSTs the order payload and returns the created order record from
// the response's data envelope. Any non-2xx status, transport failure, or
// malformed response becomes a SubmissionError.
func (c *Client) Submit(ctx context.Context, payload dto.OrderPayload) (*dto.OrderResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding order payload", err)
	}

	url := c.baseURL + ordersPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("building order request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("inventory request failed", zap.Error(err))
		return nil, apperrors.NewSubmissionError(err.Error(), err)
	}
	defer resp.Body.Close()

	c.logger.Debug("inventory response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.submissionErrorFromBody(resp)
	}

	var envelope dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.NewSubmissionError(FallbackErrorMessage, fmt.Errorf("decoding response body: %w", err))
	}
	if envelope.Data == nil {
		return nil, apperrors.NewSubmissionError(FallbackErrorMessage, fmt.Errorf("response body missing data field"))
	}

	return envelope.Data, nil
}

func (c *Client) submissionErrorFromBody(resp *http.Response) error {
	message := FallbackErrorMessage

	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}

	c.logger.Warn("inventory rejected order",
		zap.Int("status", resp.StatusCode),
		zap.String("message", message),
	)

	return apperrors.NewSubmissionError(message, fmt.Errorf("inventory service returned status %d", resp.StatusCode))
}
