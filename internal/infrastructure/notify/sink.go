package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotificationDeliveryFailed = errors.New("notification delivery failed")

// Sink delivers one payload.
type Sink interface {
	Deliver(ctx context.Context, p Payload) error
}

// WebhookSink posts payloads as JSON to an HTTP endpoint.
type WebhookSink struct {
	url    string
	client *http.Client
}

var _ Sink = (*WebhookSink)(nil)

func NewWebhookSink(url string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *WebhookSink) Deliver(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrNotificationDeliveryFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: status %d", ErrNotificationDeliveryFailed, resp.StatusCode)
	}
	return nil
}

// LogSink only logs the payload. Used when no webhook is configured.
type LogSink struct {
	logger *zap.Logger
}

var _ Sink = (*LogSink)(nil)

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(_ context.Context, p Payload) error {
	s.logger.Info("[notify][sink] order change",
		zap.String("order_id", p.OrderID),
		zap.String("status", p.Status),
		zap.String("total", p.Total.String()),
		zap.String("debt", p.Debt.String()),
		zap.String("method", p.LastPaymentMethod))
	return nil
}
