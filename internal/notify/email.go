package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/card-ledger/internal/metrics"
)

// EmailNotifier posts alerts to the hosted email function, which renders
// and sends the message.
type EmailNotifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// EmailOption configures an EmailNotifier.
type EmailOption func(*EmailNotifier)

// WithEmailHTTPClient sets a custom HTTP client.
func WithEmailHTTPClient(c *http.Client) EmailOption {
	return func(e *EmailNotifier) {
		e.client = c
	}
}

// NewEmailNotifier creates a notifier for the email function at endpoint.
// apiKey is sent as a bearer token when non-empty.
func NewEmailNotifier(endpoint, apiKey string, opts ...EmailOption) *EmailNotifier {
	e := &EmailNotifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type emailMessage struct {
	Type      string         `json:"type"`
	Recipient string         `json:"recipient"`
	Data      PriceAlertData `json:"data"`
}

// NotifyPriceAlert sends one price_alert message.
func (e *EmailNotifier) NotifyPriceAlert(ctx context.Context, n PriceAlertNotification) error {
	if n.Recipient == "" {
		return fmt.Errorf("alert %s has no recipient", n.Alert.ID)
	}

	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues("email").Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(emailMessage{
		Type:      NotificationType,
		Recipient: n.Recipient,
		Data:      n.Data(),
	})
	if err != nil {
		return fmt.Errorf("marshaling email message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email function returned %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	return nil
}
