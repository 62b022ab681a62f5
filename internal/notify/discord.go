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
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const (
	colorGreen = 0x2ECC71 // price dropped below target
	colorRed   = 0xE74C3C // price rose above target
)

// DiscordNotifier implements Notifier via Discord webhook. It is meant for
// operators watching alert traffic, not for end users.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []discordEmbedField `json:"fields,omitempty"`
	Timestamp string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyPriceAlert sends the alert as a single Discord embed.
func (d *DiscordNotifier) NotifyPriceAlert(ctx context.Context, n PriceAlertNotification) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues("discord").Observe(time.Since(start).Seconds())
	}()

	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(n.Data())},
	}
	return d.post(ctx, payload)
}

func buildEmbed(data PriceAlertData) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Price Alert: %s", data.ItemName),
		Color: directionColor(data.Direction),
		Fields: []discordEmbedField{
			{Name: "Direction", Value: string(data.Direction), Inline: true},
			{Name: "Target", Value: fmt.Sprintf("$%.2f", data.TargetPrice), Inline: true},
			{Name: "Current", Value: fmt.Sprintf("$%.2f", data.CurrentPrice), Inline: true},
			{Name: "Item", Value: data.ItemID, Inline: true},
		},
	}
	if !data.TriggeredAt.IsZero() {
		embed.Timestamp = data.TriggeredAt.UTC().Format(time.RFC3339)
	}
	return embed
}

func directionColor(dir domain.AlertDirection) int {
	if dir == domain.DirectionAbove {
		return colorRed
	}
	return colorGreen
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
