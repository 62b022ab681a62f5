package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when no notification backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyPriceAlert logs and discards the alert.
func (n *NoOpNotifier) NotifyPriceAlert(_ context.Context, pn PriceAlertNotification) error {
	n.log.Debug("notification discarded (no backend configured)",
		"alert_id", pn.Alert.ID,
		"item_id", pn.Alert.ItemID,
		"direction", pn.Alert.Direction,
	)
	return nil
}
