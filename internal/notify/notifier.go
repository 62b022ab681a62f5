// Package notify defines the notification interface and implementations
// for price alert delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// NotificationType identifies the kind of message sent to the email function.
const NotificationType = "price_alert"

// PriceAlertNotification is a fired alert addressed to its owner.
type PriceAlertNotification struct {
	Recipient string
	Alert     domain.PriceAlert
}

// PriceAlertData is the data block of a price alert message.
type PriceAlertData struct {
	AlertID      string                `json:"alert_id"`
	ItemID       string                `json:"item_id"`
	ItemName     string                `json:"item_name"`
	Direction    domain.AlertDirection `json:"direction"`
	TargetPrice  float64               `json:"target_price"`
	CurrentPrice float64               `json:"current_price"`
	TriggeredAt  time.Time             `json:"triggered_at"`
}

// Data flattens the alert into the message data block.
func (n PriceAlertNotification) Data() PriceAlertData {
	d := PriceAlertData{
		AlertID:     n.Alert.ID,
		ItemID:      n.Alert.ItemID,
		ItemName:    n.Alert.ItemName,
		Direction:   n.Alert.Direction,
		TargetPrice: n.Alert.TargetPrice,
	}
	if n.Alert.CurrentPrice != nil {
		d.CurrentPrice = *n.Alert.CurrentPrice
	}
	if n.Alert.TriggeredAt != nil {
		d.TriggeredAt = *n.Alert.TriggeredAt
	}
	return d
}

// Notifier delivers fired price alerts.
type Notifier interface {
	NotifyPriceAlert(ctx context.Context, n PriceAlertNotification) error
}
