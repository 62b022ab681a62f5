package notify

import (
	"context"
	"errors"
)

// MultiNotifier fans an alert out to every backend. All backends are tried;
// their errors are joined.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a fan-out notifier. Nil entries are skipped.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Len returns the number of backends.
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}

// NotifyPriceAlert delivers to every backend.
func (m *MultiNotifier) NotifyPriceAlert(ctx context.Context, n PriceAlertNotification) error {
	var errs []error
	for _, backend := range m.notifiers {
		if err := backend.NotifyPriceAlert(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
