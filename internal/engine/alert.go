package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/metrics"
	"github.com/donaldgifford/card-ledger/internal/notify"
	"github.com/donaldgifford/card-ledger/pkg/alerts"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// AlertCheckResult summarizes one alert check pass.
type AlertCheckResult struct {
	Checked        int `json:"checked"`
	Priced         int `json:"priced"`
	Updated        int `json:"updated"`
	Triggered      int `json:"triggered"`
	Notified       int `json:"notified"`
	NotifyFailures int `json:"notify_failures"`
}

// RunAlertCheck prices every item with an active alert, records the new
// prices and fires alerts whose target was crossed. Price lookup, update and
// notification failures are logged and counted; only failing to load the
// alerts fails the pass.
func (eng *Engine) RunAlertCheck(ctx context.Context) (*AlertCheckResult, error) {
	ctx, span := tracer().Start(ctx, "engine.RunAlertCheck")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.AlertCheckDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.AlertChecksTotal.Inc()

	active, err := eng.store.ListActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active alerts: %w", err)
	}

	result := &AlertCheckResult{Checked: len(active)}
	if len(active) == 0 {
		return result, nil
	}

	prices := eng.lookupPrices(ctx, active)
	result.Priced = len(prices)

	ev := alerts.Check(active, prices, eng.nowFunc())

	for i := range ev.Updated {
		a := &ev.Updated[i]
		if err := eng.store.UpdateAlertPrice(ctx, a.ID, *a.CurrentPrice); err != nil {
			eng.log.Error("updating alert price failed", "alert_id", a.ID, "error", err)
			continue
		}
		result.Updated++
	}

	recipients := make(map[string]string)
	for i := range ev.Triggered {
		a := &ev.Triggered[i]
		fired, err := eng.store.MarkAlertTriggered(ctx, a.ID, *a.CurrentPrice, *a.TriggeredAt)
		if err != nil {
			eng.log.Error("marking alert triggered failed", "alert_id", a.ID, "error", err)
			continue
		}
		if !fired {
			eng.log.Debug("alert already triggered elsewhere", "alert_id", a.ID)
			continue
		}

		result.Triggered++
		metrics.AlertsFiredTotal.Inc()

		if err := eng.notify(ctx, a, recipients); err != nil {
			result.NotifyFailures++
			metrics.NotificationFailuresTotal.Inc()
			eng.log.Error("alert notification failed", "alert_id", a.ID, "user_id", a.UserID, "error", err)
			continue
		}
		result.Notified++
	}

	span.SetAttributes(
		attribute.Int("alerts.checked", result.Checked),
		attribute.Int("alerts.triggered", result.Triggered),
	)
	eng.log.Info("alert check complete",
		"checked", result.Checked,
		"priced", result.Priced,
		"updated", result.Updated,
		"triggered", result.Triggered,
		"notified", result.Notified,
		"notify_failures", result.NotifyFailures,
	)
	return result, nil
}

// lookupPrices prices each distinct item once. Items whose lookup fails are
// left out of the map.
func (eng *Engine) lookupPrices(ctx context.Context, active []domain.PriceAlert) map[string]float64 {
	names := make(map[string]string, len(active))
	for i := range active {
		if _, ok := names[active[i].ItemID]; !ok {
			names[active[i].ItemID] = active[i].ItemName
		}
	}

	var (
		mu     sync.Mutex
		prices = make(map[string]float64, len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.priceConcurrency)

	for itemID, name := range names {
		g.Go(func() error {
			price, err := eng.prices.CurrentPrice(gctx, itemID, name)
			if err != nil {
				if errors.Is(err, ebay.ErrNoPriceData) {
					eng.log.Debug("no price data for item", "item_id", itemID)
					return nil
				}
				metrics.PriceLookupFailuresTotal.Inc()
				eng.log.Warn("price lookup failed", "item_id", itemID, "error", err)
				return nil
			}

			mu.Lock()
			prices[itemID] = price
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return prices
}

func (eng *Engine) notify(ctx context.Context, a *domain.PriceAlert, recipients map[string]string) error {
	email, ok := recipients[a.UserID]
	if !ok {
		u, err := eng.store.GetUser(ctx, a.UserID)
		if err != nil {
			return fmt.Errorf("loading user %s: %w", a.UserID, err)
		}
		email = u.Email
		recipients[a.UserID] = email
	}

	return eng.notifier.NotifyPriceAlert(ctx, notify.PriceAlertNotification{
		Recipient: email,
		Alert:     *a,
	})
}
