// Package alerts evaluates price alerts against current market prices.
package alerts

import (
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// Evaluation is the result of one Check pass. Both slices hold copies; the
// caller's alerts are never modified.
type Evaluation struct {
	// Updated holds non-triggered alerts whose current price was refreshed
	// without crossing the target.
	Updated []domain.PriceAlert
	// Triggered holds alerts that crossed their target during this pass.
	Triggered []domain.PriceAlert
}

// Crossed reports whether price satisfies the alert's direction and target.
// Equality counts as crossing in both directions.
func Crossed(direction domain.AlertDirection, target, price float64) bool {
	switch direction {
	case domain.DirectionBelow:
		return price <= target
	case domain.DirectionAbove:
		return price >= target
	default:
		return false
	}
}

// Check folds current prices into the given alerts. Alerts that already
// fired, or whose item has no price, are left out of the result. Running
// Check again over its own output with the same prices changes nothing.
func Check(
	alerts []domain.PriceAlert,
	prices map[string]float64,
	now time.Time,
) Evaluation {
	var ev Evaluation

	for i := range alerts {
		a := alerts[i]
		if a.Triggered() {
			continue
		}

		price, ok := prices[a.ItemID]
		if !ok {
			continue
		}

		p := price
		a.CurrentPrice = &p

		if Crossed(a.Direction, a.TargetPrice, price) {
			at := now
			a.TriggeredAt = &at
			ev.Triggered = append(ev.Triggered, a)
			continue
		}

		ev.Updated = append(ev.Updated, a)
	}

	return ev
}
