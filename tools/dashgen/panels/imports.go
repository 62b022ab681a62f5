package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ImportedItemsRate returns a timeseries panel showing mapped items per
// second by import kind, with the share flagged for review.
func ImportedItemsRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Imported Items", "Items mapped per second by import kind", 8).
		WithTarget(PromQuery(`card_ledger:import_items:rate5m`, "{{kind}}", "A")).
		WithTarget(PromQuery(
			`sum by (kind) (rate(card_ledger_import_needs_review_total{`+Job+`}[5m]))`,
			"{{kind}} needs review", "B",
		)).
		Unit("ops").
		Tooltip(MultiTooltip())
}

// ImportErrors returns a timeseries panel showing failed imports by kind.
func ImportErrors() *timeseries.PanelBuilder {
	return timeseriesPanel("Import Errors", "Failed imports per second by kind", 8).
		WithTarget(PromQuery(`card_ledger:import_errors:rate5m`, "{{kind}}", "A")).
		Unit("ops").
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds())
}

// ImportDuration returns a timeseries panel showing p95 import latency by
// kind.
func ImportDuration() *timeseries.PanelBuilder {
	return timeseriesPanel("Import Duration (p95)", "95th percentile import duration by kind", 8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, kind) (rate(card_ledger_import_duration_seconds_bucket{`+Job+`}[5m])))`,
			"{{kind}}", "A",
		)).
		Unit("s")
}
