package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsRate returns a timeseries panel showing alerts fired and price
// lookups that failed during checks.
func AlertsRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Alerts Fired Rate", "Alerts fired and failed price lookups per second", TSWidth).
		WithTarget(PromQuery(`sum(rate(card_ledger_alerts_fired_total{`+Job+`}[5m]))`, "fired/s", "A")).
		WithTarget(PromQuery(`sum(rate(card_ledger_price_lookup_failures_total{`+Job+`}[5m]))`, "lookup failures/s", "B")).
		Tooltip(MultiTooltip())
}

// AlertCheckDuration returns a timeseries panel showing p95 alert check
// pass duration.
func AlertCheckDuration() *timeseries.PanelBuilder {
	return timeseriesPanel("Alert Check Duration (p95)", "95th percentile duration of an alert check pass", TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(card_ledger_alert_check_duration_seconds_bucket{`+Job+`}[15m])) by (le))`,
			"p95", "A",
		)).
		Unit("s")
}

// NotificationLatency returns a timeseries panel showing p95 notification
// latency by backend.
func NotificationLatency() *timeseries.PanelBuilder {
	return timeseriesPanel("Notification Latency (p95)", "95th percentile delivery latency by backend", TSWidth).
		WithTarget(PromQuery(`card_ledger:notification_duration:p95_5m`, "{{backend}}", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("Failed alert notification deliveries in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(card_ledger_notification_failures_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
