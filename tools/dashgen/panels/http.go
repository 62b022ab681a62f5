package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Request Rate", "HTTP requests per second", TSWidth).
		WithTarget(PromQuery(`card_ledger:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := timeseriesPanel("Latency Percentiles", "HTTP request duration percentiles", TSWidth).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())

	for i, q := range []string{"0.50", "0.95", "0.99"} {
		expr := fmt.Sprintf(
			`histogram_quantile(%s, sum(rate(card_ledger_http_request_duration_seconds_bucket{%s}[5m])) by (le))`,
			q, Job,
		)
		b.WithTarget(PromQuery(expr, "p"+q[2:], string(rune('A'+i))))
	}
	return b
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(
			`card_ledger:http_errors:rate5m / card_ledger:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// RequestsByPath returns a timeseries panel breaking the request rate down
// by route.
func RequestsByPath() *timeseries.PanelBuilder {
	return timeseriesPanel("Requests by Route", "HTTP requests per second by route and status", TSWidth).
		WithTarget(PromQuery(
			`sum by (path, status) (rate(card_ledger_http_requests_total{`+Job+`}[5m]))`,
			"{{path}} {{status}}", "A",
		)).
		Unit("reqps").
		Tooltip(MultiTooltip())
}

// Panics returns a stat panel showing recovered handler panics in the past
// 24 hours.
func Panics() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Panics (24h)").
		Description("Handler panics recovered in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(card_ledger_http_panics_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
