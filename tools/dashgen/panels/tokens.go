package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenRefreshes returns a timeseries panel showing user token refreshes by
// result.
func TokenRefreshes() *timeseries.PanelBuilder {
	return timeseriesPanel("Token Refreshes", "User token refresh attempts per second by result", 8).
		WithTarget(PromQuery(
			`sum by (result) (rate(card_ledger_token_refreshes_total{`+Job+`}[5m]))`,
			"{{result}}", "A",
		)).
		Unit("ops").
		Tooltip(MultiTooltip())
}

// TokenRefreshLatency returns a timeseries panel showing p95 refresh latency
// against the identity endpoint.
func TokenRefreshLatency() *timeseries.PanelBuilder {
	return timeseriesPanel("Refresh Latency (p95)", "95th percentile token refresh duration", 8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(card_ledger_token_refresh_duration_seconds_bucket{`+Job+`}[5m])) by (le))`,
			"p95", "A",
		)).
		Unit("s")
}

// TokensRevoked returns a stat panel showing connections dropped after a
// rejected refresh in the past 24 hours.
func TokensRevoked() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Revoked Connections (24h)").
		Description("Stored tokens deleted after the provider rejected a refresh").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(card_ledger_tokens_revoked_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
