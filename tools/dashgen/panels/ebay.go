package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing the eBay API call and
// retry rates.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseriesPanel("API Calls Rate", "eBay API calls and retries per second", 8).
		WithTarget(PromQuery(`card_ledger:ebay_api_calls:rate5m`, "calls/s", "A")).
		WithTarget(PromQuery(`rate(card_ledger_ebay_api_retries_total{`+Job+`}[5m])`, "retries/s", "B")).
		Unit("reqps").
		Tooltip(MultiTooltip())
}

// DailyUsage returns a timeseries panel showing the rolling 24h eBay API
// usage against the daily budget.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseriesPanel(
		"Daily Usage vs Limit",
		fmt.Sprintf("Rolling 24h eBay API call count (limit: %d)", EbayDailyLimit),
		8,
	).
		WithTarget(PromQuery(`card_ledger_ebay_daily_usage{`+Job+`}`, "usage", "A")).
		Thresholds(ThresholdsGreenYellowRed(float64(EbayDailyLimit)*0.8, float64(EbayDailyLimit))).
		ColorScheme(ColorSchemeThresholds())
}

// LimitHits returns a stat panel showing the number of daily limit hits
// in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the eBay daily budget was exhausted in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(card_ledger_ebay_daily_limit_hits_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
