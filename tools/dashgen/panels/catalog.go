package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogRequests returns a timeseries panel showing catalog lookups by
// source and result.
func CatalogRequests() *timeseries.PanelBuilder {
	return timeseriesPanel("Catalog Requests", "Catalog searches per second by source and result", FullWidth).
		WithTarget(PromQuery(
			`sum by (source, result) (rate(card_ledger_catalog_requests_total{`+Job+`}[5m]))`,
			"{{source}} {{result}}", "A",
		)).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}
