// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/card-ledger/tools/dashgen/panels"
)

// UID identifies the overview dashboard in Grafana.
const UID = "card-ledger-overview"

// BuildOverview constructs the card-ledger overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("card-ledger Overview").
		Uid(UID).
		Tags([]string{"card-ledger"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.NextAlertCheck()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RequestsByPath()).
		WithPanel(panels.Panics()))

	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("User Tokens").
		WithPanel(panels.TokenRefreshes()).
		WithPanel(panels.TokenRefreshLatency()).
		WithPanel(panels.TokensRevoked()))

	b.WithRow(dashboard.NewRowBuilder("Imports").
		WithPanel(panels.ImportedItemsRate()).
		WithPanel(panels.ImportErrors()).
		WithPanel(panels.ImportDuration()))

	b.WithRow(dashboard.NewRowBuilder("Catalogs").
		WithPanel(panels.CatalogRequests()))

	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.AlertCheckDuration()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
