package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRule("card-ledger-recording-rules", RuleGroup{
		Name: "card-ledger-recording",
		Rules: []Rule{
			{
				Record: "card_ledger:http_requests:rate5m",
				Expr:   `sum(rate(card_ledger_http_requests_total[5m]))`,
			},
			{
				Record: "card_ledger:http_errors:rate5m",
				Expr:   `sum(rate(card_ledger_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "card_ledger:import_items:rate5m",
				Expr:   `sum by (kind) (rate(card_ledger_import_items_total[5m]))`,
			},
			{
				Record: "card_ledger:import_errors:rate5m",
				Expr:   `sum by (kind) (rate(card_ledger_import_errors_total[5m]))`,
			},
			{
				Record: "card_ledger:token_refresh_failures:rate5m",
				Expr:   `sum(rate(card_ledger_token_refreshes_total{result!="success"}[5m]))`,
			},
			{
				Record: "card_ledger:ebay_api_calls:rate5m",
				Expr:   `rate(card_ledger_ebay_api_calls_total[5m])`,
			},
			{
				Record: "card_ledger:notification_duration:p95_5m",
				Expr:   `histogram_quantile(0.95, sum by (le, backend) (rate(card_ledger_notification_duration_seconds_bucket[5m])))`,
			},
		},
	})
}
