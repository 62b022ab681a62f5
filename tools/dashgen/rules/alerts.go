package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// card-ledger operational monitoring.
func AlertRules() PrometheusRule {
	return newRule("card-ledger-alerts", RuleGroup{
		Name: "card-ledger-alerts",
		Rules: []Rule{
			alert("CardLedgerDown", `absent(up{job="card-ledger"})`, "2m", "critical",
				"card-ledger is down",
				"The card-ledger job has been absent for more than 2 minutes."),
			alert("CardLedgerReadinessDown", `card_ledger_readyz_up == 0`, "2m", "critical",
				"card-ledger readiness check is failing",
				"The database readiness probe has been failing for more than 2 minutes."),
			alert("CardLedgerHighErrorRate", `card_ledger:http_errors:rate5m / card_ledger:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on card-ledger",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("CardLedgerImportErrors", `sum(card_ledger:import_errors:rate5m) > 0`, "5m", "warning",
				"Imports are failing",
				"Listing or sales imports have been failing for more than 5 minutes."),
			alert("CardLedgerTokenRefreshFailures", `card_ledger:token_refresh_failures:rate5m > 0.05`, "10m", "warning",
				"User token refreshes are failing",
				"Token refreshes against the eBay identity endpoint are being rejected or erroring."),
			alert("CardLedgerEbayQuotaHigh", `card_ledger_ebay_daily_usage > 4000`, "5m", "warning",
				"eBay API daily usage is above 80% of the budget",
				"Daily eBay API usage has exceeded 4000 calls (budget is 5000)."),
			alert("CardLedgerEbayLimitReached", `increase(card_ledger_ebay_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
				"eBay API daily budget has been exhausted",
				"Outbound eBay calls are refused until the rolling window frees capacity."),
			alert("CardLedgerNotificationFailures", `increase(card_ledger_notification_failures_total[5m]) > 0`, "1m", "warning",
				"Notification delivery failures detected",
				"One or more alert notifications (email or Discord) have failed to send."),
		},
	})
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
