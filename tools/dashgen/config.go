package main

import "errors"

// generatedHeader prefixes every rules file written by dashgen.
const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

// KnownMetrics is the set of metric names exported by card-ledger plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP and health.
	"card_ledger_http_request_duration_seconds": true,
	"card_ledger_http_requests_total":           true,
	"card_ledger_http_panics_total":             true,
	"card_ledger_healthz_up":                    true,
	"card_ledger_readyz_up":                     true,

	// User tokens.
	"card_ledger_token_refreshes_total":          true,
	"card_ledger_token_refresh_duration_seconds": true,
	"card_ledger_tokens_revoked_total":           true,

	// Imports.
	"card_ledger_import_items_total":        true,
	"card_ledger_import_needs_review_total": true,
	"card_ledger_import_errors_total":       true,
	"card_ledger_import_duration_seconds":   true,

	// eBay API usage.
	"card_ledger_ebay_api_calls_total":        true,
	"card_ledger_ebay_api_retries_total":      true,
	"card_ledger_ebay_daily_usage":            true,
	"card_ledger_ebay_daily_limit_hits_total": true,

	// Catalogs.
	"card_ledger_catalog_requests_total": true,

	// Alerts and notifications.
	"card_ledger_alert_checks_total":                   true,
	"card_ledger_alert_check_duration_seconds":         true,
	"card_ledger_alerts_fired_total":                   true,
	"card_ledger_price_lookup_failures_total":          true,
	"card_ledger_notification_failures_total":          true,
	"card_ledger_notification_duration_seconds":        true,
	"card_ledger_scheduler_next_alert_check_timestamp": true,

	// Recording rules.
	"card_ledger:http_requests:rate5m":          true,
	"card_ledger:http_errors:rate5m":            true,
	"card_ledger:import_items:rate5m":           true,
	"card_ledger:import_errors:rate5m":          true,
	"card_ledger:token_refresh_failures:rate5m": true,
	"card_ledger:ebay_api_calls:rate5m":         true,
	"card_ledger:notification_duration:p95_5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
