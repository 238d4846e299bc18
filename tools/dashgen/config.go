package main

import "errors"

// KnownMetrics is the set of metric names exported by relister plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"relister_http_request_duration_seconds": true,
	"relister_http_requests_total":           true,

	// Health metrics.
	"relister_healthz_up": true,
	"relister_readyz_up":  true,

	// Lookup metrics.
	"relister_lookups_total":           true,
	"relister_lookup_duration_seconds": true,

	// Comps and pricing metrics.
	"relister_comps_fetched_total":          true,
	"relister_comps_cache_hits_total":       true,
	"relister_comps_cache_misses_total":     true,
	"relister_suggested_price_distribution": true,

	// Description generation metrics.
	"relister_describe_duration_seconds": true,
	"relister_describe_failures_total":   true,

	// Assembly metrics.
	"relister_listings_assembled_total": true,
	"relister_batch_items_total":        true,

	// eBay API metrics.
	"relister_ebay_api_calls_total":        true,
	"relister_ebay_daily_usage":            true,
	"relister_ebay_daily_limit_hits_total": true,

	// Notification metrics.
	"relister_notification_failures_total": true,

	// Recording rules.
	"relister:http_requests:rate5m":     true,
	"relister:http_errors:rate5m":       true,
	"relister:lookups:rate5m":           true,
	"relister:listings:rate5m":          true,
	"relister:describe_failures:rate5m": true,
	"relister:ebay_api_calls:rate5m":    true,

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
