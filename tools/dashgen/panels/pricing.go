package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a timeseries panel showing the comps cache hit ratio
// as a percentage.
func CacheHitRatio() *timeseries.PanelBuilder {
	expr := `sum(rate(relister_comps_cache_hits_total{job="relister"}[5m])) / (sum(rate(relister_comps_cache_hits_total{job="relister"}[5m])) + sum(rate(relister_comps_cache_misses_total{job="relister"}[5m]))) * 100`
	return timeseries.NewPanelBuilder().
		Title("Comps Cache Hit Ratio").
		Description("Percentage of comps requests served from the cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(expr, "hit %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PriceDistribution returns a bar gauge panel showing the distribution of
// suggested listing prices across histogram buckets.
func PriceDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Suggested Price Distribution").
		Description("Distribution of suggested prices over the last hour (USD)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(relister_suggested_price_distribution_bucket{job="relister"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
