package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LookupRate returns a timeseries panel showing metadata lookups per minute
// broken down by outcome.
func LookupRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Lookups / min").
		Description("Rate of product metadata lookups per minute by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(relister_lookups_total{job="relister"}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LookupDuration returns a timeseries panel showing the p95 lookup duration
// by source.
func LookupDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Lookup Duration (p95)").
		Description("95th percentile metadata lookup duration by source").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(relister_lookup_duration_seconds_bucket{job="relister"}[5m])) by (le, source))`,
			"{{source}}",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AssembleRate returns a timeseries panel showing assembled listing drafts
// per minute.
func AssembleRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Drafts / min").
		Description("Rate of listing drafts assembled per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`relister:listings:rate5m * 60`, "drafts/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
