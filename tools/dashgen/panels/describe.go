package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DescribeDuration returns a timeseries panel showing p50 and p95 LLM
// description generation latencies.
func DescribeDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Describe Duration").
		Description("LLM description generation duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(relister_describe_duration_seconds_bucket{job="relister"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(relister_describe_duration_seconds_bucket{job="relister"}[5m])) by (le))`,
			"p95",
			"B",
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

// DescribeFailures returns a timeseries panel showing the description
// generation failure rate.
func DescribeFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Describe Failures").
		Description("LLM description generation failure rate per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`relister:describe_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
