package comps_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/pkg/comps"
	domain "github.com/calegrey/relister/pkg/types"
)

func mkComps(prices ...float64) []domain.PriceComp {
	items := make([]domain.PriceComp, 0, len(prices))
	for _, p := range prices {
		items = append(items, domain.PriceComp{Price: p})
	}
	return items
}

func TestCompute_Empty(t *testing.T) {
	t.Parallel()

	stats := comps.Compute(nil, comps.Options{})
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, comps.DefaultFallbackPrice, stats.SuggestedPrice)
	assert.Nil(t, stats.Distribution)
	assert.Nil(t, stats.Suggestions)
	assert.False(t, math.IsNaN(stats.SuggestedPrice))
}

func TestCompute_CustomFallback(t *testing.T) {
	t.Parallel()

	stats := comps.Compute(nil, comps.Options{FallbackPrice: 4.99})
	assert.Equal(t, 4.99, stats.SuggestedPrice)
}

func TestCompute_DiscardsNonFinite(t *testing.T) {
	t.Parallel()

	items := []domain.PriceComp{
		{Price: math.NaN()},
		{Price: math.Inf(1)},
		{Price: -3},
		{Price: 12},
	}
	stats := comps.Compute(items, comps.Options{})
	assert.Equal(t, 1, stats.Count)
	require.NotNil(t, stats.Distribution)
	assert.Equal(t, 12.0, stats.Distribution.Median)
}

func TestCompute_SingleValue(t *testing.T) {
	t.Parallel()

	stats := comps.Compute(mkComps(25), comps.Options{})
	require.NotNil(t, stats.Distribution)
	d := stats.Distribution
	// Every quantile of a single value is that value.
	assert.Equal(t, 25.0, d.P10)
	assert.Equal(t, 25.0, d.P25)
	assert.Equal(t, 25.0, d.Median)
	assert.Equal(t, 25.0, d.P75)
	assert.Equal(t, 25.0, d.P90)
	assert.Equal(t, 25.0, d.Min)
	assert.Equal(t, 25.0, d.Max)
	assert.Equal(t, 25.99, stats.SuggestedPrice)
}

func TestCompute_QuantileMonotonicity(t *testing.T) {
	t.Parallel()

	sets := [][]float64{
		{1},
		{3, 9},
		{5, 10, 10, 15, 1000},
		{2.5, 7.25, 7.25, 8, 9.99, 14, 22, 31},
	}

	for _, prices := range sets {
		stats := comps.Compute(mkComps(prices...), comps.Options{})
		require.NotNil(t, stats.Distribution)
		d := stats.Distribution
		assert.LessOrEqual(t, d.P10, d.P25)
		assert.LessOrEqual(t, d.P25, d.P50)
		assert.LessOrEqual(t, d.P50, d.P75)
		assert.LessOrEqual(t, d.P75, d.P90)
	}
}

func TestCompute_IQRTrimsOutlier(t *testing.T) {
	t.Parallel()

	// 1000 sits far outside the IQR fence of [5,10,10,15]; the fair
	// tier prices off the trimmed median of 10.
	stats := comps.Compute(mkComps(5, 10, 10, 15, 1000), comps.Options{})
	require.NotNil(t, stats.Suggestions)
	assert.Equal(t, 10.99, stats.Suggestions.Fair)
	// The untrimmed distribution still reports the raw max.
	assert.Equal(t, 1000.0, stats.Distribution.Max)
}

func TestCompute_TierOrdering(t *testing.T) {
	t.Parallel()

	stats := comps.Compute(
		mkComps(4, 8, 9, 12, 15, 18, 21, 30),
		comps.Options{},
	)
	require.NotNil(t, stats.Suggestions)
	s := stats.Suggestions
	assert.LessOrEqual(t, s.FastSale, s.Fair)
	assert.LessOrEqual(t, s.Fair, s.Competitive)
	assert.LessOrEqual(t, s.Competitive, s.Stretch)
}

func TestCompute_IncludeShipping(t *testing.T) {
	t.Parallel()

	ship := 5.0
	items := []domain.PriceComp{
		{Price: 10, ShippingCost: &ship},
		{Price: 10},
	}

	with := comps.Compute(items, comps.Options{IncludeShipping: true})
	without := comps.Compute(items, comps.Options{})

	assert.Equal(t, 12.5, with.Distribution.Average)
	assert.Equal(t, 10.0, without.Distribution.Average)
}

func TestCompute_TrimGuardSmallSets(t *testing.T) {
	t.Parallel()

	// Two points can never fence each other out entirely.
	stats := comps.Compute(mkComps(1, 100), comps.Options{})
	assert.Equal(t, 2, stats.Count)
	require.NotNil(t, stats.Suggestions)
	assert.Positive(t, stats.Suggestions.Fair)
}

func TestCeilTo99(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0.99},
		{0.5, 0.99},
		{1, 1.99},
		{7.01, 7.99},
		{7.99, 7.99},
		{10, 10.99},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, comps.CeilTo99(tt.in), 0.0001)
	}
}
