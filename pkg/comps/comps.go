// Package comps turns raw comparable-listing prices into cleaned,
// outlier-trimmed distributions and suggested resale prices.
package comps

import (
	"math"
	"sort"

	domain "github.com/calegrey/relister/pkg/types"
)

// DefaultFallbackPrice is suggested when no valid comps are found.
const DefaultFallbackPrice = 7.99

// Tier quantiles over the trimmed distribution.
const (
	quantileFastSale    = 0.30
	quantileFair        = 0.50
	quantileCompetitive = 0.60
	quantileStretch     = 0.70
)

// Options configures the statistics computation.
type Options struct {
	IncludeShipping bool
	// SuggestionQuantile picks which quantile of the trimmed set
	// becomes the headline suggested price. Defaults to the median.
	SuggestionQuantile float64
	// FallbackPrice is used when the comps set is empty.
	// Defaults to DefaultFallbackPrice.
	FallbackPrice float64
}

// Compute converts comps into summary statistics and a suggested price.
// Non-finite totals are discarded; an empty set yields Count 0 with the
// fallback suggested price and no distribution.
func Compute(items []domain.PriceComp, opts Options) domain.PriceStatistics {
	if opts.SuggestionQuantile <= 0 || opts.SuggestionQuantile >= 1 {
		opts.SuggestionQuantile = quantileFair
	}
	if opts.FallbackPrice == 0 {
		opts.FallbackPrice = DefaultFallbackPrice
	}

	totals := make([]float64, 0, len(items))
	for i := range items {
		t := items[i].Total(opts.IncludeShipping)
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			continue
		}
		totals = append(totals, t)
	}

	if len(totals) == 0 {
		return domain.PriceStatistics{
			Count:          0,
			SuggestedPrice: opts.FallbackPrice,
		}
	}

	sort.Float64s(totals)

	dist := distribution(totals)
	trimmed := trimOutliers(totals)

	stats := domain.PriceStatistics{
		Count:          len(totals),
		Distribution:   dist,
		SuggestedPrice: CeilTo99(quantile(trimmed, opts.SuggestionQuantile)),
		Suggestions: &domain.Suggestions{
			FastSale:    CeilTo99(quantile(trimmed, quantileFastSale)),
			Fair:        CeilTo99(quantile(trimmed, quantileFair)),
			Competitive: CeilTo99(quantile(trimmed, quantileCompetitive)),
			Stretch:     CeilTo99(quantile(trimmed, quantileStretch)),
		},
	}

	return stats
}

// distribution summarizes a sorted, non-empty slice.
func distribution(sorted []float64) *domain.Distribution {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return &domain.Distribution{
		Average: round2(sum / float64(len(sorted))),
		Median:  round2(quantile(sorted, 0.5)),
		Min:     round2(sorted[0]),
		Max:     round2(sorted[len(sorted)-1]),
		P10:     round2(quantile(sorted, 0.10)),
		P25:     round2(quantile(sorted, 0.25)),
		P50:     round2(quantile(sorted, 0.50)),
		P75:     round2(quantile(sorted, 0.75)),
		P90:     round2(quantile(sorted, 0.90)),
	}
}

// quantile linearly interpolates Q(p) over a sorted slice. A single
// value is every quantile of itself.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := float64(n-1) * p
	base := int(math.Floor(pos))
	rest := pos - float64(base)

	if base >= n-1 {
		return sorted[n-1]
	}
	return sorted[base] + rest*(sorted[base+1]-sorted[base])
}

// trimOutliers drops values outside [Q1-1.5*IQR, Q3+1.5*IQR]. If the
// fence removes everything, the untrimmed set is returned so small
// samples still price.
func trimOutliers(sorted []float64) []float64 {
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - 1.5*iqr
	hi := q3 + 1.5*iqr

	trimmed := make([]float64, 0, len(sorted))
	for _, v := range sorted {
		if v >= lo && v <= hi {
			trimmed = append(trimmed, v)
		}
	}

	if len(trimmed) == 0 {
		return sorted
	}
	return trimmed
}

// CeilTo99 rounds a price up to the nearest .99, with a 0.99 floor.
func CeilTo99(x float64) float64 {
	v := math.Floor(x) + 0.99
	return math.Max(0.99, v)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
