package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, LookupsTotal)
	assert.NotNil(t, LookupDuration)
	assert.NotNil(t, CompsFetchedTotal)
	assert.NotNil(t, CompsCacheHitsTotal)
	assert.NotNil(t, CompsCacheMissesTotal)
	assert.NotNil(t, SuggestedPriceDistribution)
	assert.NotNil(t, DescribeDuration)
	assert.NotNil(t, DescribeFailuresTotal)
	assert.NotNil(t, ListingsAssembledTotal)
	assert.NotNil(t, BatchItemsTotal)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
	assert.NotNil(t, NotificationFailuresTotal)
}
