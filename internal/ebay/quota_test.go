package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/ebay"
	"github.com/calegrey/relister/internal/ebay/mocks"
)

func TestQuotaClient_BrowseQuota(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "buy", r.URL.Query().Get("api_context"))
		assert.Equal(t, "browse", r.URL.Query().Get("api_name"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"rateLimits": [
				{
					"apiContext": "buy",
					"apiName": "browse",
					"apiVersion": "v1",
					"resources": [
						{
							"name": "buy.browse",
							"rates": [
								{
									"count": 1200,
									"limit": 5000,
									"remaining": 3800,
									"reset": "2026-03-02T00:00:00.000Z",
									"timeWindow": 86400
								}
							]
						}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	mockTokens := mocks.NewMockTokenProvider(t)
	mockTokens.EXPECT().Token(mock.Anything).Return("test-token", nil)

	qc := ebay.NewQuotaClient(mockTokens, ebay.WithQuotaURL(srv.URL))

	state, err := qc.BrowseQuota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1200), state.Count)
	assert.Equal(t, int64(5000), state.Limit)
	assert.Equal(t, int64(3800), state.Remaining)
	assert.Equal(t, 24*time.Hour, state.TimeWindow)
	assert.Equal(t, 2026, state.ResetAt.Year())
}

func TestQuotaClient_BrowseQuota_ResourceMissing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rateLimits":[{"apiContext":"buy","apiName":"browse","resources":[{"name":"buy.deal","rates":[]}]}]}`))
	}))
	defer srv.Close()

	mockTokens := mocks.NewMockTokenProvider(t)
	mockTokens.EXPECT().Token(mock.Anything).Return("test-token", nil)

	qc := ebay.NewQuotaClient(mockTokens, ebay.WithQuotaURL(srv.URL))

	_, err := qc.BrowseQuota(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQuotaClient_BrowseQuota_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"message":"insufficient permissions"}]}`))
	}))
	defer srv.Close()

	mockTokens := mocks.NewMockTokenProvider(t)
	mockTokens.EXPECT().Token(mock.Anything).Return("test-token", nil)

	qc := ebay.NewQuotaClient(mockTokens, ebay.WithQuotaURL(srv.URL))

	_, err := qc.BrowseQuota(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
