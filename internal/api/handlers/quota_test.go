package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/api/handlers"
	"github.com/calegrey/relister/internal/ebay"
)

type stubQuotaSource struct {
	state *ebay.QuotaState
	err   error
}

func (s *stubQuotaSource) BrowseQuota(_ context.Context) (*ebay.QuotaState, error) {
	return s.state, s.err
}

func TestQuotaHandler_GetQuota(t *testing.T) {
	t.Parallel()

	rl := ebay.NewRateLimiter(100, 10, 5000)
	for range 3 {
		require.NoError(t, rl.Wait(context.Background()))
	}

	h := handlers.NewQuotaHandler(rl, nil)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"daily_limit":5000`)
	assert.Contains(t, body, `"daily_used":3`)
	assert.Contains(t, body, `"remaining":4997`)
	assert.NotContains(t, body, `"live"`)
}

func TestQuotaHandler_GetQuota_LiveSource(t *testing.T) {
	t.Parallel()

	rl := ebay.NewRateLimiter(100, 10, 5000)
	source := &stubQuotaSource{state: &ebay.QuotaState{
		Limit:     5000,
		Remaining: 4800,
		ResetAt:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}}

	h := handlers.NewQuotaHandler(rl, source)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"live"`)
	assert.Contains(t, body, `"remaining":4800`)
}

func TestQuotaHandler_GetQuota_LiveSourceFails(t *testing.T) {
	t.Parallel()

	rl := ebay.NewRateLimiter(100, 10, 5000)
	source := &stubQuotaSource{err: assert.AnError}

	h := handlers.NewQuotaHandler(rl, source)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), `"live"`)
}

func TestQuotaHandler_GetQuota_NoLimiter(t *testing.T) {
	t.Parallel()

	h := handlers.NewQuotaHandler(nil, nil)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"daily_limit":0`)
}
