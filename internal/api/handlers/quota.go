package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/internal/ebay"
)

// QuotaSource queries eBay for authoritative rate limit state.
type QuotaSource interface {
	BrowseQuota(ctx context.Context) (*ebay.QuotaState, error)
}

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	rl     *ebay.RateLimiter
	source QuotaSource
}

// NewQuotaHandler creates a new QuotaHandler. Both arguments may be
// nil; the endpoint then reports zeroes.
func NewQuotaHandler(rl *ebay.RateLimiter, source QuotaSource) *QuotaHandler {
	return &QuotaHandler{rl: rl, source: source}
}

// LiveQuota is the quota state reported by the eBay Analytics API.
type LiveQuota struct {
	Limit     int64     `json:"limit"     doc:"Daily limit reported by eBay"`
	Remaining int64     `json:"remaining" doc:"Remaining calls reported by eBay"`
	ResetAt   time.Time `json:"reset_at"  doc:"Window reset time reported by eBay"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64      `json:"daily_limit" example:"5000"                 doc:"Configured daily API call limit"`
		DailyUsed  int64      `json:"daily_used"  example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining  int64      `json:"remaining"   example:"4858"                 doc:"API calls remaining in the current window"`
		ResetAt    time.Time  `json:"reset_at"    example:"2026-08-28T14:30:00Z" doc:"When the current 24-hour window expires"`
		Live       *LiveQuota `json:"live,omitempty" doc:"Authoritative state from the eBay Analytics API, null when unavailable"`
	}
}

// GetQuota returns the current eBay API quota status. The local counts
// always come from the in-process limiter; the live section is filled
// from the Analytics API when a source is configured and reachable.
func (h *QuotaHandler) GetQuota(ctx context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}

	if h.rl != nil {
		resp.Body.DailyLimit = h.rl.MaxDaily()
		resp.Body.DailyUsed = h.rl.DailyCount()
		resp.Body.Remaining = h.rl.Remaining()
		resp.Body.ResetAt = h.rl.ResetAt()
	}

	if h.source != nil {
		if state, err := h.source.BrowseQuota(ctx); err == nil {
			resp.Body.Live = &LiveQuota{
				Limit:     state.Limit,
				Remaining: state.Remaining,
				ResetAt:   state.ResetAt,
			}
		}
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the current daily API call usage, remaining quota, and window reset time, with live state from the eBay Analytics API when available.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
