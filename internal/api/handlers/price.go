package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/internal/ebay"
	"github.com/calegrey/relister/internal/engine"
	"github.com/calegrey/relister/pkg/comps"
	domain "github.com/calegrey/relister/pkg/types"
)

// PriceHandler computes price statistics from live eBay comparables.
type PriceHandler struct {
	fetcher engine.CompsFetcher
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(f engine.CompsFetcher) *PriceHandler {
	return &PriceHandler{fetcher: f}
}

// PriceInput is the request body for the price endpoint.
type PriceInput struct {
	Body struct {
		Query           string  `json:"query" minLength:"1" doc:"Search query for comparable listings" example:"The Pragmatic Programmer"`
		IncludeShipping bool    `json:"include_shipping,omitempty" doc:"Add shipping cost to each comp total"`
		Quantile        float64 `json:"quantile,omitempty" minimum:"0" maximum:"1" doc:"Quantile of the trimmed set used as the suggested price (default median)"`
	}
}

// PriceOutput is the response body for the price endpoint.
type PriceOutput struct {
	Body struct {
		Query     string                 `json:"query" doc:"Query the comps were fetched for"`
		Stats     domain.PriceStatistics `json:"stats" doc:"Computed price statistics"`
		TotalSeen int                    `json:"total_seen" doc:"Listings inspected before filtering"`
		PagesUsed int                    `json:"pages_used" doc:"API pages consumed"`
	}
}

// Price fetches comparable listings and computes suggested pricing.
func (h *PriceHandler) Price(ctx context.Context, input *PriceInput) (*PriceOutput, error) {
	result, err := h.fetcher.Fetch(ctx, ebay.SearchRequest{Query: input.Body.Query})
	if err != nil {
		return nil, huma.Error502BadGateway("eBay API error: " + err.Error())
	}

	stats := comps.Compute(result.Comps, comps.Options{
		IncludeShipping:    input.Body.IncludeShipping,
		SuggestionQuantile: input.Body.Quantile,
	})

	out := &PriceOutput{}
	out.Body.Query = input.Body.Query
	out.Body.Stats = stats
	out.Body.TotalSeen = result.TotalSeen
	out.Body.PagesUsed = result.PagesUsed
	return out, nil
}

// RegisterPriceRoutes registers price endpoints with the Huma API.
func RegisterPriceRoutes(api huma.API, h *PriceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "price-comps",
		Method:      http.MethodPost,
		Path:        "/api/v1/price",
		Summary:     "Compute price statistics from live comps",
		Description: "Fetches comparable active listings from eBay, trims outliers, and returns the price distribution with suggested tiers.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Price)
}
