package client

import (
	"context"

	domain "github.com/calegrey/relister/pkg/types"
)

// PriceRequest defines the parameters for a price comps request.
type PriceRequest struct {
	Query           string  `json:"query"`
	IncludeShipping bool    `json:"include_shipping,omitempty"`
	Quantile        float64 `json:"quantile,omitempty"`
}

// PriceResponse is the result of a price comps request.
type PriceResponse struct {
	Query     string                 `json:"query"`
	Stats     domain.PriceStatistics `json:"stats"`
	TotalSeen int                    `json:"total_seen"`
	PagesUsed int                    `json:"pages_used"`
}

// Price fetches comparable listings for the query and returns the
// computed price statistics.
func (c *Client) Price(ctx context.Context, req *PriceRequest) (*PriceResponse, error) {
	var resp PriceResponse
	if err := c.post(ctx, "/api/v1/price", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
