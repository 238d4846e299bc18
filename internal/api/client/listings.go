package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/calegrey/relister/pkg/types"
)

// ListingsResponse wraps a paginated drafts response.
type ListingsResponse struct {
	Drafts []domain.ListingDraft `json:"drafts"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// ListListingsParams defines query parameters for draft queries.
type ListListingsParams struct {
	Kind    string
	Search  string
	Limit   int
	Offset  int
	OrderBy string
}

// CreateListing runs the full assembly pipeline for one barcode and
// returns the persisted draft.
func (c *Client) CreateListing(
	ctx context.Context,
	barcode, condition string,
	prefs *domain.TitlePreferences,
) (*domain.ListingDraft, error) {
	body := map[string]any{"barcode": barcode}
	if condition != "" {
		body["condition"] = condition
	}
	if prefs != nil {
		body["prefs"] = prefs
	}

	var draft domain.ListingDraft
	if err := c.post(ctx, "/api/v1/listings", body, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListListings returns drafts matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Kind != "" {
		q.Set("kind", params.Kind)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single draft by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.ListingDraft, error) {
	var draft domain.ListingDraft
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", id), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteListing removes a draft by ID.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/listings/%s", id), nil)
}
