package client

import (
	"context"

	domain "github.com/calegrey/relister/pkg/types"
)

// TitleResponse is the result of a title build request.
type TitleResponse struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
}

// BuildTitle assembles a listing title from structured item fields.
func (c *Client) BuildTitle(
	ctx context.Context,
	item domain.ItemFields,
	prefs *domain.TitlePreferences,
) (*TitleResponse, error) {
	body := map[string]any{"item": item}
	if prefs != nil {
		body["prefs"] = prefs
	}

	var resp TitleResponse
	if err := c.post(ctx, "/api/v1/title", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
