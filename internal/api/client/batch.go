package client

import (
	"context"

	"github.com/calegrey/relister/internal/notify"
	domain "github.com/calegrey/relister/pkg/types"
)

// RunBatch processes a list of barcodes through the assembly pipeline
// and returns the per-item outcomes.
func (c *Client) RunBatch(
	ctx context.Context,
	barcodes []string,
	condition string,
	prefs *domain.TitlePreferences,
) (*notify.BatchSummary, error) {
	body := map[string]any{"barcodes": barcodes}
	if condition != "" {
		body["condition"] = condition
	}
	if prefs != nil {
		body["prefs"] = prefs
	}

	var summary notify.BatchSummary
	if err := c.post(ctx, "/api/v1/batch", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
