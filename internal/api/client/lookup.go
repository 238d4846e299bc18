package client

import (
	"context"

	domain "github.com/calegrey/relister/pkg/types"
)

// LookupResponse is the result of a barcode lookup.
type LookupResponse struct {
	Classification domain.BarcodeClassification `json:"classification"`
	Metadata       *domain.ProductMetadata      `json:"metadata,omitempty"`
	Addon          *domain.AddonInference       `json:"addon,omitempty"`
}

// Lookup classifies a raw barcode string and resolves product metadata.
func (c *Client) Lookup(ctx context.Context, barcode string) (*LookupResponse, error) {
	var resp LookupResponse
	body := map[string]any{"barcode": barcode}
	if err := c.post(ctx, "/api/v1/lookup", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
