// Package ebay provides an eBay Browse API client for fetching
// comparable listings, abstracted behind interfaces for testability.
package ebay

import (
	"context"
)

// SearchRequest defines the parameters for an eBay comps search.
type SearchRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Sort       string // e.g. "price"
	Filters    map[string]string
}

// SearchResponse holds one page of eBay search results.
type SearchResponse struct {
	Items   []ItemSummary
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// Client defines the interface for querying the eBay marketplace.
type Client interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
