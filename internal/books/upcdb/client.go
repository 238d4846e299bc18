// Package upcdb looks up generic product metadata by UPC/EAN code.
package upcdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domain "github.com/calegrey/relister/pkg/types"
)

const defaultBaseURL = "https://api.upcitemdb.com/prod/trial/lookup"

// Client queries a upcitemdb-style product lookup API.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default lookup endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new UPC lookup client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type lookupResponse struct {
	Code  string       `json:"code"`
	Total int          `json:"total"`
	Items []lookupItem `json:"items"`
}

type lookupItem struct {
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

// LookupCode fetches product metadata for a 12- or 13-digit code. A
// valid response with no items returns (nil, nil).
func (c *Client) LookupCode(ctx context.Context, code string) (*domain.ProductMetadata, error) {
	params := url.Values{}
	params.Set("upc", code)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating lookup request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing lookup request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading lookup response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"UPC lookup API error (status %d): %s", resp.StatusCode, string(body),
		)
	}

	var apiResp lookupResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing lookup response: %w", err)
	}

	if apiResp.Total == 0 || len(apiResp.Items) == 0 {
		return nil, nil
	}

	return normalize(&apiResp.Items[0]), nil
}

// normalize maps the first lookup item onto ProductMetadata. Missing
// fields stay at their zero value; Type is left for the caller since
// source classification is unreliable for periodicals.
func normalize(item *lookupItem) *domain.ProductMetadata {
	meta := &domain.ProductMetadata{
		Type:        domain.ProductGeneric,
		Title:       item.Title,
		Publisher:   item.Brand,
		Description: item.Description,
		Source:      "upcdb",
	}

	// Category arrives as a breadcrumb string such as
	// "Media > Books > Print Books".
	for _, part := range strings.Split(item.Category, ">") {
		if p := strings.TrimSpace(part); p != "" {
			meta.Categories = append(meta.Categories, p)
		}
	}

	if len(item.Images) > 0 {
		meta.CoverURL = item.Images[0]
	}

	return meta
}
