// Package googlebooks looks up book metadata via the Google Books
// volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domain "github.com/calegrey/relister/pkg/types"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

// Client queries the Google Books volumes API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default volumes endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAPIKey sets an optional API key; anonymous requests work but are
// throttled harder.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Google Books client.
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

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string   `json:"title"`
	Subtitle            string   `json:"subtitle"`
	Authors             []string `json:"authors"`
	Publisher           string   `json:"publisher"`
	PublishedDate       string   `json:"publishedDate"`
	Description         string   `json:"description"`
	Categories          []string `json:"categories"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
	ImageLinks struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

// LookupISBN fetches book metadata for a 13-digit ISBN. A valid
// response with zero items returns (nil, nil).
func (c *Client) LookupISBN(ctx context.Context, isbn13 string) (*domain.ProductMetadata, error) {
	params := url.Values{}
	params.Set("q", "isbn:"+isbn13)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating volumes request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing volumes request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading volumes response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"Google Books API error (status %d): %s", resp.StatusCode, string(body),
		)
	}

	var apiResp volumesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing volumes response: %w", err)
	}

	if apiResp.TotalItems == 0 || len(apiResp.Items) == 0 {
		return nil, nil
	}

	return normalize(&apiResp.Items[0].VolumeInfo, isbn13), nil
}

// normalize maps a volumeInfo onto ProductMetadata. Missing or
// malformed fields stay at their zero value.
func normalize(vi *volumeInfo, isbn13 string) *domain.ProductMetadata {
	meta := &domain.ProductMetadata{
		Type:        domain.ProductBook,
		Title:       vi.Title,
		Authors:     vi.Authors,
		Publisher:   vi.Publisher,
		Description: vi.Description,
		Categories:  vi.Categories,
		CoverURL:    vi.ImageLinks.Thumbnail,
		ISBN13:      isbn13,
		Source:      "googlebooks",
	}

	if vi.Subtitle != "" && vi.Title != "" {
		meta.Title = vi.Title + ": " + vi.Subtitle
	}

	// publishedDate arrives as "2004", "2004-03" or "2004-03-01".
	if len(vi.PublishedDate) >= 4 {
		if year, err := strconv.Atoi(vi.PublishedDate[:4]); err == nil {
			meta.PublicationYear = year
		}
	}

	for _, id := range vi.IndustryIdentifiers {
		if id.Type == "ISBN_13" && id.Identifier != "" {
			meta.ISBN13 = id.Identifier
			break
		}
	}

	return meta
}
