// Package openlibrary looks up book metadata via the Open Library
// books API.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/calegrey/relister/pkg/types"
)

const (
	defaultBaseURL    = "https://openlibrary.org"
	defaultRPS        = 2
	defaultMaxRetries = 2
)

// Client queries the Open Library books API. Requests are rate-limited
// and retried with exponential backoff on 429 and 5xx responses.
type Client struct {
	baseURL    string
	userAgent  string
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default Open Library endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header; Open Library asks clients
// to identify themselves.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRPS overrides the request rate limit.
func WithRPS(rps int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1)
	}
}

// WithMaxRetries overrides the retry count for transient failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// NewClient creates a new Open Library client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  "relister",
		client:     &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second/defaultRPS), 1),
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bookDetails matches api/books?jscmd=data entries.
type bookDetails struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	PublishDate string `json:"publish_date"`
	Publishers  []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Subjects []struct {
		Name string `json:"name"`
	} `json:"subjects"`
	Cover struct {
		Large string `json:"large"`
	} `json:"cover"`
	Notes string `json:"notes"`
}

// LookupISBN fetches book metadata for a 13-digit ISBN via the bibkeys
// endpoint. An empty response returns (nil, nil).
func (c *Client) LookupISBN(ctx context.Context, isbn13 string) (*domain.ProductMetadata, error) {
	bibkey := "ISBN:" + isbn13

	params := url.Values{}
	params.Set("bibkeys", bibkey)
	params.Set("jscmd", "data")
	params.Set("format", "json")

	var res map[string]bookDetails
	if err := c.get(ctx, c.baseURL+"/api/books?"+params.Encode(), &res); err != nil {
		return nil, err
	}

	details, ok := res[bibkey]
	if !ok {
		return nil, nil
	}

	return normalize(&details, isbn13), nil
}

// normalize maps Open Library book details onto ProductMetadata.
// Missing or malformed fields stay at their zero value.
func normalize(d *bookDetails, isbn13 string) *domain.ProductMetadata {
	meta := &domain.ProductMetadata{
		Type:        domain.ProductBook,
		Title:       d.Title,
		Description: d.Notes,
		CoverURL:    d.Cover.Large,
		ISBN13:      isbn13,
		Source:      "openlibrary",
	}

	if d.Subtitle != "" && d.Title != "" {
		meta.Title = d.Title + ": " + d.Subtitle
	}

	for _, a := range d.Authors {
		if a.Name != "" {
			meta.Authors = append(meta.Authors, a.Name)
		}
	}

	if len(d.Publishers) > 0 {
		meta.Publisher = d.Publishers[0].Name
	}

	for _, s := range d.Subjects {
		if s.Name != "" {
			meta.Categories = append(meta.Categories, s.Name)
		}
	}

	// publish_date arrives free-form: "2004", "March 2004", "Mar 1, 2004".
	meta.PublicationYear = parseYear(d.PublishDate)

	return meta
}

func parseYear(s string) int {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	for _, f := range fields {
		if len(f) != 4 {
			continue
		}
		if year, err := strconv.Atoi(f); err == nil && year >= 1000 && year <= 2999 {
			return year
		}
	}
	return 0
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("Open Library API error (status %d)", resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = err
				continue
			}
			return err
		}

		if err := json.Unmarshal(body, target); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
