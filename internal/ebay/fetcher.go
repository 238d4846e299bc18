package ebay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	domain "github.com/calegrey/relister/pkg/types"
)

const (
	defaultPageSize = 50
	defaultMaxPages = 4
	defaultMaxComps = 100
)

// Fetcher pages through eBay search results and accumulates price comps.
type Fetcher struct {
	client   Client
	logger   *log.Logger
	pageSize int
	maxPages int
	maxComps int
}

// FetcherOption configures the Fetcher.
type FetcherOption func(*Fetcher)

// WithPageSize overrides the default page size.
func WithPageSize(size int) FetcherOption {
	return func(f *Fetcher) {
		f.pageSize = size
	}
}

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) FetcherOption {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithMaxComps caps the total number of comps collected.
func WithMaxComps(n int) FetcherOption {
	return func(f *Fetcher) {
		f.maxComps = n
	}
}

// WithFetcherLogger sets the logger.
func WithFetcherLogger(l *log.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client Client, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:   client,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		maxComps: defaultMaxComps,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchResult holds the result of a paginated comps fetch.
type FetchResult struct {
	Comps     []domain.PriceComp
	TotalSeen int
	PagesUsed int
	StoppedAt string // "max_comps", "max_pages", "no_more_results"
}

// Fetch collects comps for a search query, stopping when:
// - The comps cap is reached
// - Max pages reached
// - No more results from eBay
func (f *Fetcher) Fetch(ctx context.Context, req SearchRequest) (*FetchResult, error) {
	req.Limit = f.pageSize

	result := &FetchResult{}

	for page := range f.maxPages {
		req.Offset = page * f.pageSize

		resp, err := f.client.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("searching page %d: %w", page, err)
		}

		result.PagesUsed++

		if len(resp.Items) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		result.TotalSeen += len(resp.Items)

		comps := ToComps(resp.Items)
		if dropped := len(resp.Items) - len(comps); dropped > 0 && f.logger != nil {
			f.logger.Warn("dropped items with unparseable prices",
				"query", req.Query, "page", page, "dropped", dropped)
		}

		for i := range comps {
			result.Comps = append(result.Comps, comps[i])
			if len(result.Comps) >= f.maxComps {
				result.StoppedAt = "max_comps"
				return result, nil
			}
		}

		if !resp.HasMore {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
