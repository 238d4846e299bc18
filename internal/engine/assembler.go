// Package engine orchestrates the listing pipeline: barcode
// classification, metadata resolution, price comps, title building,
// and description generation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/calegrey/relister/internal/ebay"
	"github.com/calegrey/relister/internal/metrics"
	"github.com/calegrey/relister/internal/store"
	"github.com/calegrey/relister/pkg/barcode"
	"github.com/calegrey/relister/pkg/comps"
	"github.com/calegrey/relister/pkg/magazine"
	"github.com/calegrey/relister/pkg/title"
	domain "github.com/calegrey/relister/pkg/types"
)

const defaultCacheTTL = 6 * time.Hour

// ErrUnusableBarcode is returned when a scanned string has no digits to
// work with.
var ErrUnusableBarcode = errors.New("unusable barcode")

// Resolver maps a classified barcode to product metadata.
type Resolver interface {
	Resolve(ctx context.Context, bc domain.BarcodeClassification) (*domain.ProductMetadata, error)
}

// CompsFetcher collects comparable listings for a search query.
type CompsFetcher interface {
	Fetch(ctx context.Context, req ebay.SearchRequest) (*ebay.FetchResult, error)
}

// Describer generates a listing description from resolved metadata.
type Describer interface {
	Generate(
		ctx context.Context,
		meta *domain.ProductMetadata,
		addon *domain.AddonInference,
		condition string,
		price float64,
	) (string, error)
}

// Assembler builds listing drafts end to end. Every enrichment stage
// degrades independently: a miss or failure in metadata, comps, or
// description still yields a saveable draft.
type Assembler struct {
	store     store.Store
	resolver  Resolver
	comps     CompsFetcher
	describer Describer
	log       *slog.Logger

	includeShipping    bool
	suggestionQuantile float64
	fallbackPrice      float64
	cacheTTL           time.Duration
}

// NewAssembler creates a new Assembler with injected dependencies.
// comps and describer may be nil; the corresponding stages are skipped.
func NewAssembler(
	s store.Store,
	r Resolver,
	c CompsFetcher,
	d Describer,
	opts ...AssemblerOption,
) *Assembler {
	a := &Assembler{
		store:     s,
		resolver:  r,
		comps:     c,
		describer: d,
		log:       slog.Default(),
		cacheTTL:  defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AssemblerOption configures the Assembler.
type AssemblerOption func(*Assembler)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) AssemblerOption {
	return func(a *Assembler) {
		a.log = l
	}
}

// WithIncludeShipping includes shipping cost in comp totals.
func WithIncludeShipping(include bool) AssemblerOption {
	return func(a *Assembler) {
		a.includeShipping = include
	}
}

// WithSuggestionQuantile sets which quantile of the trimmed comps set
// becomes the suggested price.
func WithSuggestionQuantile(q float64) AssemblerOption {
	return func(a *Assembler) {
		a.suggestionQuantile = q
	}
}

// WithFallbackPrice sets the price suggested when no comps are found.
func WithFallbackPrice(p float64) AssemblerOption {
	return func(a *Assembler) {
		a.fallbackPrice = p
	}
}

// WithCacheTTL sets how long computed comps statistics stay cached.
func WithCacheTTL(ttl time.Duration) AssemblerOption {
	return func(a *Assembler) {
		a.cacheTTL = ttl
	}
}

// AssembleRequest carries the inputs for a single draft.
type AssembleRequest struct {
	Barcode   string
	Condition string
	Prefs     *domain.TitlePreferences
}

// Assemble runs the full pipeline for one barcode and persists the
// resulting draft. Only an unusable barcode or a storage failure is an
// error; every enrichment stage soft-fails.
func (a *Assembler) Assemble(
	ctx context.Context,
	req AssembleRequest,
) (*domain.ListingDraft, error) {
	bc := barcode.Normalize(req.Barcode)
	if bc.Code == "" {
		return nil, fmt.Errorf("%w: no digits in %q", ErrUnusableBarcode, req.Barcode)
	}

	meta, err := a.resolver.Resolve(ctx, bc)
	if err != nil {
		a.log.Warn("metadata resolution failed", "barcode", bc.Code, "error", err)
		meta = nil
	}

	addon := InferAddon(bc, meta)
	stats := a.priceStats(ctx, bc, meta)

	listingTitle := title.Build(itemFields(bc, meta, addon), req.Prefs)

	description := a.describe(ctx, meta, addon, req.Condition, stats.SuggestedPrice)

	draft := &domain.ListingDraft{
		ID:          uuid.NewString(),
		Barcode:     bc.Code,
		BarcodeKind: bc.Kind,
		Metadata:    meta,
		Addon:       addon,
		Stats:       stats,
		Title:       listingTitle,
		Description: description,
		Price:       stats.SuggestedPrice,
	}

	if err := a.store.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}

	metrics.ListingsAssembledTotal.Inc()
	a.log.Info("draft assembled",
		"id", draft.ID,
		"barcode", bc.Code,
		"kind", bc.Kind,
		"comps", stats.Count,
		"price", stats.SuggestedPrice,
	)

	return draft, nil
}

// InferAddon decodes supplemental digits and backfills month/year from
// metadata text for magazine-typed items. Non-magazine items without an
// add-on carry no inference.
func InferAddon(
	bc domain.BarcodeClassification,
	meta *domain.ProductMetadata,
) *domain.AddonInference {
	isMagazine := bc.Kind == domain.BarcodeMagazine ||
		(meta != nil && meta.Type == domain.ProductMagazine)

	if bc.Addon == "" && !isMagazine {
		return nil
	}

	inf := magazine.ParseAddon(bc.Addon)
	if isMagazine && meta != nil {
		magazine.Enrich(&inf, meta.Title, meta.Description)
	}
	return &inf
}

// priceStats returns comps statistics for the item, consulting the
// cache first. A fetch failure yields fallback statistics and is never
// cached.
func (a *Assembler) priceStats(
	ctx context.Context,
	bc domain.BarcodeClassification,
	meta *domain.ProductMetadata,
) *domain.PriceStatistics {
	query := compsQuery(bc, meta)
	cacheKey := "comps:" + query

	cached, err := a.store.GetCachedComps(ctx, cacheKey)
	if err == nil {
		metrics.CompsCacheHitsTotal.Inc()
		return cached
	}
	if !errors.Is(err, store.ErrNotFound) {
		a.log.Warn("comps cache read failed", "key", cacheKey, "error", err)
	}
	metrics.CompsCacheMissesTotal.Inc()

	opts := comps.Options{
		IncludeShipping:    a.includeShipping,
		SuggestionQuantile: a.suggestionQuantile,
		FallbackPrice:      a.fallbackPrice,
	}

	if a.comps == nil {
		stats := comps.Compute(nil, opts)
		return &stats
	}

	result, err := a.comps.Fetch(ctx, ebay.SearchRequest{Query: query})
	if err != nil {
		a.log.Warn("comps fetch failed", "query", query, "error", err)
		stats := comps.Compute(nil, opts)
		return &stats
	}
	metrics.CompsFetchedTotal.Add(float64(len(result.Comps)))

	stats := comps.Compute(result.Comps, opts)
	metrics.SuggestedPriceDistribution.Observe(stats.SuggestedPrice)

	if err := a.store.PutCachedComps(ctx, cacheKey, &stats, a.cacheTTL); err != nil {
		a.log.Warn("comps cache write failed", "key", cacheKey, "error", err)
	}

	return &stats
}

func (a *Assembler) describe(
	ctx context.Context,
	meta *domain.ProductMetadata,
	addon *domain.AddonInference,
	condition string,
	price float64,
) string {
	if a.describer == nil {
		return ""
	}

	description, err := a.describer.Generate(ctx, meta, addon, condition, price)
	if err != nil {
		a.log.Warn("description generation failed", "error", err)
		return ""
	}
	return description
}

// compsQuery picks the search query for comparable listings: the
// resolved title when one exists, otherwise the bare code.
func compsQuery(
	bc domain.BarcodeClassification,
	meta *domain.ProductMetadata,
) string {
	if meta == nil || meta.Title == "" {
		return bc.Code
	}
	if meta.Type == domain.ProductMagazine {
		return meta.Title + " magazine"
	}
	return meta.Title
}

// itemFields maps resolved metadata and add-on inference onto the title
// builder's input.
func itemFields(
	bc domain.BarcodeClassification,
	meta *domain.ProductMetadata,
	addon *domain.AddonInference,
) domain.ItemFields {
	fields := domain.ItemFields{
		IsMagazine: bc.Kind == domain.BarcodeMagazine,
		// Unresolved items fall back to the bare code so the draft
		// title identifies the item instead of a placeholder.
		Title: bc.Code,
	}

	if meta != nil {
		if meta.Title != "" {
			fields.Title = meta.Title
		}
		fields.Publisher = meta.Publisher
		fields.ISBN = meta.ISBN13
		if len(meta.Authors) > 0 {
			fields.Author = meta.Authors[0]
		}
		if len(meta.Categories) > 0 {
			fields.Genre = meta.Categories[0]
		}
		if meta.PublicationYear > 0 {
			fields.Year = strconv.Itoa(meta.PublicationYear)
		}
		if meta.Type == domain.ProductMagazine {
			fields.IsMagazine = true
		}
	}

	if addon != nil {
		fields.IssueNumber = addon.Issue
		fields.IssueDate = issueDate(addon)
	}

	return fields
}

func issueDate(addon *domain.AddonInference) string {
	switch {
	case addon.Month != "" && addon.Year > 0:
		return addon.Month + " " + strconv.Itoa(addon.Year)
	case addon.Month != "":
		return addon.Month
	case addon.Year > 0:
		return strconv.Itoa(addon.Year)
	}
	return ""
}
