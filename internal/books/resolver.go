// Package books resolves classified barcodes into product metadata by
// querying external bibliographic and product sources in order.
package books

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calegrey/relister/internal/metrics"
	"github.com/calegrey/relister/pkg/barcode"
	"github.com/calegrey/relister/pkg/magazine"
	domain "github.com/calegrey/relister/pkg/types"
)

// BookSource looks up book metadata by 13-digit ISBN. A miss is
// (nil, nil); errors are reserved for transport and parse failures.
type BookSource interface {
	LookupISBN(ctx context.Context, isbn13 string) (*domain.ProductMetadata, error)
}

// ProductSource looks up generic product metadata by UPC/EAN code.
type ProductSource interface {
	LookupCode(ctx context.Context, code string) (*domain.ProductMetadata, error)
}

// Resolver dispatches a barcode classification to the right source
// chain. Source failures are swallowed and treated as misses so a dead
// upstream never blocks the manual-entry path.
type Resolver struct {
	primary  BookSource
	fallback BookSource
	products ProductSource
	logger   *log.Logger
}

// ResolverOption configures the Resolver.
type ResolverOption func(*Resolver)

// WithFallback sets a second book source tried when the primary misses.
func WithFallback(s BookSource) ResolverOption {
	return func(r *Resolver) {
		r.fallback = s
	}
}

// WithProductSource sets the generic UPC/EAN lookup source.
func WithProductSource(s ProductSource) ResolverOption {
	return func(r *Resolver) {
		r.products = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a Resolver with the given primary book source.
func NewResolver(primary BookSource, opts ...ResolverOption) *Resolver {
	r := &Resolver{primary: primary}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a barcode classification to product metadata. It returns
// (nil, nil) when every source misses or fails; the caller decides how
// to degrade.
func (r *Resolver) Resolve(
	ctx context.Context,
	bc domain.BarcodeClassification,
) (*domain.ProductMetadata, error) {
	start := time.Now()
	defer func() {
		metrics.LookupDuration.Observe(time.Since(start).Seconds())
	}()

	switch bc.Kind {
	case domain.BarcodeISBN13:
		return r.resolveBook(ctx, bc.Code), nil

	case domain.BarcodeISBN10:
		return r.resolveBook(ctx, barcode.ISBN10To13(bc.Code)), nil

	case domain.BarcodeMagazine:
		meta := r.resolveProduct(ctx, bc.Code)
		if meta == nil {
			return nil, nil
		}
		// The 977 prefix already identifies a periodical; source
		// classification is ignored.
		meta.Type = domain.ProductMagazine
		return meta, nil

	case domain.BarcodeUPCA, domain.BarcodeUnknown:
		meta := r.resolveProduct(ctx, bc.Code)
		if meta == nil {
			return nil, nil
		}
		if looksLikeMagazine(meta) {
			meta.Type = domain.ProductMagazine
		} else {
			meta.Type = domain.ProductGeneric
		}
		return meta, nil
	}

	return nil, nil
}

// resolveBook tries the primary source, then the fallback. The first
// non-nil result wins.
func (r *Resolver) resolveBook(ctx context.Context, isbn13 string) *domain.ProductMetadata {
	if meta := r.tryBook(ctx, r.primary, isbn13); meta != nil {
		return meta
	}
	return r.tryBook(ctx, r.fallback, isbn13)
}

func (r *Resolver) tryBook(ctx context.Context, src BookSource, isbn13 string) *domain.ProductMetadata {
	if src == nil {
		return nil
	}

	meta, err := src.LookupISBN(ctx, isbn13)
	if err != nil {
		r.recordMiss("book", isbn13, err)
		return nil
	}
	if meta == nil {
		metrics.LookupsTotal.WithLabelValues("book", "miss").Inc()
		return nil
	}

	meta.Type = domain.ProductBook
	if meta.ISBN13 == "" {
		meta.ISBN13 = isbn13
	}
	metrics.LookupsTotal.WithLabelValues(meta.Source, "hit").Inc()
	return meta
}

func (r *Resolver) resolveProduct(ctx context.Context, code string) *domain.ProductMetadata {
	if r.products == nil {
		return nil
	}

	meta, err := r.products.LookupCode(ctx, code)
	if err != nil {
		r.recordMiss("product", code, err)
		return nil
	}
	if meta == nil {
		metrics.LookupsTotal.WithLabelValues("product", "miss").Inc()
		return nil
	}

	metrics.LookupsTotal.WithLabelValues(meta.Source, "hit").Inc()
	return meta
}

func (r *Resolver) recordMiss(source, code string, err error) {
	metrics.LookupsTotal.WithLabelValues(source, "error").Inc()
	if r.logger != nil {
		r.logger.Warn("source lookup failed", "source", source, "code", code, "err", err)
	}
}

// looksLikeMagazine applies the periodical heuristic over the title,
// categories and description of a generic product result.
func looksLikeMagazine(meta *domain.ProductMetadata) bool {
	var sb strings.Builder
	sb.WriteString(meta.Title)
	for _, c := range meta.Categories {
		sb.WriteString(" ")
		sb.WriteString(c)
	}
	sb.WriteString(" ")
	sb.WriteString(meta.Description)
	return magazine.LooksLikeMagazine(sb.String())
}
