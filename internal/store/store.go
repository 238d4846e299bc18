// Package store defines the datastore abstraction for relister.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/calegrey/relister/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DraftQuery defines optional filters for draft listing queries.
type DraftQuery struct {
	Kind    *string // barcode kind filter
	Search  *string // case-insensitive title substring
	Limit   int     // default 50
	Offset  int
	OrderBy string // "created_at", "price", "title"
}

// Store defines all data access operations for relister.
type Store interface {
	// Drafts
	SaveDraft(ctx context.Context, d *domain.ListingDraft) error
	GetDraft(ctx context.Context, id string) (*domain.ListingDraft, error)
	ListDrafts(ctx context.Context, opts *DraftQuery) ([]domain.ListingDraft, int, error)
	DeleteDraft(ctx context.Context, id string) error

	// Comps cache
	GetCachedComps(ctx context.Context, key string) (*domain.PriceStatistics, error)
	PutCachedComps(ctx context.Context, key string, stats *domain.PriceStatistics, ttl time.Duration) error
	PurgeExpiredComps(ctx context.Context) (int64, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}
