package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/calegrey/relister/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Structured draft fields (metadata, addon, stats) are stored as JSONB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveDraft inserts or updates a draft by id.
func (s *PostgresStore) SaveDraft(ctx context.Context, d *domain.ListingDraft) error {
	metadata, err := marshalNullable(d.Metadata)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	addon, err := marshalNullable(d.Addon)
	if err != nil {
		return fmt.Errorf("marshaling addon: %w", err)
	}
	stats, err := marshalNullable(d.Stats)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	args := pgx.NamedArgs{
		"id":           d.ID,
		"barcode":      d.Barcode,
		"barcode_kind": string(d.BarcodeKind),
		"metadata":     metadata,
		"addon":        addon,
		"stats":        stats,
		"title":        d.Title,
		"description":  d.Description,
		"price":        d.Price,
	}

	return s.pool.QueryRow(ctx, querySaveDraft, args).Scan(
		&d.CreatedAt, &d.UpdatedAt,
	)
}

// GetDraft retrieves a draft by its UUID.
func (s *PostgresStore) GetDraft(ctx context.Context, id string) (*domain.ListingDraft, error) {
	d := &domain.ListingDraft{}
	err := scanDraft(s.pool.QueryRow(ctx, queryGetDraft, id), d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDrafts queries drafts with optional filters, returning results and total count.
func (s *PostgresStore) ListDrafts(
	ctx context.Context,
	opts *DraftQuery,
) ([]domain.ListingDraft, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting drafts: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var drafts []domain.ListingDraft
	for rows.Next() {
		var d domain.ListingDraft
		if err := scanDraft(rows, &d); err != nil {
			return nil, 0, fmt.Errorf("scanning draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating drafts: %w", err)
	}

	return drafts, total, nil
}

// DeleteDraft removes a draft by id.
func (s *PostgresStore) DeleteDraft(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteDraft, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCachedComps returns the cached price statistics for a query key,
// or ErrNotFound when the entry is absent or expired.
func (s *PostgresStore) GetCachedComps(
	ctx context.Context,
	key string,
) (*domain.PriceStatistics, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, queryGetCachedComps, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading comps cache: %w", err)
	}

	var stats domain.PriceStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("unmarshaling cached stats: %w", err)
	}
	return &stats, nil
}

// PutCachedComps upserts price statistics under a query key with a TTL.
func (s *PostgresStore) PutCachedComps(
	ctx context.Context,
	key string,
	stats *domain.PriceStatistics,
	ttl time.Duration,
) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	expiresAt := time.Now().Add(ttl)
	if _, err := s.pool.Exec(ctx, queryPutCachedComps, key, raw, expiresAt); err != nil {
		return fmt.Errorf("writing comps cache: %w", err)
	}
	return nil
}

// PurgeExpiredComps deletes expired cache entries and reports how many.
func (s *PostgresStore) PurgeExpiredComps(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryPurgeExpiredComps)
	if err != nil {
		return 0, fmt.Errorf("purging comps cache: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanDraft reads one draft row. JSONB columns arrive as raw bytes and
// unmarshal into the pointer fields; SQL NULL leaves them nil.
func scanDraft(row pgx.Row, d *domain.ListingDraft) error {
	var kind string
	var metadata, addon, stats []byte

	err := row.Scan(
		&d.ID, &d.Barcode, &kind,
		&metadata, &addon, &stats,
		&d.Title, &d.Description, &d.Price,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return err
	}

	d.BarcodeKind = domain.BarcodeKind(kind)

	if err := unmarshalNullable(metadata, &d.Metadata); err != nil {
		return fmt.Errorf("unmarshaling metadata: %w", err)
	}
	if err := unmarshalNullable(addon, &d.Addon); err != nil {
		return fmt.Errorf("unmarshaling addon: %w", err)
	}
	if err := unmarshalNullable(stats, &d.Stats); err != nil {
		return fmt.Errorf("unmarshaling stats: %w", err)
	}

	return nil
}

// marshalNullable renders a pointer as JSON, mapping nil to SQL NULL.
func marshalNullable[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func unmarshalNullable[T any](raw []byte, target **T) error {
	if len(raw) == 0 {
		*target = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*target = &v
	return nil
}
