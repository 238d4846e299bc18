//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/calegrey/relister/internal/store"
	domain "github.com/calegrey/relister/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("relister_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testDraft() *domain.ListingDraft {
	return &domain.ListingDraft{
		ID:          uuid.NewString(),
		Barcode:     "9780306406157",
		BarcodeKind: domain.BarcodeISBN13,
		Metadata: &domain.ProductMetadata{
			Type:            domain.ProductBook,
			Title:           "Statistical Mechanics",
			Authors:         []string{"Richard P. Feynman"},
			Publisher:       "Westview Press",
			PublicationYear: 1998,
			ISBN13:          "9780306406157",
			Source:          "googlebooks",
		},
		Stats: &domain.PriceStatistics{
			Count:          5,
			SuggestedPrice: 12.99,
			Distribution:   &domain.Distribution{Median: 12.5, Min: 8, Max: 20},
			Suggestions: &domain.Suggestions{
				FastSale: 10.99, Fair: 12.99, Competitive: 13.99, Stretch: 15.99,
			},
		},
		Title:       "Statistical Mechanics by Richard P. Feynman",
		Description: "A good book.",
		Price:       12.99,
	}
}

func TestPostgresStore_DraftRoundTrip(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	d := testDraft()
	require.NoError(t, s.SaveDraft(ctx, d))
	assert.False(t, d.CreatedAt.IsZero())

	got, err := s.GetDraft(ctx, d.ID)
	require.NoError(t, err)

	assert.Equal(t, d.Barcode, got.Barcode)
	assert.Equal(t, d.BarcodeKind, got.BarcodeKind)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, "Statistical Mechanics", got.Metadata.Title)
	require.NotNil(t, got.Stats)
	assert.Equal(t, 12.99, got.Stats.SuggestedPrice)
	assert.Nil(t, got.Addon)
	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Description, got.Description)
}

func TestPostgresStore_SaveDraftUpserts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	d := testDraft()
	require.NoError(t, s.SaveDraft(ctx, d))

	d.Title = "Revised Title"
	d.Price = 14.99
	require.NoError(t, s.SaveDraft(ctx, d))

	got, err := s.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Revised Title", got.Title)
	assert.Equal(t, 14.99, got.Price)
}

func TestPostgresStore_GetDraftNotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetDraft(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ListDrafts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	book := testDraft()
	require.NoError(t, s.SaveDraft(ctx, book))

	mag := testDraft()
	mag.ID = uuid.NewString()
	mag.Barcode = "9771234567890"
	mag.BarcodeKind = domain.BarcodeMagazine
	mag.Title = "TIME Magazine Issue 12"
	require.NoError(t, s.SaveDraft(ctx, mag))

	all, total, err := s.ListDrafts(ctx, &store.DraftQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	kind := string(domain.BarcodeMagazine)
	mags, total, err := s.ListDrafts(ctx, &store.DraftQuery{Kind: &kind})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, mags, 1)
	assert.Equal(t, mag.ID, mags[0].ID)

	search := "time mag"
	found, _, err := s.ListDrafts(ctx, &store.DraftQuery{Search: &search})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mag.ID, found[0].ID)
}

func TestPostgresStore_DeleteDraft(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	d := testDraft()
	require.NoError(t, s.SaveDraft(ctx, d))
	require.NoError(t, s.DeleteDraft(ctx, d.ID))

	_, err := s.GetDraft(ctx, d.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeleteDraft(ctx, d.ID), store.ErrNotFound)
}

func TestPostgresStore_CompsCache(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	stats := &domain.PriceStatistics{Count: 3, SuggestedPrice: 9.99}
	require.NoError(t, s.PutCachedComps(ctx, "isbn:9780306406157", stats, time.Hour))

	got, err := s.GetCachedComps(ctx, "isbn:9780306406157")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 9.99, got.SuggestedPrice)

	_, err = s.GetCachedComps(ctx, "missing-key")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_CompsCacheExpiry(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	stats := &domain.PriceStatistics{Count: 1, SuggestedPrice: 5.99}
	require.NoError(t, s.PutCachedComps(ctx, "expired-key", stats, -time.Minute))

	_, err := s.GetCachedComps(ctx, "expired-key")
	assert.ErrorIs(t, err, store.ErrNotFound)

	purged, err := s.PurgeExpiredComps(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}
