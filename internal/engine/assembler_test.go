package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/ebay"
	"github.com/calegrey/relister/internal/store"
	"github.com/calegrey/relister/internal/store/mocks"
	domain "github.com/calegrey/relister/pkg/types"
)

type stubResolver struct {
	meta *domain.ProductMetadata
	err  error

	lastBC domain.BarcodeClassification
}

func (s *stubResolver) Resolve(
	_ context.Context,
	bc domain.BarcodeClassification,
) (*domain.ProductMetadata, error) {
	s.lastBC = bc
	return s.meta, s.err
}

type stubFetcher struct {
	result *ebay.FetchResult
	err    error

	lastQuery string
	calls     int
}

func (s *stubFetcher) Fetch(
	_ context.Context,
	req ebay.SearchRequest,
) (*ebay.FetchResult, error) {
	s.calls++
	s.lastQuery = req.Query
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubDescriber struct {
	description string
	err         error

	lastPrice     float64
	lastCondition string
}

func (s *stubDescriber) Generate(
	_ context.Context,
	_ *domain.ProductMetadata,
	_ *domain.AddonInference,
	condition string,
	price float64,
) (string, error) {
	s.lastCondition = condition
	s.lastPrice = price
	return s.description, s.err
}

func bookMeta() *domain.ProductMetadata {
	return &domain.ProductMetadata{
		Type:            domain.ProductBook,
		Title:           "Effective Modern Testing",
		Authors:         []string{"Pat Morgan"},
		Publisher:       "Acme Press",
		PublicationYear: 2015,
		ISBN13:          "9780306406157",
		Source:          "googlebooks",
	}
}

func fetchResult(prices ...float64) *ebay.FetchResult {
	comps := make([]domain.PriceComp, len(prices))
	for i, p := range prices {
		comps[i] = domain.PriceComp{Price: p}
	}
	return &ebay.FetchResult{Comps: comps, TotalSeen: len(comps), PagesUsed: 1}
}

func TestAssembler_Assemble_Book(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		PutCachedComps(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: bookMeta()}
	fetcher := &stubFetcher{result: fetchResult(8, 10, 12, 9, 11)}
	describer := &stubDescriber{description: "A well kept copy."}

	a := NewAssembler(st, resolver, fetcher, describer)
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode:   "978-0-306-40615-7",
		Condition: "Good",
	})

	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, "9780306406157", draft.Barcode)
	assert.Equal(t, domain.BarcodeISBN13, draft.BarcodeKind)
	require.NotNil(t, draft.Metadata)
	assert.Equal(t, "Effective Modern Testing", draft.Metadata.Title)
	assert.Nil(t, draft.Addon)
	require.NotNil(t, draft.Stats)
	assert.Equal(t, 5, draft.Stats.Count)
	assert.Greater(t, draft.Price, 0.0)
	assert.Contains(t, draft.Title, "Effective Modern Testing")
	assert.Contains(t, draft.Title, "by Pat Morgan")
	assert.Equal(t, "A well kept copy.", draft.Description)

	assert.Equal(t, "Effective Modern Testing", fetcher.lastQuery)
	assert.Equal(t, "Good", describer.lastCondition)
	assert.Equal(t, draft.Price, describer.lastPrice)
}

func TestAssembler_Assemble_MagazineAddon(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		PutCachedComps(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: &domain.ProductMetadata{
		Type:        domain.ProductMagazine,
		Title:       "TIME",
		Description: "The January 2024 issue.",
		Source:      "upcdb",
	}}
	fetcher := &stubFetcher{result: fetchResult(4, 5, 6)}

	a := NewAssembler(st, resolver, fetcher, nil)
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "9771234567003 07",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeMagazine, draft.BarcodeKind)
	require.NotNil(t, draft.Addon)
	assert.Equal(t, "07", draft.Addon.Issue)
	assert.Equal(t, "January", draft.Addon.Month)
	assert.Equal(t, 2024, draft.Addon.Year)
	assert.Contains(t, draft.Title, "TIME Magazine")
	assert.Contains(t, draft.Title, "Issue 07")
	assert.Contains(t, draft.Title, "January 2024")
	assert.Equal(t, "TIME magazine", fetcher.lastQuery)
	assert.Empty(t, draft.Description)
}

func TestAssembler_Assemble_MetadataMiss(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		PutCachedComps(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: nil}
	fetcher := &stubFetcher{result: fetchResult(3.5)}

	a := NewAssembler(st, resolver, fetcher, nil)
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "012345678905",
	})

	require.NoError(t, err)
	assert.Nil(t, draft.Metadata)
	// With no metadata the code itself becomes both query and title.
	assert.Equal(t, "012345678905", fetcher.lastQuery)
	assert.Equal(t, "012345678905", draft.Title)
}

func TestAssembler_Assemble_CompsFetchFails(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: bookMeta()}
	fetcher := &stubFetcher{err: errors.New("ebay unavailable")}

	a := NewAssembler(st, resolver, fetcher, nil, WithFallbackPrice(4.99))
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "9780306406157",
	})

	require.NoError(t, err)
	require.NotNil(t, draft.Stats)
	assert.Equal(t, 0, draft.Stats.Count)
	assert.Equal(t, 4.99, draft.Price)
}

func TestAssembler_Assemble_CacheHitSkipsFetch(t *testing.T) {
	t.Parallel()

	cached := &domain.PriceStatistics{Count: 12, SuggestedPrice: 9.99}

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, "comps:Effective Modern Testing").
		Return(cached, nil)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: bookMeta()}
	fetcher := &stubFetcher{result: fetchResult(1)}

	a := NewAssembler(st, resolver, fetcher, nil)
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "9780306406157",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, fetcher.calls)
	assert.Equal(t, 9.99, draft.Price)
	assert.Equal(t, cached, draft.Stats)
}

func TestAssembler_Assemble_DescriberFailureSoft(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		PutCachedComps(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(nil)

	resolver := &stubResolver{meta: bookMeta()}
	fetcher := &stubFetcher{result: fetchResult(7, 8)}
	describer := &stubDescriber{err: errors.New("backend down")}

	a := NewAssembler(st, resolver, fetcher, describer)
	draft, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "9780306406157",
	})

	require.NoError(t, err)
	assert.Empty(t, draft.Description)
	assert.NotEmpty(t, draft.Title)
}

func TestAssembler_Assemble_EmptyBarcode(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	a := NewAssembler(st, &stubResolver{}, nil, nil)

	_, err := a.Assemble(context.Background(), AssembleRequest{Barcode: "no digits"})
	require.ErrorIs(t, err, ErrUnusableBarcode)
}

func TestAssembler_Assemble_SaveFails(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	st.EXPECT().
		GetCachedComps(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound)
	st.EXPECT().
		SaveDraft(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	a := NewAssembler(st, &stubResolver{}, nil, nil)
	_, err := a.Assemble(context.Background(), AssembleRequest{
		Barcode: "9780306406157",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving draft")
}

func TestInferAddon(t *testing.T) {
	t.Parallel()

	price := 1.23

	tests := []struct {
		name string
		bc   domain.BarcodeClassification
		meta *domain.ProductMetadata
		want *domain.AddonInference
	}{
		{
			name: "book without addon has no inference",
			bc:   domain.BarcodeClassification{Kind: domain.BarcodeISBN13, Code: "9780306406157"},
			meta: bookMeta(),
			want: nil,
		},
		{
			name: "two digit addon stored as issue",
			bc: domain.BarcodeClassification{
				Kind:  domain.BarcodeMagazine,
				Code:  "9771234567003",
				Addon: "07",
			},
			want: &domain.AddonInference{Issue: "07"},
		},
		{
			name: "five digit addon decodes price",
			bc: domain.BarcodeClassification{
				Kind:  domain.BarcodeMagazine,
				Code:  "9771234567003",
				Addon: "12345",
			},
			want: &domain.AddonInference{SuggestedPrice: &price},
		},
		{
			name: "magazine without addon enriches from text",
			bc:   domain.BarcodeClassification{Kind: domain.BarcodeMagazine, Code: "9771234567003"},
			meta: &domain.ProductMetadata{
				Type:  domain.ProductMagazine,
				Title: "National Geographic March 1999",
			},
			want: &domain.AddonInference{Month: "March", Year: 1999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InferAddon(tt.bc, tt.meta)
			assert.Equal(t, tt.want, got)
		})
	}
}
