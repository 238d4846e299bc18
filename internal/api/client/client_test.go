package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/calegrey/relister/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetQuota(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetQuota(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_Lookup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/lookup", r.URL.Path)

		var body map[string]string
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "978-0-306-40615-7", body["barcode"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LookupResponse{
			Classification: domain.BarcodeClassification{
				Kind: domain.BarcodeISBN13,
				Code: "9780306406157",
			},
			Metadata: &domain.ProductMetadata{Title: "Some Book"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Lookup(context.Background(), "978-0-306-40615-7")
	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeISBN13, resp.Classification.Kind)
	assert.Equal(t, "Some Book", resp.Metadata.Title)
}

func TestClient_Price(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/price", r.URL.Path)

		var req PriceRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "vintage camera", req.Query)
		assert.True(t, req.IncludeShipping)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PriceResponse{
			Query:     req.Query,
			Stats:     domain.PriceStatistics{Count: 8, SuggestedPrice: 24.99},
			TotalSeen: 40,
			PagesUsed: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Price(context.Background(), &PriceRequest{
		Query:           "vintage camera",
		IncludeShipping: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Stats.Count)
	assert.InDelta(t, 24.99, resp.Stats.SuggestedPrice, 0.001)
}

func TestClient_BuildTitle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/title", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TitleResponse{
			Title:  "Some Book by Pat Morgan",
			Length: 23,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.BuildTitle(context.Background(), domain.ItemFields{
		Title:  "Some Book",
		Author: "Pat Morgan",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Some Book by Pat Morgan", resp.Title)
	assert.Equal(t, 23, resp.Length)
}

func TestClient_CreateListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "9780306406157", body["barcode"])
		assert.Equal(t, "Good", body["condition"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.ListingDraft{
			ID:    "d-created",
			Title: "Some Book by Pat Morgan",
			Price: 8.99,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	draft, err := c.CreateListing(context.Background(), "9780306406157", "Good", nil)
	require.NoError(t, err)
	assert.Equal(t, "d-created", draft.ID)
	assert.InDelta(t, 8.99, draft.Price, 0.001)
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "isbn13", r.URL.Query().Get("kind"))
		assert.Equal(t, "modern", r.URL.Query().Get("search"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "price", r.URL.Query().Get("order_by"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListingsResponse{
			Drafts: []domain.ListingDraft{{ID: "d1"}},
			Total:  1,
			Limit:  10,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListListings(context.Background(), &ListListingsParams{
		Kind:    "isbn13",
		Search:  "modern",
		Limit:   10,
		OrderBy: "price",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Drafts, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestClient_GetListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings/d1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ListingDraft{ID: "d1", Title: "Some Book"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	draft, err := c.GetListing(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "Some Book", draft.Title)
}

func TestClient_DeleteListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/listings/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteListing(context.Background(), "d1"))
}

func TestClient_RunBatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/batch", r.URL.Path)

		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Len(t, body["barcodes"], 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"batch_id":"b1","total":2,"succeeded":2,"failed":0,"items":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	summary, err := c.RunBatch(
		context.Background(),
		[]string{"9780306406157", "012345678905"},
		"",
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "b1", summary.BatchID)
	assert.Equal(t, 2, summary.Succeeded)
}

func TestClient_GetQuota(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/quota", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QuotaStatus{
			DailyLimit: 5000,
			DailyUsed:  142,
			Remaining:  4858,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, err := c.GetQuota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), status.DailyLimit)
	assert.Equal(t, int64(4858), status.Remaining)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/quota", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(QuotaStatus{})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	_, err := c.GetQuota(context.Background())
	require.NoError(t, err)
}
