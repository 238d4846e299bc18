package openlibrary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/books/openlibrary"
)

func TestClient_LookupISBN(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "ISBN:9780306406157", r.URL.Query().Get("bibkeys"))
		assert.Equal(t, "data", r.URL.Query().Get("jscmd"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ISBN:9780306406157": {
				"title": "Statistical Mechanics",
				"publish_date": "March 1998",
				"publishers": [{"name": "Westview Press"}],
				"authors": [{"name": "Richard P. Feynman"}],
				"subjects": [{"name": "Physics"}],
				"cover": {"large": "https://covers.openlibrary.org/b/id/1-L.jpg"}
			}
		}`))
	}))
	defer srv.Close()

	c := openlibrary.NewClient(
		openlibrary.WithBaseURL(srv.URL),
		openlibrary.WithRPS(100),
	)

	meta, err := c.LookupISBN(context.Background(), "9780306406157")
	require.NoError(t, err)
	require.NotNil(t, meta)

	assert.Equal(t, "Statistical Mechanics", meta.Title)
	assert.Equal(t, []string{"Richard P. Feynman"}, meta.Authors)
	assert.Equal(t, "Westview Press", meta.Publisher)
	assert.Equal(t, 1998, meta.PublicationYear)
	assert.Equal(t, []string{"Physics"}, meta.Categories)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/1-L.jpg", meta.CoverURL)
	assert.Equal(t, "openlibrary", meta.Source)
}

func TestClient_LookupISBN_EmptyResponseIsMiss(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := openlibrary.NewClient(
		openlibrary.WithBaseURL(srv.URL),
		openlibrary.WithRPS(100),
	)

	meta, err := c.LookupISBN(context.Background(), "9780000000000")
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestClient_LookupISBN_RetriesTransientFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ISBN:9780306406157": {"title": "Recovered"}}`))
	}))
	defer srv.Close()

	c := openlibrary.NewClient(
		openlibrary.WithBaseURL(srv.URL),
		openlibrary.WithRPS(100),
		openlibrary.WithMaxRetries(2),
	)

	meta, err := c.LookupISBN(context.Background(), "9780306406157")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "Recovered", meta.Title)
	assert.Equal(t, int64(2), calls.Load())
}

func TestClient_LookupISBN_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := openlibrary.NewClient(
		openlibrary.WithBaseURL(srv.URL),
		openlibrary.WithRPS(100),
		openlibrary.WithMaxRetries(3),
	)

	_, err := c.LookupISBN(context.Background(), "9780306406157")
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}
