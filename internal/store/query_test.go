package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDraftQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        DraftQuery
		wantContains []string
		wantArgs     []any
	}{
		{
			name:  "defaults",
			query: DraftQuery{},
			wantContains: []string{
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
		},
		{
			name:  "kind filter",
			query: DraftQuery{Kind: strPtr("isbn13")},
			wantContains: []string{
				"barcode_kind = $1",
			},
			wantArgs: []any{"isbn13"},
		},
		{
			name:  "search filter wraps wildcards",
			query: DraftQuery{Search: strPtr("feynman")},
			wantContains: []string{
				"title ILIKE $1",
			},
			wantArgs: []any{"%feynman%"},
		},
		{
			name:  "combined filters number params in order",
			query: DraftQuery{Kind: strPtr("ean13_magazine"), Search: strPtr("time")},
			wantContains: []string{
				"barcode_kind = $1",
				"title ILIKE $2",
			},
			wantArgs: []any{"ean13_magazine", "%time%"},
		},
		{
			name:  "price ordering",
			query: DraftQuery{OrderBy: "price"},
			wantContains: []string{
				"ORDER BY price ASC",
			},
		},
		{
			name:  "unknown ordering falls back to default",
			query: DraftQuery{OrderBy: "sneaky; DROP TABLE"},
			wantContains: []string{
				"ORDER BY created_at DESC",
			},
		},
		{
			name:  "limit capped",
			query: DraftQuery{Limit: 9999},
			wantContains: []string{
				"LIMIT 500",
			},
		},
		{
			name:  "negative offset clamped",
			query: DraftQuery{Offset: -5},
			wantContains: []string{
				"OFFSET 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, want := range tt.wantContains {
				assert.Contains(t, dataSQL, want)
			}
			assert.Equal(t, tt.wantArgs, args)

			// Count query carries the same filters but never pagination.
			assert.NotContains(t, countSQL, "LIMIT")
			assert.NotContains(t, countSQL, "ORDER BY")
		})
	}
}
