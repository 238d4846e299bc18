package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "price ASC",
	orderByTitle:   "title ASC",
}

const defaultOrderBy = "created_at DESC"

const baseDraftsSelect = `SELECT id, barcode, barcode_kind,
	metadata, addon, stats,
	title, COALESCE(description, ''), price,
	created_at, updated_at
FROM listing_drafts`

const countDraftsSelect = "SELECT COUNT(*) FROM listing_drafts"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a draft query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *DraftQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("barcode_kind = $%d", paramIdx))
		args = append(args, *q.Kind)
		paramIdx++
	}

	if q.Search != nil {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.Search+"%")
		paramIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := defaultOrderBy
	if expr, ok := validOrderBy[q.OrderBy]; ok {
		orderBy = expr
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseDraftsSelect, where, orderBy, limit, offset,
	)
	countSQL = countDraftsSelect + where

	return dataSQL, countSQL, args
}
