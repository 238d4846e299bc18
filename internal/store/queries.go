package store

// SQL query constants organized by entity.
// All SQL lives here. PostgresStore methods reference these constants.

// Draft queries.
const (
	querySaveDraft = `
		INSERT INTO listing_drafts (
			id, barcode, barcode_kind,
			metadata, addon, stats,
			title, description, price,
			created_at, updated_at
		) VALUES (
			@id, @barcode, @barcode_kind,
			@metadata, @addon, @stats,
			@title, @description, @price,
			now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			barcode = EXCLUDED.barcode,
			barcode_kind = EXCLUDED.barcode_kind,
			metadata = EXCLUDED.metadata,
			addon = EXCLUDED.addon,
			stats = EXCLUDED.stats,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetDraft = `
		SELECT id, barcode, barcode_kind,
			metadata, addon, stats,
			title, COALESCE(description, ''), price,
			created_at, updated_at
		FROM listing_drafts
		WHERE id = $1`

	queryDeleteDraft = `DELETE FROM listing_drafts WHERE id = $1`
)

// Comps cache queries.
const (
	queryGetCachedComps = `
		SELECT stats
		FROM comps_cache
		WHERE query_key = $1 AND expires_at > now()`

	queryPutCachedComps = `
		INSERT INTO comps_cache (query_key, stats, expires_at, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (query_key) DO UPDATE SET
			stats = EXCLUDED.stats,
			expires_at = EXCLUDED.expires_at,
			created_at = now()`

	queryPurgeExpiredComps = `DELETE FROM comps_cache WHERE expires_at <= now()`
)
