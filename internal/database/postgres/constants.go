package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// ProfileKey identifies the singleton profile row
const ProfileKey = "default"

const (
	queryLoadItems = `
		SELECT payload
		FROM work_items
		WHERE kind = $1
		ORDER BY created_at, id`

	queryInsertItem = `
		INSERT INTO work_items (id, kind, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW())`

	queryUpdateItem = `
		UPDATE work_items
		SET payload = $3, updated_at = NOW()
		WHERE kind = $1 AND id = $2`

	queryDeleteItem = `
		DELETE FROM work_items
		WHERE kind = $1 AND id = $2`

	queryLoadProfile = `
		SELECT payload, version
		FROM profiles
		WHERE key = $1`

	// Stale writes from an older version never overwrite a newer row.
	queryUpsertProfile = `
		INSERT INTO profiles (key, payload, version, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, version = EXCLUDED.version, updated_at = NOW()
		WHERE profiles.version <= EXCLUDED.version`
)
