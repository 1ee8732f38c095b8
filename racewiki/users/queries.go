package users

const (
	userColumns = `id::text, email, provider, provider_id, name, avatar_url, is_admin, created_at, updated_at`

	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			is_admin = EXCLUDED.is_admin,
			updated_at = NOW()
		RETURNING ` + userColumns

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
)
