package contributions

const (
	contributionColumns = `id::text, title, category, image_url, content, locale, submitted_by::text, status, created_at`

	queryCreate = `
		INSERT INTO contributions (title, category, image_url, content, locale, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contributionColumns

	queryCount = `
		SELECT COUNT(*)
		FROM contributions
		WHERE ($1 = '' OR status = $1)
	`

	queryList = `
		SELECT ` + contributionColumns + `
		FROM contributions
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	queryUpdateStatus = `
		UPDATE contributions
		SET status = $2
		WHERE id = $1
		RETURNING ` + contributionColumns
)
