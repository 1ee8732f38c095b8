package entries

const (
	entryColumns = `id::text, title, slug, category, content, image_url, updated_at, embedding IS NOT NULL`

	queryFindBySimilarity = `
		SELECT ` + entryColumns + `,
			(1 - (embedding <=> $1))::real AS similarity
		FROM wiki_entries
		WHERE embedding IS NOT NULL
		  AND 1 - (embedding <=> $1) > $2
		ORDER BY embedding <=> $1
		LIMIT $3
	`

	// %s is replaced by an OR of whitelisted column predicates
	queryFindByPatternTemplate = `
		SELECT ` + entryColumns + `
		FROM wiki_entries
		WHERE %s
		ORDER BY updated_at DESC
		LIMIT $2
	`

	queryFindBySlug = `
		SELECT ` + entryColumns + `
		FROM wiki_entries
		WHERE slug = $1
	`

	queryGet = `
		SELECT ` + entryColumns + `
		FROM wiki_entries
		WHERE id = $1
	`

	queryCount = `
		SELECT COUNT(*)
		FROM wiki_entries
		WHERE ($1 = '' OR category = $1)
	`

	queryList = `
		SELECT ` + entryColumns + `
		FROM wiki_entries
		WHERE ($1 = '' OR category = $1)
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCreate = `
		INSERT INTO wiki_entries (title, slug, category, content, image_url, embedding)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + entryColumns

	queryUpdate = `
		UPDATE wiki_entries
		SET title = $1,
		    slug = $2,
		    category = $3,
		    content = $4,
		    image_url = $5,
		    embedding = COALESCE($6, embedding),
		    updated_at = NOW()
		WHERE id = $7
		RETURNING ` + entryColumns

	queryUpsertBySlug = `
		INSERT INTO wiki_entries (title, slug, category, content, image_url, embedding)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slug)
		DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			embedding = COALESCE(EXCLUDED.embedding, wiki_entries.embedding),
			updated_at = NOW()
		RETURNING ` + entryColumns

	queryDelete = `
		DELETE FROM wiki_entries
		WHERE id = $1
	`

	queryListWithoutEmbedding = `
		SELECT ` + entryColumns + `
		FROM wiki_entries
		WHERE embedding IS NULL
		ORDER BY updated_at DESC
		LIMIT $1
	`

	queryUpdateEmbedding = `
		UPDATE wiki_entries
		SET embedding = $1
		WHERE id = $2
	`
)
