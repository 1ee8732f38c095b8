package entries

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// save retries when a concurrent writer claims the slug between check and insert
const maxSaveAttempts = 3

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// runs the admin save flow: slug resolution, embedding, persistence
type Editor struct {
	store    Store
	embedder Embedder
}

func NewEditor(store Store, embedder Embedder) *Editor {
	return &Editor{store: store, embedder: embedder}
}

// the text embedded for an entry; search queries are compared against it
func EmbeddingText(title string, category Category, content string) string {
	return fmt.Sprintf("%s (%s): %s", title, category, content)
}

// creates the entry when id is empty, otherwise updates it
func (e *Editor) Save(ctx context.Context, id string, req SaveEntryRequest) (*Entry, error) {
	draft, err := e.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	base := draft.Slug

	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		slug, err := EnsureUniqueSlug(ctx, e.store, base, id)
		if err != nil {
			return nil, err
		}

		draft.Slug = slug

		var entry *Entry
		if id == "" {
			entry, err = e.store.Create(ctx, draft)
		} else {
			entry, err = e.store.Update(ctx, id, draft)
		}

		if errors.Is(err, ErrSlugTaken) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return entry, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrSlugTaken, base)
}

func (e *Editor) prepare(ctx context.Context, req SaveEntryRequest) (Draft, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return Draft{}, err
	}

	title := strings.TrimSpace(req.Title)

	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(title)
	}

	if slug == "" {
		return Draft{}, ErrInvalidSlug
	}

	var imageURL *string
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) != "" {
		trimmed := strings.TrimSpace(*req.ImageURL)
		imageURL = &trimmed
	}

	embedding, err := e.embedder.GenerateEmbedding(ctx, EmbeddingText(title, category, req.Content))
	if err != nil {
		return Draft{}, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
	}

	return Draft{
		Title:     title,
		Slug:      slug,
		Category:  category,
		Content:   req.Content,
		ImageURL:  imageURL,
		Embedding: embedding,
	}, nil
}
