package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/racewiki/entries"
)

//go:embed entries.yaml
var builtin []byte

type Seed struct {
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Category string `yaml:"category"`
	ImageURL string `yaml:"image_url"`
	Content  string `yaml:"content"`
}

// parses the built-in sample entries
func Builtin() ([]Seed, error) {
	return Parse(builtin)
}

func Parse(data []byte) ([]Seed, error) {
	var seeds []Seed
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	return validate(seeds)
}

func validate(seeds []Seed) ([]Seed, error) {
	for i, s := range seeds {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("seed %d: title is required", i)
		}

		if _, err := entries.ParseCategory(s.Category); err != nil {
			return nil, fmt.Errorf("seed %q: %w", s.Title, err)
		}
	}

	return seeds, nil
}

// upserts seeds by slug. embedder may be nil, in which case entries keep
// whatever embedding they already had.
func Run(ctx context.Context, store entries.Store, embedder llm.Embedder, seeds []Seed) ([]entries.Entry, error) {
	drafts := make([]entries.Draft, 0, len(seeds))

	for _, s := range seeds {
		category, err := entries.ParseCategory(s.Category)
		if err != nil {
			return nil, err
		}

		slug := entries.Slugify(s.Slug)
		if slug == "" {
			slug = entries.Slugify(s.Title)
		}

		draft := entries.Draft{
			Title:    strings.TrimSpace(s.Title),
			Slug:     slug,
			Category: category,
			Content:  s.Content,
		}

		if url := strings.TrimSpace(s.ImageURL); url != "" {
			draft.ImageURL = &url
		}

		drafts = append(drafts, draft)
	}

	if embedder != nil && len(drafts) > 0 {
		texts := make([]string, len(drafts))
		for i, d := range drafts {
			texts[i] = entries.EmbeddingText(d.Title, d.Category, d.Content)
		}

		vectors, err := embedder.GenerateEmbeddings(ctx, texts)
		if err != nil {
			logger.FromContext(ctx).Warn("seeding without embeddings", "error", err)
		} else {
			for i := range drafts {
				drafts[i].Embedding = vectors[i]
			}
		}
	}

	saved := make([]entries.Entry, 0, len(drafts))

	for _, d := range drafts {
		e, err := store.UpsertBySlug(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("failed to seed %q: %w", d.Slug, err)
		}

		saved = append(saved, *e)
	}

	logger.FromContext(ctx).Info("seeded wiki entries", "count", len(saved))

	return saved, nil
}
