package entries

import "context"

// the full content store, backed by postgres or memory
type Store interface {
	SlugFinder

	FindBySimilarity(ctx context.Context, vector []float32, threshold float32, limit int) ([]ScoredEntry, error)
	FindByPattern(ctx context.Context, fields []Field, substring string, limit int) ([]Entry, error)

	Get(ctx context.Context, id string) (*Entry, error)
	GetBySlug(ctx context.Context, slug string) (*Entry, error)
	List(ctx context.Context, params ListParams) ([]Entry, int, error)
	Create(ctx context.Context, draft Draft) (*Entry, error)
	Update(ctx context.Context, id string, draft Draft) (*Entry, error)
	UpsertBySlug(ctx context.Context, draft Draft) (*Entry, error)
	Delete(ctx context.Context, id string) error

	ListWithoutEmbedding(ctx context.Context, limit int) ([]Entry, error)
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error
}
