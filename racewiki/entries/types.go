package entries

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrSlugTaken        = errors.New("slug already taken")
	ErrTooManyConflicts = errors.New("too many slug conflicts")
	ErrInvalidSlug      = errors.New("slug is empty after normalization")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrEmbeddingFailed  = errors.New("failed to generate embedding")
)

// handles wiki entry database operations
type Repository struct {
	db *pgxpool.Pool
}

// a single wiki article
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  Category  `json:"category"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Embedding []float32 `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`

	// set by every store read; Embedding itself is only loaded where needed
	HasEmbedding bool `json:"-"`
}

// an entry matched by the semantic channel
type ScoredEntry struct {
	Entry
	Similarity float32 `json:"similarity"`
}

// the values written on create, update and upsert.
// a nil embedding leaves the stored one untouched on update.
type Draft struct {
	Title     string
	Slug      string
	Category  Category
	Content   string
	ImageURL  *string
	Embedding []float32
}

// filter and window for listing entries
type ListParams struct {
	Category Category
	Limit    int
	Offset   int
}

// entry columns the keyword channel may match against
type Field string

const (
	FieldTitle    Field = "title"
	FieldCategory Field = "category"
)

// editor payload for creating or updating an entry
type SaveEntryRequest struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Slug     string  `json:"slug" binding:"max=200"`
	Category string  `json:"category" binding:"required"`
	Content  string  `json:"content" binding:"max=100000"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=2000"`
}
