package wiki

import (
	"context"
	"time"

	"codeberg.org/racewiki/server/api/rest/pagination"
	"codeberg.org/racewiki/server/racewiki/entries"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// read access to published entries
type EntryReader interface {
	GetBySlug(ctx context.Context, slug string) (*entries.Entry, error)
	List(ctx context.Context, params entries.ListParams) ([]entries.Entry, int, error)
}

// PageResponse is an entry prepared for display
type PageResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Category        entries.Category `json:"category"`
	CategoryLabel   string           `json:"category_label"`
	Content         string           `json:"content"`
	ContentHTML     string           `json:"content_html"`
	ImageURL        *string          `json:"image_url"`
	DisplayImageURL string           `json:"display_image_url,omitempty"`
	Description     string           `json:"description"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ListResponse is one page of entries
type ListResponse struct {
	Entries    []entries.Entry `json:"entries"`
	Pagination pagination.Meta `json:"pagination"`
}

// CategoryResponse is a category with its label in the request locale
type CategoryResponse struct {
	Value entries.Category `json:"value"`
	Label string           `json:"label"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
