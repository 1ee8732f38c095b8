package admin

import (
	"codeberg.org/racewiki/server/api/rest/pagination"
	"codeberg.org/racewiki/server/internal/auth"
	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/racewiki/contributions"
	"codeberg.org/racewiki/server/racewiki/entries"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// everything the admin routes touch
type Dependencies struct {
	Entries       entries.Store
	Editor        *entries.Editor
	Embedder      llm.Embedder
	Contributions contributions.Store
	Verifier      auth.AdminVerifier
}

// AdminEntry includes whether an entry has been embedded, which the public API hides
type AdminEntry struct {
	entries.Entry
	HasEmbedding bool `json:"has_embedding"`
}

type EntryListResponse struct {
	Entries    []AdminEntry    `json:"entries"`
	Pagination pagination.Meta `json:"pagination"`
}

type EmbeddingRequest struct {
	Text string `json:"text" binding:"required,max=20000"`
}

type EmbeddingResponse struct {
	Embedding  []float32 `json:"embedding"`
	Dimensions int       `json:"dimensions"`
}

type SeedResponse struct {
	Message string          `json:"message"`
	Entries []entries.Entry `json:"entries"`
}

type ContributionListResponse struct {
	Contributions []contributions.Contribution `json:"contributions"`
	Pagination    pagination.Meta              `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
