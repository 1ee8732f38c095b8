package search

import (
	"context"

	"codeberg.org/racewiki/server/internal/retriever"
	"codeberg.org/racewiki/server/racewiki/entries"
)

const (
	// MaxImageBytes caps the decoded image size
	MaxImageBytes = 5 << 20

	// base64 plus JSON overhead for a maximum size image
	maxBodyBytes = MaxImageBytes*4/3 + 64<<10

	maxQueryLength = 1000
)

// the piece of the resolver the handlers need
type Resolver interface {
	Resolve(ctx context.Context, req retriever.Request) (*retriever.Result, error)
}

// SearchRequest is the body of POST /search. Image is base64, optionally as a data URL.
type SearchRequest struct {
	Query string `json:"query" binding:"max=1000"`
	Image string `json:"image"`
}

// SearchResponse carries the merged results and the query that was actually searched
type SearchResponse struct {
	Results       []entries.Entry `json:"results"`
	InferredQuery string          `json:"inferredQuery"`
	ImageDerived  bool            `json:"imageDerived"`
}
