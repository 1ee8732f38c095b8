package retriever

import (
	"context"
	"errors"
	"time"

	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/racewiki/entries"
)

var (
	ErrInvalidRequest    = errors.New("a text query or an image is required")
	ErrEmptyQuery        = errors.New("search query is empty")
	ErrCaptioningFailure = errors.New("failed to describe image")
)

// the two lookups the resolver needs from the content store
type ContentStore interface {
	FindBySimilarity(ctx context.Context, vector []float32, threshold float32, limit int) ([]entries.ScoredEntry, error)
	FindByPattern(ctx context.Context, fields []entries.Field, substring string, limit int) ([]entries.Entry, error)
}

// turns a text or image query into a merged list of wiki entries
type Resolver struct {
	store     ContentStore
	embedder  llm.Embedder
	captioner llm.Captioner
	config    Config
}

type Config struct {
	TopK                int
	SimilarityThreshold float32
	KeywordLimit        int
	ChannelTimeout      time.Duration
}

// one search request. Locale and UserID only travel along for logging.
type Request struct {
	Text      string
	Image     []byte
	ImageMIME string
	Locale    string
	UserID    string
}

type Channel string

const (
	ChannelSemantic Channel = "semantic"
	ChannelKeyword  Channel = "keyword"
)

// an entry surfaced by one retrieval channel
type Candidate struct {
	entries.Entry
	Similarity float32
	Channel    Channel
}

type Result struct {
	Entries       []entries.Entry
	ResolvedQuery string
	ImageDerived  bool
}
