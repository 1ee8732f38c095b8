package retriever

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/metrics"
)

func New(store ContentStore, embedder llm.Embedder, captioner llm.Captioner, config Config) *Resolver {
	return &Resolver{
		store:     store,
		embedder:  embedder,
		captioner: captioner,
		config:    config.withDefaults(),
	}
}

// Resolve runs the semantic and keyword channels for one request and merges them.
// Only request validation and captioning without a text fallback can fail;
// channel failures degrade to fewer results.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	source := "text"
	if len(req.Image) > 0 {
		source = "image"
	}

	log := logger.FromContext(ctx).With("locale", req.Locale, "source", source)

	query, imageDerived, err := r.normalize(ctx, req)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(source, "error").Inc()
		return nil, err
	}

	var semantic, keyword []Candidate
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		semantic = r.semanticSearch(ctx, query)
	}()

	if !imageDerived && utf8.RuneCountInString(query) > MinKeywordQueryLength {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keyword = r.keywordSearch(ctx, query)
		}()
	}

	wg.Wait()

	merged := mergeCandidates(semantic, keyword)

	metrics.SearchRequestsTotal.WithLabelValues(source, "success").Inc()
	metrics.SearchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	metrics.SearchResultsCount.Observe(float64(len(merged)))

	log.Debug("search resolved",
		"query", truncate(query, 80),
		"image_derived", imageDerived,
		"semantic", len(semantic),
		"keyword", len(keyword),
		"results", len(merged),
	)

	return &Result{
		Entries:       merged,
		ResolvedQuery: query,
		ImageDerived:  imageDerived,
	}, nil
}

// picks the canonical query. an image wins over text; text is the fallback
// when the caption fails or comes back empty.
func (r *Resolver) normalize(ctx context.Context, req Request) (string, bool, error) {
	text := strings.TrimSpace(req.Text)

	if len(req.Image) == 0 {
		if req.Text == "" {
			return "", false, ErrInvalidRequest
		}

		if text == "" {
			return "", false, ErrEmptyQuery
		}

		return text, false, nil
	}

	mimeType := req.ImageMIME
	if mimeType == "" {
		mimeType = llm.DefaultImageMIME
	}

	caption, err := r.captioner.CaptionImage(ctx, req.Image, mimeType, CaptionPrompt)
	if err != nil {
		if text == "" {
			return "", false, fmt.Errorf("%w: %w", ErrCaptioningFailure, err)
		}

		logger.FromContext(ctx).Warn("image captioning failed, searching by text", "error", err)

		return text, false, nil
	}

	caption = strings.TrimSpace(caption)
	if caption == "" {
		if text == "" {
			return "", false, ErrEmptyQuery
		}

		return text, false, nil
	}

	return caption, true, nil
}

func (r *Resolver) semanticSearch(ctx context.Context, query string) []Candidate {
	ctx, cancel := context.WithTimeout(ctx, r.config.ChannelTimeout)
	defer cancel()

	vector, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		r.channelFailed(ctx, ChannelSemantic, "embedding", err)
		return nil
	}

	found, err := r.store.FindBySimilarity(ctx, vector, r.config.SimilarityThreshold, r.config.TopK)
	if err != nil {
		r.channelFailed(ctx, ChannelSemantic, "store", err)
		return nil
	}

	candidates := make([]Candidate, 0, len(found))
	for _, f := range found {
		if f.Similarity <= r.config.SimilarityThreshold {
			continue
		}

		candidates = append(candidates, Candidate{Entry: f.Entry, Similarity: f.Similarity, Channel: ChannelSemantic})

		if len(candidates) == r.config.TopK {
			break
		}
	}

	return candidates
}

func (r *Resolver) keywordSearch(ctx context.Context, query string) []Candidate {
	ctx, cancel := context.WithTimeout(ctx, r.config.ChannelTimeout)
	defer cancel()

	found, err := r.store.FindByPattern(ctx, keywordFields, query, r.config.KeywordLimit)
	if err != nil {
		r.channelFailed(ctx, ChannelKeyword, "store", err)
		return nil
	}

	candidates := make([]Candidate, 0, len(found))
	for _, e := range found {
		candidates = append(candidates, Candidate{Entry: e, Channel: ChannelKeyword})

		if len(candidates) == r.config.KeywordLimit {
			break
		}
	}

	return candidates
}

func (r *Resolver) channelFailed(ctx context.Context, channel Channel, stage string, err error) {
	reason := stage
	if ctx.Err() != nil {
		reason = "timeout"
	}

	metrics.SearchChannelFailuresTotal.WithLabelValues(string(channel), reason).Inc()
	logger.FromContext(ctx).Warn("search channel failed",
		"channel", string(channel),
		"reason", reason,
		"error", err,
	)
}
