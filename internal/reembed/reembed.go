package reembed

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"codeberg.org/racewiki/server/internal/llm"
	"codeberg.org/racewiki/server/internal/logger"
	"codeberg.org/racewiki/server/internal/metrics"
	"codeberg.org/racewiki/server/racewiki/entries"
)

const (
	defaultWorkers    = 4
	defaultBatchSize  = 16
	defaultLimit      = 1000
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

type Options struct {
	Workers    int
	BatchSize  int
	Limit      int // max entries handled per run
	MaxRetries int
	RetryDelay time.Duration
}

type Stats struct {
	Found    int
	Embedded int
	Failed   int
}

// generates embeddings for entries that were stored without one
type Backfiller struct {
	store    entries.Store
	embedder llm.Embedder
	opts     Options
}

func New(store entries.Store, embedder llm.Embedder, opts Options) *Backfiller {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}

	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	return &Backfiller{store: store, embedder: embedder, opts: opts}
}

// embeds every entry missing a vector in one pass. Failed batches are counted
// and logged; they are picked up again by the next run.
func (b *Backfiller) Run(ctx context.Context) (Stats, error) {
	pending, err := b.store.ListWithoutEmbedding(ctx, b.opts.Limit)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list entries without embedding: %w", err)
	}

	stats := Stats{Found: len(pending)}
	if len(pending) == 0 {
		return stats, nil
	}

	pool, err := ants.NewPool(b.opts.Workers)
	if err != nil {
		return stats, fmt.Errorf("failed to create worker pool: %w", err)
	}

	defer pool.Release()

	var embedded, failed atomic.Int64
	var wg sync.WaitGroup

	for start := 0; start < len(pending); start += b.opts.BatchSize {
		batch := pending[start:min(start+b.opts.BatchSize, len(pending))]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			n, err := b.processBatch(ctx, batch)
			embedded.Add(int64(n))
			failed.Add(int64(len(batch) - n))

			if err != nil {
				logger.FromContext(ctx).Warn("embedding batch failed", "size", len(batch), "error", err)
			}
		})

		if submitErr != nil {
			wg.Done()
			failed.Add(int64(len(batch)))
			logger.FromContext(ctx).Warn("failed to submit embedding batch", "error", submitErr)
		}
	}

	wg.Wait()

	stats.Embedded = int(embedded.Load())
	stats.Failed = int(failed.Load())

	metrics.ReembedEntriesTotal.WithLabelValues("embedded").Add(float64(stats.Embedded))
	metrics.ReembedEntriesTotal.WithLabelValues("failed").Add(float64(stats.Failed))

	logger.FromContext(ctx).Info("embedding backfill finished",
		"found", stats.Found,
		"embedded", stats.Embedded,
		"failed", stats.Failed,
	)

	return stats, nil
}

// returns how many entries in the batch were updated
func (b *Backfiller) processBatch(ctx context.Context, batch []entries.Entry) (int, error) {
	texts := make([]string, len(batch))
	for i, e := range batch {
		texts[i] = entries.EmbeddingText(e.Title, e.Category, e.Content)
	}

	var vectors [][]float32

	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = b.embedder.GenerateEmbeddings(ctx, texts)
		return err
	}, b.opts.MaxRetries, b.opts.RetryDelay)

	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings after %d attempts: %w", b.opts.MaxRetries, err)
	}

	if len(vectors) != len(batch) {
		return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(vectors))
	}

	updated := 0

	for i, e := range batch {
		if err := b.store.UpdateEmbedding(ctx, e.ID, vectors[i]); err != nil {
			logger.FromContext(ctx).Warn("failed to store embedding", "entry_id", e.ID, "error", err)
			continue
		}

		updated++
	}

	return updated, nil
}
