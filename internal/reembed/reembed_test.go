package reembed

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/racewiki/server/racewiki/entries"
)

type flakyEmbedder struct {
	mu       sync.Mutex
	failures int
	poison   string
}

func (f *flakyEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	out, err := f.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

func (f *flakyEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failures > 0 {
		f.failures--
		return nil, errors.New("rate limited")
	}

	out := make([][]float32, len(texts))
	for i, text := range texts {
		if f.poison != "" && strings.Contains(text, f.poison) {
			return nil, errors.New("content rejected")
		}
		out[i] = []float32{0.1, 0.2}
	}

	return out, nil
}

func seedStore(t *testing.T, titles ...string) *entries.MemoryStore {
	t.Helper()

	store := entries.NewMemoryStore()
	for _, title := range titles {
		_, err := store.Create(context.Background(), entries.Draft{
			Title:    title,
			Slug:     entries.Slugify(title),
			Category: entries.CategoryCar,
		})
		require.NoError(t, err)
	}

	return store
}

func TestBackfiller_EmbedsMissingEntries(t *testing.T) {
	store := seedStore(t, "Formula Vee", "Skip Barber", "Ray FF1600")
	b := New(store, &flakyEmbedder{failures: 1}, Options{Workers: 2, BatchSize: 2, RetryDelay: time.Millisecond})

	stats, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Stats{Found: 3, Embedded: 3}, stats)

	remaining, err := store.ListWithoutEmbedding(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestBackfiller_CountsFailedBatches(t *testing.T) {
	store := seedStore(t, "Formula Vee", "Skip Barber")
	b := New(store, &flakyEmbedder{poison: "Skip"}, Options{Workers: 1, BatchSize: 1, MaxRetries: 2, RetryDelay: time.Millisecond})

	stats, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Stats{Found: 2, Embedded: 1, Failed: 1}, stats)
}

func TestBackfiller_NothingToDo(t *testing.T) {
	b := New(entries.NewMemoryStore(), &flakyEmbedder{}, Options{})

	stats, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Found)
}
