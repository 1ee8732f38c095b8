package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/racewiki/server/racewiki/entries"
)

type stubEmbedder struct {
	err error
}

func (s stubEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, s.err
}

func (s stubEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}

	return out, nil
}

func TestBuiltin(t *testing.T) {
	seeds, err := Builtin()

	require.NoError(t, err)
	require.Len(t, seeds, 4)
	assert.Equal(t, "spa-francorchamps", seeds[1].Slug)
	assert.Empty(t, seeds[2].ImageURL)
}

func TestParse_RejectsUnknownCategory(t *testing.T) {
	_, err := Parse([]byte("- title: Moon Base\n  category: Planet\n"))

	assert.ErrorIs(t, err, entries.ErrInvalidCategory)
}

func TestRun_IsIdempotent(t *testing.T) {
	store := entries.NewMemoryStore()
	seeds, err := Builtin()
	require.NoError(t, err)

	ctx := context.Background()

	first, err := Run(ctx, store, stubEmbedder{}, seeds)
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, []float32{1, 0}, first[0].Embedding)
	assert.Nil(t, first[2].ImageURL)

	_, err = Run(ctx, store, nil, seeds)
	require.NoError(t, err)

	_, total, err := store.List(ctx, entries.ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	spa, err := store.GetBySlug(ctx, "spa-francorchamps")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, spa.Embedding)
}

func TestRun_EmbeddingFailureStillSeeds(t *testing.T) {
	store := entries.NewMemoryStore()
	seeds, err := Builtin()
	require.NoError(t, err)

	saved, err := Run(context.Background(), store, stubEmbedder{err: errors.New("no quota")}, seeds)

	require.NoError(t, err)
	assert.Len(t, saved, 4)
	assert.Nil(t, saved[0].Embedding)
}
