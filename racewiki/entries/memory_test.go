package entries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// returns a store whose clock advances one second per write
func newTestStore() *MemoryStore {
	store := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0

	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	return store
}

func mustCreate(t *testing.T, store *MemoryStore, draft Draft) *Entry {
	t.Helper()

	entry, err := store.Create(context.Background(), draft)
	require.NoError(t, err)

	return entry
}

func TestMemoryStore_FindBySimilarity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	near := mustCreate(t, store, Draft{Title: "close", Slug: "close", Category: CategoryCar, Embedding: []float32{1, 0.1}})
	closer := mustCreate(t, store, Draft{Title: "closer", Slug: "closer", Category: CategoryCar, Embedding: []float32{1, 0}})
	mustCreate(t, store, Draft{Title: "orthogonal", Slug: "orthogonal", Category: CategoryCar, Embedding: []float32{0, 1}})
	mustCreate(t, store, Draft{Title: "unembedded", Slug: "unembedded", Category: CategoryCar})

	results, err := store.FindBySimilarity(ctx, []float32{1, 0}, 0.5, 5)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, closer.ID, results[0].ID)
	assert.Equal(t, near.ID, results[1].ID)

	for _, r := range results {
		assert.Greater(t, r.Similarity, float32(0.5))
	}

	limited, err := store.FindBySimilarity(ctx, []float32{1, 0}, 0.5, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, closer.ID, limited[0].ID)
}

func TestMemoryStore_FindBySimilarityExcludesBelowThreshold(t *testing.T) {
	store := newTestStore()

	// cos(60°) = 0.5
	mustCreate(t, store, Draft{Title: "edge", Slug: "edge", Category: CategoryTrack, Embedding: []float32{0.5, 0.8660254}})

	results, err := store.FindBySimilarity(context.Background(), []float32{1, 0}, 0.5001, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMemoryStore_FindByPattern(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	amg := mustCreate(t, store, Draft{Title: "Mercedes-AMG GT3 2020", Slug: "amg", Category: CategoryCar})
	spa := mustCreate(t, store, Draft{Title: "Circuit de Spa-Francorchamps", Slug: "spa", Category: CategoryTrack})
	mustCreate(t, store, Draft{Title: "Crew Chief", Slug: "crew-chief", Category: CategorySoftware})

	byTitle, err := store.FindByPattern(ctx, []Field{FieldTitle, FieldCategory}, "MERCEDES", 5)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, amg.ID, byTitle[0].ID)

	byCategory, err := store.FindByPattern(ctx, []Field{FieldTitle, FieldCategory}, "trac", 5)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, spa.ID, byCategory[0].ID)

	titleOnly, err := store.FindByPattern(ctx, []Field{FieldTitle}, "track", 5)
	require.NoError(t, err)
	assert.Empty(t, titleOnly)

	limited, err := store.FindByPattern(ctx, []Field{FieldTitle}, "c", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStore_CreateRejectsDuplicateSlug(t *testing.T) {
	store := newTestStore()
	mustCreate(t, store, Draft{Title: "Spa", Slug: "spa", Category: CategoryTrack})

	_, err := store.Create(context.Background(), Draft{Title: "Spa again", Slug: "spa", Category: CategoryTrack})

	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestMemoryStore_UpdateKeepsEmbeddingWhenDraftHasNone(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	entry := mustCreate(t, store, Draft{Title: "Spa", Slug: "spa", Category: CategoryTrack, Embedding: []float32{1, 2}})

	updated, err := store.Update(ctx, entry.ID, Draft{Title: "Spa 2024", Slug: "spa", Category: CategoryTrack})
	require.NoError(t, err)

	assert.Equal(t, "Spa 2024", updated.Title)
	assert.Equal(t, []float32{1, 2}, updated.Embedding)
	assert.True(t, updated.UpdatedAt.After(entry.UpdatedAt))

	_, err = store.Update(ctx, "missing", Draft{Title: "x", Slug: "x", Category: CategoryOther})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMemoryStore_UpsertBySlug(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	first, err := store.UpsertBySlug(ctx, Draft{Title: "Formula Vee", Slug: "formula-vee", Category: CategoryCar})
	require.NoError(t, err)

	second, err := store.UpsertBySlug(ctx, Draft{Title: "Formula Vee (updated)", Slug: "formula-vee", Category: CategoryCar})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Formula Vee (updated)", second.Title)

	_, total, err := store.List(ctx, ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestMemoryStore_ListPaginatesNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	a := mustCreate(t, store, Draft{Title: "A", Slug: "a", Category: CategoryCar})
	b := mustCreate(t, store, Draft{Title: "B", Slug: "b", Category: CategoryTrack})
	c := mustCreate(t, store, Draft{Title: "C", Slug: "c", Category: CategoryCar})

	page, total, err := store.List(ctx, ListParams{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, c.ID, page[0].ID)
	assert.Equal(t, b.ID, page[1].ID)

	rest, _, err := store.List(ctx, ListParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, a.ID, rest[0].ID)

	cars, carTotal, err := store.List(ctx, ListParams{Category: CategoryCar, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, carTotal)
	assert.Len(t, cars, 2)

	beyond, _, err := store.List(ctx, ListParams{Limit: 10, Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestMemoryStore_EmbeddingBackfillLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	entry := mustCreate(t, store, Draft{Title: "Crew Chief", Slug: "crew-chief", Category: CategorySoftware})

	missing, err := store.ListWithoutEmbedding(ctx, 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)

	require.NoError(t, store.UpdateEmbedding(ctx, entry.ID, []float32{0.3, 0.4}))

	missing, err = store.ListWithoutEmbedding(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, missing)

	assert.ErrorIs(t, store.UpdateEmbedding(ctx, "missing", []float32{1}), ErrEntryNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	entry := mustCreate(t, store, Draft{Title: "Spa", Slug: "spa", Category: CategoryTrack})

	require.NoError(t, store.Delete(ctx, entry.ID))

	_, err := store.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, store.Delete(ctx, entry.ID), ErrEntryNotFound)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Equal(t, float32(0), CosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, float32(0), CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
