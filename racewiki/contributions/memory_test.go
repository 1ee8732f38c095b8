package contributions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *MemoryStore {
	store := NewMemoryStore()
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return store
}

func TestMemoryStore_CreateStartsPending(t *testing.T) {
	store := newTestStore()
	blank := "  "

	c, err := store.Create(context.Background(), &CreateRequest{
		Title:    "  Crew Chief ",
		Category: "Software",
		ImageURL: &blank,
		Content:  "spotter app",
		Locale:   "zh",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Crew Chief", c.Title)
	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, "zh", c.Locale)
	assert.Nil(t, c.ImageURL)
}

func TestMemoryStore_ListFiltersAndOrders(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	first, err := store.Create(ctx, &CreateRequest{Title: "first", Category: "Car", Content: "a"})
	require.NoError(t, err)
	second, err := store.Create(ctx, &CreateRequest{Title: "second", Category: "Car", Content: "b"})
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, first.ID, StatusAccepted)
	require.NoError(t, err)

	all, total, err := store.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, second.ID, all[0].ID)

	pending, total, err := store.List(ctx, StatusPending, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, second.ID, pending[0].ID)

	page, total, err := store.List(ctx, "", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Empty(t, page)
}

func TestMemoryStore_UpdateStatusErrors(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_, err := store.UpdateStatus(ctx, "missing", StatusRejected)
	assert.ErrorIs(t, err, ErrContributionNotFound)

	_, err = store.UpdateStatus(ctx, "missing", Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, _, err = store.List(ctx, Status("archived"), 10, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
