package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_FindOrCreateRefreshesProfile(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	identity := ProviderIdentity{Provider: "github", ProviderID: "42", Email: "a@example.com", Name: "A"}

	created, err := store.FindOrCreateByProvider(ctx, identity, false)
	require.NoError(t, err)
	assert.False(t, created.IsAdmin)

	identity.Name = "Renamed"
	again, err := store.FindOrCreateByProvider(ctx, identity, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Renamed", again.Name)

	isAdmin, err := store.IsAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestMemoryStore_UnknownUser(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = store.IsAdmin(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
