package session

import (
	"path/filepath"
	"testing"

	"cinelog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	identity := &entity.Identity{ID: "u-1", DisplayName: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Save(identity))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, identity, loaded)
}

func TestFileStore_LoadMissingReturnsNil(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&entity.Identity{ID: "u-1"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
