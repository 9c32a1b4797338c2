package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-app/lyrebird/internal/server/storage"
)

func TestSongStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")
	song := createTestSong(t, s, user.ID, "Ne me quitte pas")

	got, err := s.GetSong(ctx, song.ID)
	require.NoError(t, err)
	assert.Equal(t, song.Title, got.Title)
	assert.Equal(t, user.ID, got.UserID)
	assert.Empty(t, got.CoverID)
	assert.False(t, got.UpdatedAt.IsZero())
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestSongStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetSong(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrSongNotFound)
}

func TestSongStorage_UpdateBumpsTimestamp(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")
	song := createTestSong(t, s, user.ID, "original title")
	createdUpdatedAt := song.UpdatedAt

	song.Title = "changed title"
	require.NoError(t, s.UpdateSong(ctx, song))

	// Even back-to-back updates within one millisecond must move the
	// timestamp forward.
	assert.True(t, song.UpdatedAt.After(createdUpdatedAt))

	got, err := s.GetSong(ctx, song.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed title", got.Title)
	assert.True(t, got.UpdatedAt.Equal(song.UpdatedAt))

	previous := song.UpdatedAt
	song.Title = "changed again"
	require.NoError(t, s.UpdateSong(ctx, song))
	assert.True(t, song.UpdatedAt.After(previous))
}

func TestSongStorage_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")
	song := createTestSong(t, s, user.ID, "title")
	song.ID = uuid.New().String()

	err := s.UpdateSong(ctx, song)
	assert.ErrorIs(t, err, storage.ErrSongNotFound)
}

func TestSongStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")
	song := createTestSong(t, s, user.ID, "to be removed")

	require.NoError(t, s.DeleteSong(ctx, song.ID))

	_, err := s.GetSong(ctx, song.ID)
	assert.ErrorIs(t, err, storage.ErrSongNotFound)

	err = s.DeleteSong(ctx, song.ID)
	assert.ErrorIs(t, err, storage.ErrSongNotFound)
}

func TestSongStorage_GetUserSongsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	createTestSong(t, s, alice.ID, "alice song 1")
	createTestSong(t, s, alice.ID, "alice song 2")
	createTestSong(t, s, bob.ID, "bob song")

	songs, err := s.GetUserSongs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, songs, 2)
	for _, song := range songs {
		assert.Equal(t, alice.ID, song.UserID)
	}
}

func TestSongStorage_ListSummaries(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")
	song1 := createTestSong(t, s, user.ID, "one")
	song2 := createTestSong(t, s, user.ID, "two")

	items, err := s.ListSummaries(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]bool{}
	for _, item := range items {
		byID[item.ID] = true
		assert.False(t, item.UpdatedAt.IsZero())
	}
	assert.True(t, byID[song1.ID])
	assert.True(t, byID[song2.ID])

	// Summaries carry the exact persisted timestamp.
	got, err := s.GetSong(ctx, song1.ID)
	require.NoError(t, err)
	for _, item := range items {
		if item.ID == song1.ID {
			assert.True(t, item.UpdatedAt.Equal(got.UpdatedAt))
		}
	}
}

func TestSongStorage_ListSummariesEmpty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")

	items, err := s.ListSummaries(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
