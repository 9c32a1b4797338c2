package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/server/storage"
)

func TestCoverStorage_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	cover := &models.Cover{
		ID:        uuid.New().String(),
		URL:       "http://localhost:9000/covers/abc.jpg",
		ObjectKey: "abc.jpg",
	}
	require.NoError(t, s.CreateCover(ctx, cover))

	got, err := s.GetCover(ctx, cover.ID)
	require.NoError(t, err)
	assert.Equal(t, cover.URL, got.URL)
	assert.Equal(t, cover.ObjectKey, got.ObjectKey)

	deleted, err := s.DeleteCover(ctx, cover.ID)
	require.NoError(t, err)
	assert.Equal(t, cover.ObjectKey, deleted.ObjectKey)

	_, err = s.GetCover(ctx, cover.ID)
	assert.ErrorIs(t, err, storage.ErrCoverNotFound)
}

func TestCoverStorage_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.DeleteCover(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrCoverNotFound)
}

func TestCoverStorage_SongCoverReference(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")

	cover := &models.Cover{
		ID:        uuid.New().String(),
		URL:       "http://localhost:9000/covers/xyz.jpg",
		ObjectKey: "xyz.jpg",
	}
	require.NoError(t, s.CreateCover(ctx, cover))

	song := &models.Song{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		Title:   "with cover",
		CoverID: cover.ID,
	}
	require.NoError(t, s.CreateSong(ctx, song))

	got, err := s.GetSong(ctx, song.ID)
	require.NoError(t, err)
	assert.Equal(t, cover.ID, got.CoverID)

	// Removing the cover row clears the reference (ON DELETE SET NULL).
	_, err = s.DeleteCover(ctx, cover.ID)
	require.NoError(t, err)

	got, err = s.GetSong(ctx, song.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CoverID)
}
