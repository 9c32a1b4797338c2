package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-app/lyrebird/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	return s, func() {
		require.NoError(t, s.Close())
	}
}

func createTestUser(t *testing.T, s *Storage, username string) *models.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$fakedhashforstoragetests",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(context.Background(), user))

	return user
}

func createTestSong(t *testing.T, s *Storage, userID, title string) *models.Song {
	t.Helper()

	song := &models.Song{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          title,
		Artist:         "test artist",
		OriginalLyrics: "la la la",
	}
	require.NoError(t, s.CreateSong(context.Background(), song))

	return song
}
