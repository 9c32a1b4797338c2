package storage

import (
	"context"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
)

// SongStorage defines interface for song persistence.
//
// The store owns updated_at: CreateSong and UpdateSong stamp it with the
// current time, so for any song id it never decreases across versions.
type SongStorage interface {
	// CreateSong inserts a new song and stamps created_at/updated_at
	CreateSong(ctx context.Context, song *models.Song) error

	// GetSong retrieves a song by ID
	// Returns ErrSongNotFound if song doesn't exist
	GetSong(ctx context.Context, id string) (*models.Song, error)

	// GetUserSongs retrieves all songs owned by a user
	GetUserSongs(ctx context.Context, userID string) ([]*models.Song, error)

	// ListSummaries returns the (id, updated_at) pairs of all songs owned
	// by a user: the authoritative side of the reconciliation diff
	ListSummaries(ctx context.Context, userID string) ([]reconcile.Item, error)

	// UpdateSong overwrites the mutable fields and bumps updated_at
	// Returns ErrSongNotFound if song doesn't exist
	UpdateSong(ctx context.Context, song *models.Song) error

	// DeleteSong deletes a song by ID
	// Returns ErrSongNotFound if song doesn't exist
	DeleteSong(ctx context.Context, id string) error
}
