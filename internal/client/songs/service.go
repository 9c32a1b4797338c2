// Package songs implements the client-side song catalog: writes go to the
// server first and are mirrored into the local cache, reads are served from
// the cache so the catalog works offline.
package songs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/validation"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// Service is the write-through song catalog
type Service struct {
	apiClient clientapi.ClientAPI
	songStore storage.SongStorage
}

// NewService creates a new song catalog service
func NewService(apiClient clientapi.ClientAPI, songStore storage.SongStorage) *Service {
	return &Service{
		apiClient: apiClient,
		songStore: songStore,
	}
}

// List returns all cached songs ordered by title
func (s *Service) List(ctx context.Context) ([]*api.Song, error) {
	songs, err := s.songStore.ListSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached songs: %w", err)
	}
	return songs, nil
}

// Get returns one cached song
func (s *Service) Get(ctx context.Context, id string) (*api.Song, error) {
	song, err := s.songStore.GetSong(ctx, id)
	if err != nil {
		return nil, err
	}
	return song, nil
}

// Create creates the song server-side and caches the authoritative record
func (s *Service) Create(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
	if err := validation.ValidateSongTitle(req.Title); err != nil {
		return nil, fmt.Errorf("invalid title: %w", err)
	}

	song, err := s.apiClient.CreateSong(ctx, req, cover)
	if err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}

	if err := s.songStore.SaveSong(ctx, song); err != nil {
		// The server copy exists; the next sync picks it up.
		slog.Warn("failed to cache created song", slog.String("id", song.ID), slog.Any("error", err))
	}
	return song, nil
}

// Update patches the song server-side and caches the authoritative record
func (s *Service) Update(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error) {
	if req.Title != nil {
		if err := validation.ValidateSongTitle(*req.Title); err != nil {
			return nil, fmt.Errorf("invalid title: %w", err)
		}
	}

	song, err := s.apiClient.UpdateSong(ctx, id, req, cover)
	if err != nil {
		return nil, fmt.Errorf("failed to update song: %w", err)
	}

	if err := s.songStore.SaveSong(ctx, song); err != nil {
		slog.Warn("failed to cache updated song", slog.String("id", song.ID), slog.Any("error", err))
	}
	return song, nil
}

// Delete removes the song server-side and drops it from the cache
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.apiClient.DeleteSong(ctx, id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	if err := s.songStore.DeleteSong(ctx, id); err != nil && !errors.Is(err, storage.ErrSongNotFound) {
		slog.Warn("failed to drop deleted song from cache", slog.String("id", id), slog.Any("error", err))
	}
	return nil
}
