package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/internal/server/storage"
)

// CreateSong inserts a new song and stamps created_at/updated_at
func (s *Storage) CreateSong(ctx context.Context, song *models.Song) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	song.CreatedAt = now
	song.UpdatedAt = now

	query := `
		INSERT INTO songs (
			id, user_id, title, artist, album,
			original_lyrics, translated_lyrics, cover_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		song.ID,
		song.UserID,
		song.Title,
		song.Artist,
		song.Album,
		song.OriginalLyrics,
		song.TranslatedLyrics,
		nullString(song.CoverID),
		timeToMillis(song.CreatedAt),
		timeToMillis(song.UpdatedAt),
	)

	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	return nil
}

// GetSong retrieves a song by ID
func (s *Storage) GetSong(ctx context.Context, id string) (*models.Song, error) {
	query := songSelect + ` WHERE id = ?`

	song, err := scanSong(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	return song, nil
}

// GetUserSongs retrieves all songs owned by a user
func (s *Storage) GetUserSongs(ctx context.Context, userID string) ([]*models.Song, error) {
	query := songSelect + ` WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var songs []*models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate songs: %w", err)
	}

	return songs, nil
}

// ListSummaries returns the (id, updated_at) pairs of all songs owned by
// a user
func (s *Storage) ListSummaries(ctx context.Context, userID string) ([]reconcile.Item, error) {
	query := `SELECT id, updated_at FROM songs WHERE user_id = ?`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []reconcile.Item
	for rows.Next() {
		var item reconcile.Item
		var updatedAt int64
		if err := rows.Scan(&item.ID, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		item.UpdatedAt = millisToTime(updatedAt)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	return items, nil
}

// UpdateSong overwrites the mutable fields and bumps updated_at.
// The MAX expression keeps updated_at strictly increasing even when two
// updates land inside the same millisecond.
func (s *Storage) UpdateSong(ctx context.Context, song *models.Song) error {
	query := `
		UPDATE songs
		SET title = ?, artist = ?, album = ?,
		    original_lyrics = ?, translated_lyrics = ?, cover_id = ?,
		    updated_at = MAX(?, updated_at + 1)
		WHERE id = ?
	`

	now := time.Now().UTC().Truncate(time.Millisecond)

	result, err := s.db.ExecContext(ctx, query,
		song.Title,
		song.Artist,
		song.Album,
		song.OriginalLyrics,
		song.TranslatedLyrics,
		nullString(song.CoverID),
		timeToMillis(now),
		song.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrSongNotFound
	}

	// Read back the stamped timestamp so callers see the persisted value
	var updatedAt int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT updated_at FROM songs WHERE id = ?`, song.ID,
	).Scan(&updatedAt); err != nil {
		return fmt.Errorf("failed to read back updated_at: %w", err)
	}
	song.UpdatedAt = millisToTime(updatedAt)

	return nil
}

// DeleteSong deletes a song by ID
func (s *Storage) DeleteSong(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrSongNotFound
	}

	return nil
}

const songSelect = `
	SELECT id, user_id, title, artist, album,
	       original_lyrics, translated_lyrics, cover_id,
	       created_at, updated_at
	FROM songs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (*models.Song, error) {
	song := &models.Song{}
	var coverID sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(
		&song.ID,
		&song.UserID,
		&song.Title,
		&song.Artist,
		&song.Album,
		&song.OriginalLyrics,
		&song.TranslatedLyrics,
		&coverID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if coverID.Valid {
		song.CoverID = coverID.String
	}
	song.CreatedAt = millisToTime(createdAt)
	song.UpdatedAt = millisToTime(updatedAt)

	return song, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
