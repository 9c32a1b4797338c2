package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/server/storage"
)

// CreateCover inserts a new cover row
func (s *Storage) CreateCover(ctx context.Context, cover *models.Cover) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	cover.CreatedAt = now
	cover.UpdatedAt = now

	query := `
		INSERT INTO covers (id, url, object_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		cover.ID,
		cover.URL,
		cover.ObjectKey,
		timeToMillis(cover.CreatedAt),
		timeToMillis(cover.UpdatedAt),
	)

	if err != nil {
		return fmt.Errorf("failed to insert cover: %w", err)
	}

	return nil
}

// GetCover retrieves a cover by ID
func (s *Storage) GetCover(ctx context.Context, id string) (*models.Cover, error) {
	query := `
		SELECT id, url, object_key, created_at, updated_at
		FROM covers
		WHERE id = ?
	`

	cover := &models.Cover{}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&cover.ID,
		&cover.URL,
		&cover.ObjectKey,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCoverNotFound
		}
		return nil, fmt.Errorf("failed to get cover: %w", err)
	}

	cover.CreatedAt = millisToTime(createdAt)
	cover.UpdatedAt = millisToTime(updatedAt)

	return cover, nil
}

// DeleteCover deletes a cover row by ID and returns the deleted row so
// the caller can remove the backing object from storage
func (s *Storage) DeleteCover(ctx context.Context, id string) (*models.Cover, error) {
	cover, err := s.GetCover(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM covers WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to delete cover: %w", err)
	}

	return cover, nil
}
