package storage

import (
	"context"

	"github.com/lyrebird-app/lyrebird/internal/models"
)

// CoverStorage defines interface for cover metadata persistence.
// The image bytes themselves live in object storage; this interface only
// tracks the database rows pointing at them.
type CoverStorage interface {
	// CreateCover inserts a new cover row
	CreateCover(ctx context.Context, cover *models.Cover) error

	// GetCover retrieves a cover by ID
	// Returns ErrCoverNotFound if cover doesn't exist
	GetCover(ctx context.Context, id string) (*models.Cover, error)

	// DeleteCover deletes a cover row by ID
	// Returns ErrCoverNotFound if cover doesn't exist
	DeleteCover(ctx context.Context, id string) (*models.Cover, error)
}
