package models

import "time"

// Song is one lyrics record owned by exactly one user.
//
// UpdatedAt is maintained by the authoritative store: it is set on create
// and bumped on every update, and never moves backwards for a given ID.
// It is the sole signal the reconciliation protocol relies on.
type Song struct {
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Title            string    `json:"title"`
	Artist           string    `json:"artist"`
	Album            string    `json:"album"`
	OriginalLyrics   string    `json:"original_lyrics"`
	TranslatedLyrics string    `json:"translated_lyrics"`
	CoverID          string    `json:"cover_id,omitempty"` // empty when the song has no cover
}
