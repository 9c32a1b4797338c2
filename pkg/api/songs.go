package api

import "time"

// Song is the full wire representation of one song.
type Song struct {
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Artist           string    `json:"artist,omitempty"`
	Album            string    `json:"album,omitempty"`
	OriginalLyrics   string    `json:"original_lyrics"`
	TranslatedLyrics string    `json:"translated_lyrics"`
	Cover            *Cover    `json:"cover,omitempty"`
}

// SongCreateRequest carries the mutable fields of a new song.
// A cover image, when present, travels as a separate multipart file part.
type SongCreateRequest struct {
	Title            string `json:"title"`
	Artist           string `json:"artist,omitempty"`
	Album            string `json:"album,omitempty"`
	OriginalLyrics   string `json:"original_lyrics"`
	TranslatedLyrics string `json:"translated_lyrics"`
}

// SongUpdateRequest is a partial update; nil fields are left untouched.
type SongUpdateRequest struct {
	Title            *string `json:"title,omitempty"`
	Artist           *string `json:"artist,omitempty"`
	Album            *string `json:"album,omitempty"`
	OriginalLyrics   *string `json:"original_lyrics,omitempty"`
	TranslatedLyrics *string `json:"translated_lyrics,omitempty"`
}

// SongSummary is the (id, updated_at) pair the reconciliation protocol
// operates on.
type SongSummary struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
}

// SongCheckResponse is the single-record freshness check result.
// Data is nil exactly when IsUpToDate is true.
type SongCheckResponse struct {
	Data       *Song `json:"data"`
	IsUpToDate bool  `json:"isUpToDate"`
}

// SongCheckAllRequest is the client's cached state, one summary per
// locally known song.
type SongCheckAllRequest struct {
	Items []SongSummary `json:"items"`
}

// SongCheckAllResponse is the wire form of the reconciliation result.
type SongCheckAllResponse struct {
	ToBeUpdated []string `json:"toBeUpdated"`
	ToBeCreated []string `json:"toBeCreated"`
	ToBeDeleted []string `json:"toBeDeleted"`
}
