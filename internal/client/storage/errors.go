package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrSongNotFound indicates the song is not in the local cache
	ErrSongNotFound = errors.New("song not found in local cache")
)
