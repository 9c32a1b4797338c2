package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrSongNotFound indicates that song was not found
	ErrSongNotFound = errors.New("song not found")

	// ErrCoverNotFound indicates that cover was not found
	ErrCoverNotFound = errors.New("cover not found")
)
