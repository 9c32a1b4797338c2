package handlers

import "context"

// contextKey is the type for request context keys set by middleware
type contextKey string

const (
	// UserIDKey holds the authenticated user's id
	UserIDKey contextKey = "user_id"
	// UsernameKey holds the authenticated user's username
	UsernameKey contextKey = "username"
)

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
