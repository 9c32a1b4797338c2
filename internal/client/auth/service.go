// Package auth manages the client session: account registration, login,
// token persistence and refresh.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/validation"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// ErrNotAuthenticated is returned when no session is stored locally.
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshLeeway is how long before expiry the access token is treated
// as stale, so a token never expires mid-request.
const refreshLeeway = 30 * time.Second

// Service manages the authenticated session against the server
type Service struct {
	apiClient clientapi.ClientAPI
	authStore storage.AuthStorage
}

// NewService creates a new session service
func NewService(apiClient clientapi.ClientAPI, authStore storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
	}
}

// Register creates a new account and stores the resulting session
func (s *Service) Register(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.establishSession(ctx, username, resp)
}

// Login authenticates against the server and stores the resulting session
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.establishSession(ctx, username, resp)
}

// Logout revokes the session server-side (best effort) and always
// removes the local session data
func (s *Service) Logout(ctx context.Context) error {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if logoutErr := s.apiClient.Logout(ctx, auth.RefreshToken); logoutErr != nil {
		slog.Warn("failed to revoke session on server", slog.Any("error", logoutErr))
	}

	s.apiClient.SetAccessToken("")

	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// Status returns the stored session without touching the server
func (s *Service) Status(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return auth, nil
}

// EnsureFresh loads the stored session, refreshes the token pair when the
// access token is expired or about to expire, and arms the API client with
// a usable access token. Commands that talk to the server call this first.
func (s *Service) EnsureFresh(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	expiresAt := time.Unix(auth.ExpiresAt, 0)
	if time.Now().Add(refreshLeeway).Before(expiresAt) {
		s.apiClient.SetAccessToken(auth.AccessToken)
		return auth, nil
	}

	resp, err := s.apiClient.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.apiClient.SetAccessToken(auth.AccessToken)
	return auth, nil
}

// establishSession resolves the account behind a fresh token pair and
// persists the session
func (s *Service) establishSession(ctx context.Context, username string, resp *api.TokenResponse) (*storage.AuthData, error) {
	s.apiClient.SetAccessToken(resp.AccessToken)

	user, err := s.apiClient.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	auth := &storage.AuthData{
		Username:     username,
		UserID:       user.ID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return auth, nil
}
