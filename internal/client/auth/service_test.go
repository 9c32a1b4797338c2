package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

type mockAuthStorage struct {
	auth      *storage.AuthData
	saveError error
	getError  error
}

func (m *mockAuthStorage) SaveAuth(_ context.Context, auth *storage.AuthData) error {
	if m.saveError != nil {
		return m.saveError
	}
	copied := *auth
	m.auth = &copied
	return nil
}

func (m *mockAuthStorage) GetAuth(_ context.Context) (*storage.AuthData, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if m.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	copied := *m.auth
	return &copied, nil
}

func (m *mockAuthStorage) DeleteAuth(_ context.Context) error {
	if m.auth == nil {
		return storage.ErrAuthNotFound
	}
	m.auth = nil
	return nil
}

func newAPIMock() *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		SetAccessTokenFunc: func(token string) {},
	}
}

func TestService_Register(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.RegisterFunc = func(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "s3cret-pass", req.Password)
		return &api.TokenResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresIn:    900,
		}, nil
	}
	apiMock.MeFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "user-1", Username: "alice"}, nil
	}

	store := &mockAuthStorage{}
	svc := NewService(apiMock, store)

	auth, err := svc.Register(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "alice", auth.Username)
	assert.Equal(t, "user-1", auth.UserID)
	assert.Equal(t, "access-1", auth.AccessToken)
	assert.Equal(t, "refresh-1", auth.RefreshToken)
	assert.InDelta(t, time.Now().Unix()+900, auth.ExpiresAt, 2)

	// Session persisted and API client armed before Me was called.
	require.NotNil(t, store.auth)
	assert.Equal(t, "user-1", store.auth.UserID)
	require.Len(t, apiMock.SetAccessTokenCalls(), 1)
	assert.Equal(t, "access-1", apiMock.SetAccessTokenCalls()[0].Token)
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(newAPIMock(), &mockAuthStorage{})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "s3cret-pass"},
		{"bad username chars", "alice!", "s3cret-pass"},
		{"short password", "alice", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestService_Login(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.LoginFunc = func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
		return &api.TokenResponse{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			ExpiresIn:    900,
		}, nil
	}
	apiMock.MeFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "user-1", Username: "alice"}, nil
	}

	store := &mockAuthStorage{}
	svc := NewService(apiMock, store)

	auth, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "access-2", auth.AccessToken)
	require.NotNil(t, store.auth)
}

func TestService_Login_ServerRejects(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.LoginFunc = func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
		return nil, errors.New("server error (401): invalid username or password")
	}

	store := &mockAuthStorage{}
	svc := NewService(apiMock, store)

	_, err := svc.Login(context.Background(), "alice", "wrong-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
	assert.Nil(t, store.auth)
}

func TestService_Logout(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.LogoutFunc = func(ctx context.Context, refreshToken string) error {
		assert.Equal(t, "refresh-1", refreshToken)
		return nil
	}

	store := &mockAuthStorage{auth: &storage.AuthData{
		Username:     "alice",
		RefreshToken: "refresh-1",
	}}
	svc := NewService(apiMock, store)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, store.auth)
	require.Len(t, apiMock.LogoutCalls(), 1)
}

func TestService_Logout_ServerUnreachable(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.LogoutFunc = func(ctx context.Context, refreshToken string) error {
		return errors.New("connection refused")
	}

	store := &mockAuthStorage{auth: &storage.AuthData{RefreshToken: "refresh-1"}}
	svc := NewService(apiMock, store)

	// Local session is removed even when the server cannot be reached.
	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, store.auth)
}

func TestService_Logout_NoSession(t *testing.T) {
	svc := NewService(newAPIMock(), &mockAuthStorage{})
	err := svc.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_Status(t *testing.T) {
	store := &mockAuthStorage{auth: &storage.AuthData{
		Username: "alice",
		UserID:   "user-1",
	}}
	svc := NewService(newAPIMock(), store)

	auth, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", auth.Username)
}

func TestService_Status_NoSession(t *testing.T) {
	svc := NewService(newAPIMock(), &mockAuthStorage{})
	_, err := svc.Status(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_EnsureFresh_TokenStillValid(t *testing.T) {
	apiMock := newAPIMock()

	store := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(10 * time.Minute).Unix(),
	}}
	svc := NewService(apiMock, store)

	auth, err := svc.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", auth.AccessToken)

	// No refresh round-trip, token handed to the API client as-is.
	assert.Empty(t, apiMock.RefreshCalls())
	require.Len(t, apiMock.SetAccessTokenCalls(), 1)
	assert.Equal(t, "access-1", apiMock.SetAccessTokenCalls()[0].Token)
}

func TestService_EnsureFresh_RefreshesExpiredToken(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.RefreshFunc = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		assert.Equal(t, "refresh-1", refreshToken)
		return &api.TokenResponse{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			ExpiresIn:    900,
		}, nil
	}

	store := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}}
	svc := NewService(apiMock, store)

	auth, err := svc.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", auth.AccessToken)
	assert.Equal(t, "refresh-2", auth.RefreshToken)

	// Rotated pair persisted for the next run.
	require.NotNil(t, store.auth)
	assert.Equal(t, "refresh-2", store.auth.RefreshToken)
	require.Len(t, apiMock.SetAccessTokenCalls(), 1)
	assert.Equal(t, "access-2", apiMock.SetAccessTokenCalls()[0].Token)
}

func TestService_EnsureFresh_RefreshesNearExpiryToken(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.RefreshFunc = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		return &api.TokenResponse{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresIn: 900}, nil
	}

	// Expires within the leeway window, so still triggers a refresh.
	store := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(5 * time.Second).Unix(),
	}}
	svc := NewService(apiMock, store)

	_, err := svc.EnsureFresh(context.Background())
	require.NoError(t, err)
	require.Len(t, apiMock.RefreshCalls(), 1)
}

func TestService_EnsureFresh_RefreshFails(t *testing.T) {
	apiMock := newAPIMock()
	apiMock.RefreshFunc = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		return nil, errors.New("server error (401): token not found")
	}

	store := &mockAuthStorage{auth: &storage.AuthData{
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}}
	svc := NewService(apiMock, store)

	_, err := svc.EnsureFresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token refresh failed")
}

func TestService_EnsureFresh_NoSession(t *testing.T) {
	svc := NewService(newAPIMock(), &mockAuthStorage{})
	_, err := svc.EnsureFresh(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
