package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-app/lyrebird/internal/client/auth"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
)

func TestCli_runRegister(t *testing.T) {
	io := newScriptedIO("alice", "s3cret-pass", "s3cret-pass")

	authService := &mockAuthService{
		registerFunc: func(ctx context.Context, username, password string) (*storage.AuthData, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "s3cret-pass", password)
			return &storage.AuthData{Username: username, UserID: "user-1"}, nil
		},
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "register", nil))
	assert.Contains(t, io.printed(), "Registered and logged in as alice")
}

func TestCli_runRegister_PasswordMismatch(t *testing.T) {
	io := newScriptedIO("alice", "s3cret-pass", "different")
	cli := New(io, nil, &mockAuthService{}, nil, nil)

	err := cli.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestCli_runLogin(t *testing.T) {
	io := newScriptedIO("alice", "s3cret-pass")

	authService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*storage.AuthData, error) {
			return &storage.AuthData{Username: username}, nil
		},
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "login", nil))
	assert.Contains(t, io.printed(), "Logged in as alice")
}

func TestCli_runLogin_Fails(t *testing.T) {
	io := newScriptedIO("alice", "wrong-pass")

	authService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*storage.AuthData, error) {
			return nil, errors.New("server error (401): invalid username or password")
		},
	}
	cli := New(io, nil, authService, nil, nil)

	err := cli.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestCli_runLogout(t *testing.T) {
	io := newScriptedIO()

	authService := &mockAuthService{
		logoutFunc: func(ctx context.Context) error { return nil },
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "logout", nil))
	assert.Contains(t, io.printed(), "Logged out.")
}

func TestCli_runLogout_NotLoggedIn(t *testing.T) {
	io := newScriptedIO()

	authService := &mockAuthService{
		logoutFunc: func(ctx context.Context) error { return auth.ErrNotAuthenticated },
	}
	cli := New(io, nil, authService, nil, nil)

	// Logging out while logged out is not an error.
	require.NoError(t, cli.Run(context.Background(), "logout", nil))
	assert.Contains(t, io.printed(), "Not logged in.")
}

func TestCli_runStatus(t *testing.T) {
	io := newScriptedIO()

	authService := &mockAuthService{
		statusFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Username:  "alice",
				UserID:    "user-1",
				ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
			}, nil
		},
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "status", nil))
	out := io.printed()
	assert.Contains(t, out, "Username: alice")
	assert.Contains(t, out, "Access token valid until")
}

func TestCli_runStatus_ExpiredToken(t *testing.T) {
	io := newScriptedIO()

	authService := &mockAuthService{
		statusFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Username:  "alice",
				ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			}, nil
		},
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "status", nil))
	assert.Contains(t, io.printed(), "Access token expired")
}

func TestCli_runStatus_NotLoggedIn(t *testing.T) {
	io := newScriptedIO()

	authService := &mockAuthService{
		statusFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotAuthenticated
		},
	}
	cli := New(io, nil, authService, nil, nil)

	require.NoError(t, cli.Run(context.Background(), "status", nil))
	assert.Contains(t, io.printed(), "Not logged in.")
}
