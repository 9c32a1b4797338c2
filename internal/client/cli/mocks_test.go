package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lyrebird-app/lyrebird/internal/client/iocli"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/client/sync"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// scriptedIO feeds canned answers to prompts and records everything printed
type scriptedIO struct {
	*iocli.IOMock
	output *strings.Builder
}

func newScriptedIO(inputs ...string) *scriptedIO {
	var output strings.Builder
	next := 0

	readLine := func(prompt string) (string, error) {
		output.WriteString(prompt)
		if next >= len(inputs) {
			return "", fmt.Errorf("no scripted input left for prompt %q", prompt)
		}
		line := inputs[next]
		next++
		return line, nil
	}

	return &scriptedIO{
		IOMock: &iocli.IOMock{
			PrintlnFunc: func(a ...any) {
				output.WriteString(fmt.Sprintln(a...))
			},
			PrintfFunc: func(format string, a ...any) {
				output.WriteString(fmt.Sprintf(format, a...))
			},
			ReadInputFunc:    readLine,
			ReadPasswordFunc: readLine,
		},
		output: &output,
	}
}

func (s *scriptedIO) printed() string {
	return s.output.String()
}

type mockAuthService struct {
	registerFunc    func(ctx context.Context, username, password string) (*storage.AuthData, error)
	loginFunc       func(ctx context.Context, username, password string) (*storage.AuthData, error)
	logoutFunc      func(ctx context.Context) error
	statusFunc      func(ctx context.Context) (*storage.AuthData, error)
	ensureFreshFunc func(ctx context.Context) (*storage.AuthData, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (*storage.AuthData, error) {
	return m.registerFunc(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	return m.loginFunc(ctx, username, password)
}

func (m *mockAuthService) Logout(ctx context.Context) error {
	return m.logoutFunc(ctx)
}

func (m *mockAuthService) Status(ctx context.Context) (*storage.AuthData, error) {
	return m.statusFunc(ctx)
}

func (m *mockAuthService) EnsureFresh(ctx context.Context) (*storage.AuthData, error) {
	if m.ensureFreshFunc != nil {
		return m.ensureFreshFunc(ctx)
	}
	return &storage.AuthData{Username: "alice", UserID: "user-1"}, nil
}

type mockSongService struct {
	listFunc   func(ctx context.Context) ([]*api.Song, error)
	getFunc    func(ctx context.Context, id string) (*api.Song, error)
	createFunc func(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error)
	updateFunc func(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockSongService) List(ctx context.Context) ([]*api.Song, error) {
	return m.listFunc(ctx)
}

func (m *mockSongService) Get(ctx context.Context, id string) (*api.Song, error) {
	return m.getFunc(ctx, id)
}

func (m *mockSongService) Create(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
	return m.createFunc(ctx, req, cover)
}

func (m *mockSongService) Update(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error) {
	return m.updateFunc(ctx, id, req, cover)
}

func (m *mockSongService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

type mockSyncService struct {
	syncFunc func(ctx context.Context) (*sync.SyncResult, error)
}

func (m *mockSyncService) Sync(ctx context.Context) (*sync.SyncResult, error) {
	return m.syncFunc(ctx)
}
