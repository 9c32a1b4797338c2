// Package cli implements the interactive lyrebird client commands.
package cli

import (
	"context"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/iocli"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/client/sync"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// AuthService is the session surface the commands need
type AuthService interface {
	Register(ctx context.Context, username, password string) (*storage.AuthData, error)
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*storage.AuthData, error)
	EnsureFresh(ctx context.Context) (*storage.AuthData, error)
}

// SongService is the song catalog surface the commands need
type SongService interface {
	List(ctx context.Context) ([]*api.Song, error)
	Get(ctx context.Context, id string) (*api.Song, error)
	Create(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error)
	Update(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error)
	Delete(ctx context.Context, id string) error
}

type Cli struct {
	io          iocli.IO
	apiClient   clientapi.ClientAPI
	authService AuthService
	songService SongService
	syncService sync.Service
}

func New(io iocli.IO, apiClient clientapi.ClientAPI, authService AuthService, songService SongService, syncService sync.Service) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		songService: songService,
		syncService: syncService,
	}
}

// PrintUsage writes the command reference to the terminal
func (c *Cli) PrintUsage() {
	c.io.Println(usageText)
}
