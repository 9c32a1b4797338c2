package storage

import (
	"context"

	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// SongStorage defines the interface for the local song cache.
//
// The cache stores server records verbatim, including their updated_at
// stamps: reconciliation compares those stamps against the server by
// exact equality, so the cache must never rewrite them.
type SongStorage interface {
	// SaveSong inserts or overwrites one cached song
	SaveSong(ctx context.Context, song *api.Song) error

	// GetSong retrieves a cached song by id
	// Returns ErrSongNotFound if the song is not cached
	GetSong(ctx context.Context, id string) (*api.Song, error)

	// ListSongs returns all cached songs ordered by title
	ListSongs(ctx context.Context) ([]*api.Song, error)

	// ListSummaries returns the (id, updated_at) pairs of every cached
	// song: the client side of the reconciliation diff
	ListSummaries(ctx context.Context) ([]reconcile.Item, error)

	// DeleteSong removes a cached song by id
	// Returns ErrSongNotFound if the song is not cached
	DeleteSong(ctx context.Context, id string) error

	// ApplyBatch applies a reconciliation outcome in a single
	// transaction: every upsert is written and every id in deletes is
	// removed, or nothing changes at all
	ApplyBatch(ctx context.Context, upserts []*api.Song, deletes []string) error
}
