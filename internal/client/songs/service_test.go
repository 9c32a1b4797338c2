package songs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

type mockSongStorage struct {
	songs     map[string]*api.Song
	saveError error
	listError error
}

func newMockSongStorage() *mockSongStorage {
	return &mockSongStorage{songs: make(map[string]*api.Song)}
}

func (m *mockSongStorage) SaveSong(_ context.Context, song *api.Song) error {
	if m.saveError != nil {
		return m.saveError
	}
	copied := *song
	m.songs[song.ID] = &copied
	return nil
}

func (m *mockSongStorage) GetSong(_ context.Context, id string) (*api.Song, error) {
	song, ok := m.songs[id]
	if !ok {
		return nil, storage.ErrSongNotFound
	}
	copied := *song
	return &copied, nil
}

func (m *mockSongStorage) ListSongs(_ context.Context) ([]*api.Song, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	songs := make([]*api.Song, 0, len(m.songs))
	for _, song := range m.songs {
		copied := *song
		songs = append(songs, &copied)
	}
	return songs, nil
}

func (m *mockSongStorage) ListSummaries(_ context.Context) ([]reconcile.Item, error) {
	items := make([]reconcile.Item, 0, len(m.songs))
	for _, song := range m.songs {
		items = append(items, reconcile.Item{ID: song.ID, UpdatedAt: song.UpdatedAt})
	}
	return items, nil
}

func (m *mockSongStorage) DeleteSong(_ context.Context, id string) error {
	if _, ok := m.songs[id]; !ok {
		return storage.ErrSongNotFound
	}
	delete(m.songs, id)
	return nil
}

func (m *mockSongStorage) ApplyBatch(_ context.Context, upserts []*api.Song, deletes []string) error {
	for _, song := range upserts {
		copied := *song
		m.songs[song.ID] = &copied
	}
	for _, id := range deletes {
		delete(m.songs, id)
	}
	return nil
}

func TestService_Create(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	apiMock := &clientapi.ClientAPIMock{
		CreateSongFunc: func(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
			assert.Equal(t, "Gloomy Sunday", req.Title)
			assert.Nil(t, cover)
			return &api.Song{ID: "song-1", Title: req.Title, UpdatedAt: now}, nil
		},
	}
	store := newMockSongStorage()
	svc := NewService(apiMock, store)

	song, err := svc.Create(context.Background(), api.SongCreateRequest{Title: "Gloomy Sunday"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "song-1", song.ID)

	// The server record lands in the cache with its stamp intact.
	cached, err := store.GetSong(context.Background(), "song-1")
	require.NoError(t, err)
	assert.True(t, cached.UpdatedAt.Equal(now))
}

func TestService_Create_EmptyTitle(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{}
	svc := NewService(apiMock, newMockSongStorage())

	_, err := svc.Create(context.Background(), api.SongCreateRequest{Title: "   "}, nil)
	require.Error(t, err)
	assert.Empty(t, apiMock.CreateSongCalls())
}

func TestService_Create_ServerError(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		CreateSongFunc: func(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
			return nil, errors.New("server error (401): unauthorized")
		},
	}
	store := newMockSongStorage()
	svc := NewService(apiMock, store)

	_, err := svc.Create(context.Background(), api.SongCreateRequest{Title: "Gloomy Sunday"}, nil)
	require.Error(t, err)
	assert.Empty(t, store.songs)
}

func TestService_Create_CacheWriteFailureIsNotFatal(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		CreateSongFunc: func(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
			return &api.Song{ID: "song-1", Title: req.Title}, nil
		},
	}
	store := newMockSongStorage()
	store.saveError = errors.New("disk full")
	svc := NewService(apiMock, store)

	song, err := svc.Create(context.Background(), api.SongCreateRequest{Title: "Gloomy Sunday"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "song-1", song.ID)
}

func TestService_Update(t *testing.T) {
	title := "New Title"
	apiMock := &clientapi.ClientAPIMock{
		UpdateSongFunc: func(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error) {
			assert.Equal(t, "song-1", id)
			return &api.Song{ID: id, Title: *req.Title}, nil
		},
	}
	store := newMockSongStorage()
	store.songs["song-1"] = &api.Song{ID: "song-1", Title: "Old Title"}
	svc := NewService(apiMock, store)

	song, err := svc.Update(context.Background(), "song-1", api.SongUpdateRequest{Title: &title}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New Title", song.Title)
	assert.Equal(t, "New Title", store.songs["song-1"].Title)
}

func TestService_Update_EmptyTitle(t *testing.T) {
	title := ""
	apiMock := &clientapi.ClientAPIMock{}
	svc := NewService(apiMock, newMockSongStorage())

	_, err := svc.Update(context.Background(), "song-1", api.SongUpdateRequest{Title: &title}, nil)
	require.Error(t, err)
	assert.Empty(t, apiMock.UpdateSongCalls())
}

func TestService_Delete(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		DeleteSongFunc: func(ctx context.Context, id string) error {
			assert.Equal(t, "song-1", id)
			return nil
		},
	}
	store := newMockSongStorage()
	store.songs["song-1"] = &api.Song{ID: "song-1"}
	svc := NewService(apiMock, store)

	require.NoError(t, svc.Delete(context.Background(), "song-1"))
	assert.Empty(t, store.songs)
}

func TestService_Delete_NotCached(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		DeleteSongFunc: func(ctx context.Context, id string) error { return nil },
	}
	svc := NewService(apiMock, newMockSongStorage())

	// A song never synced locally can still be deleted server-side.
	require.NoError(t, svc.Delete(context.Background(), "song-1"))
}

func TestService_Delete_ServerError(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		DeleteSongFunc: func(ctx context.Context, id string) error {
			return errors.New("server error (404): song not found")
		},
	}
	store := newMockSongStorage()
	store.songs["song-1"] = &api.Song{ID: "song-1"}
	svc := NewService(apiMock, store)

	require.Error(t, svc.Delete(context.Background(), "song-1"))
	// Cache untouched when the server rejects the delete.
	assert.Len(t, store.songs, 1)
}

func TestService_List(t *testing.T) {
	store := newMockSongStorage()
	store.songs["song-1"] = &api.Song{ID: "song-1", Title: "First"}
	store.songs["song-2"] = &api.Song{ID: "song-2", Title: "Second"}
	svc := NewService(&clientapi.ClientAPIMock{}, store)

	songs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, songs, 2)
}

func TestService_Get(t *testing.T) {
	store := newMockSongStorage()
	store.songs["song-1"] = &api.Song{ID: "song-1", Title: "First"}
	svc := NewService(&clientapi.ClientAPIMock{}, store)

	song, err := svc.Get(context.Background(), "song-1")
	require.NoError(t, err)
	assert.Equal(t, "First", song.Title)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrSongNotFound)
}
