package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/internal/server/storage"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// contextWithUser mimics what the auth middleware installs
func contextWithUser(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UsernameKey, username)
}

// mockUserStorage is a map-backed UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockTokenStorage is a map-backed TokenStorage for testing
type mockTokenStorage struct {
	tokens        map[string]*models.RefreshToken // token value -> token
	saveError     error
	deletedTokens []string
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return t, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	m.deletedTokens = append(m.deletedTokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

// mockSongStorage is a map-backed SongStorage for testing
type mockSongStorage struct {
	songs       map[string]*models.Song // id -> song
	createError error
	updateError error
	listError   error
}

func newMockSongStorage() *mockSongStorage {
	return &mockSongStorage{songs: make(map[string]*models.Song)}
}

func (m *mockSongStorage) CreateSong(ctx context.Context, song *models.Song) error {
	if m.createError != nil {
		return m.createError
	}
	m.songs[song.ID] = song
	return nil
}

func (m *mockSongStorage) GetSong(ctx context.Context, id string) (*models.Song, error) {
	song, ok := m.songs[id]
	if !ok {
		return nil, storage.ErrSongNotFound
	}
	copied := *song
	return &copied, nil
}

func (m *mockSongStorage) GetUserSongs(ctx context.Context, userID string) ([]*models.Song, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var songs []*models.Song
	for _, song := range m.songs {
		if song.UserID == userID {
			copied := *song
			songs = append(songs, &copied)
		}
	}
	sort.Slice(songs, func(i, j int) bool { return songs[i].ID < songs[j].ID })
	return songs, nil
}

func (m *mockSongStorage) ListSummaries(ctx context.Context, userID string) ([]reconcile.Item, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var items []reconcile.Item
	for _, song := range m.songs {
		if song.UserID == userID {
			items = append(items, reconcile.Item{ID: song.ID, UpdatedAt: song.UpdatedAt})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *mockSongStorage) UpdateSong(ctx context.Context, song *models.Song) error {
	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.songs[song.ID]; !ok {
		return storage.ErrSongNotFound
	}
	copied := *song
	m.songs[song.ID] = &copied
	return nil
}

func (m *mockSongStorage) DeleteSong(ctx context.Context, id string) error {
	if _, ok := m.songs[id]; !ok {
		return storage.ErrSongNotFound
	}
	delete(m.songs, id)
	return nil
}

// mockCoverStorage is a map-backed CoverStorage for testing
type mockCoverStorage struct {
	covers      map[string]*models.Cover // id -> cover
	createError error
}

func newMockCoverStorage() *mockCoverStorage {
	return &mockCoverStorage{covers: make(map[string]*models.Cover)}
}

func (m *mockCoverStorage) CreateCover(ctx context.Context, cover *models.Cover) error {
	if m.createError != nil {
		return m.createError
	}
	m.covers[cover.ID] = cover
	return nil
}

func (m *mockCoverStorage) GetCover(ctx context.Context, id string) (*models.Cover, error) {
	cover, ok := m.covers[id]
	if !ok {
		return nil, storage.ErrCoverNotFound
	}
	return cover, nil
}

func (m *mockCoverStorage) DeleteCover(ctx context.Context, id string) (*models.Cover, error) {
	cover, ok := m.covers[id]
	if !ok {
		return nil, storage.ErrCoverNotFound
	}
	delete(m.covers, id)
	return cover, nil
}

// mockObjectStore records uploads and removals in memory
type mockObjectStore struct {
	objects     map[string][]byte // key -> data
	putError    error
	removedKeys []string
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{objects: make(map[string][]byte)}
}

func (m *mockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.putError != nil {
		return "", m.putError
	}
	m.objects[key] = data
	return fmt.Sprintf("http://objects.test/%s", key), nil
}

func (m *mockObjectStore) Remove(ctx context.Context, key string) error {
	delete(m.objects, key)
	m.removedKeys = append(m.removedKeys, key)
	return nil
}

// mockTranslator returns canned translation responses
type mockTranslator struct {
	translateResp *api.TranslationResponse
	translateErr  error
	languagesResp *api.AvailableLanguages
	languagesErr  error
}

func (m *mockTranslator) Translate(ctx context.Context, req api.TranslationRequest) (*api.TranslationResponse, error) {
	if m.translateErr != nil {
		return nil, m.translateErr
	}
	return m.translateResp, nil
}

func (m *mockTranslator) AvailableLanguages(ctx context.Context) (*api.AvailableLanguages, error) {
	if m.languagesErr != nil {
		return nil, m.languagesErr
	}
	return m.languagesResp, nil
}
