package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// ClientAPI is the server surface the client-side services depend on
type ClientAPI interface {
	// SetAccessToken sets the Bearer token sent on subsequent requests
	SetAccessToken(token string)

	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (*api.User, error)

	ListSongs(ctx context.Context) ([]api.Song, error)
	GetSong(ctx context.Context, id string) (*api.Song, error)
	CreateSong(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error)
	UpdateSong(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error)
	DeleteSong(ctx context.Context, id string) error
	CheckSong(ctx context.Context, id string, updatedAt time.Time) (*api.SongCheckResponse, error)
	CheckAll(ctx context.Context, req api.SongCheckAllRequest) (*api.SongCheckAllResponse, error)

	Translate(ctx context.Context, req api.TranslationRequest) (*api.TranslationResponse, error)
	Languages(ctx context.Context) (*api.AvailableLanguages, error)
}

// Client is the HTTP client talking to the lyrebird server
type Client struct {
	httpClient  *http.Client
	baseURL     string
	mu          sync.RWMutex
	accessToken string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken sets the Bearer token sent on subsequent requests
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Register creates a new account and returns its first token pair
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns a token pair
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh rotates the token pair
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout revokes the refresh token server-side
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := api.LogoutRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me returns the authenticated account
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var resp api.User
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ListSongs fetches all songs owned by the account
func (c *Client) ListSongs(ctx context.Context) ([]api.Song, error) {
	var resp []api.Song
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/songs", nil, &resp); err != nil {
		return nil, fmt.Errorf("list songs request failed: %w", err)
	}
	return resp, nil
}

// GetSong fetches one full song record
func (c *Client) GetSong(ctx context.Context, id string) (*api.Song, error) {
	var resp api.Song
	path := fmt.Sprintf("/api/v1/songs/%s", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get song request failed: %w", err)
	}
	return &resp, nil
}

// CreateSong creates a song, sending a multipart form when a cover image
// accompanies the request
func (c *Client) CreateSong(ctx context.Context, req api.SongCreateRequest, cover []byte) (*api.Song, error) {
	var resp api.Song
	if cover == nil {
		if err := c.doRequest(ctx, http.MethodPost, "/api/v1/songs", req, &resp); err != nil {
			return nil, fmt.Errorf("create song request failed: %w", err)
		}
		return &resp, nil
	}

	fields := map[string]string{
		"title":             req.Title,
		"artist":            req.Artist,
		"album":             req.Album,
		"original_lyrics":   req.OriginalLyrics,
		"translated_lyrics": req.TranslatedLyrics,
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/api/v1/songs", fields, cover, &resp); err != nil {
		return nil, fmt.Errorf("create song request failed: %w", err)
	}
	return &resp, nil
}

// UpdateSong applies a partial update, optionally with a new cover
func (c *Client) UpdateSong(ctx context.Context, id string, req api.SongUpdateRequest, cover []byte) (*api.Song, error) {
	var resp api.Song
	path := fmt.Sprintf("/api/v1/songs/%s", url.PathEscape(id))

	if cover == nil {
		if err := c.doRequest(ctx, http.MethodPatch, path, req, &resp); err != nil {
			return nil, fmt.Errorf("update song request failed: %w", err)
		}
		return &resp, nil
	}

	fields := map[string]string{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Artist != nil {
		fields["artist"] = *req.Artist
	}
	if req.Album != nil {
		fields["album"] = *req.Album
	}
	if req.OriginalLyrics != nil {
		fields["original_lyrics"] = *req.OriginalLyrics
	}
	if req.TranslatedLyrics != nil {
		fields["translated_lyrics"] = *req.TranslatedLyrics
	}
	if err := c.doMultipart(ctx, http.MethodPatch, path, fields, cover, &resp); err != nil {
		return nil, fmt.Errorf("update song request failed: %w", err)
	}
	return &resp, nil
}

// DeleteSong removes a song server-side
func (c *Client) DeleteSong(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/songs/%s", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete song request failed: %w", err)
	}
	return nil
}

// CheckSong asks the server whether the cached copy is current
func (c *Client) CheckSong(ctx context.Context, id string, updatedAt time.Time) (*api.SongCheckResponse, error) {
	var resp api.SongCheckResponse
	path := fmt.Sprintf("/api/v1/songs/%s/check?updated_at=%s",
		url.PathEscape(id), url.QueryEscape(updatedAt.Format(time.RFC3339Nano)))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("check song request failed: %w", err)
	}
	return &resp, nil
}

// CheckAll sends the cached summaries and receives the reconciliation plan
func (c *Client) CheckAll(ctx context.Context, req api.SongCheckAllRequest) (*api.SongCheckAllResponse, error) {
	var resp api.SongCheckAllResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/songs/check-all", req, &resp); err != nil {
		return nil, fmt.Errorf("check-all request failed: %w", err)
	}
	return &resp, nil
}

// Translate proxies a translation request through the server
func (c *Client) Translate(ctx context.Context, req api.TranslationRequest) (*api.TranslationResponse, error) {
	var resp api.TranslationResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/translate", req, &resp); err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	return &resp, nil
}

// Languages fetches the provider's supported languages
func (c *Client) Languages(ctx context.Context) (*api.AvailableLanguages, error) {
	var resp api.AvailableLanguages
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/translate/languages", nil, &resp); err != nil {
		return nil, fmt.Errorf("languages request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs a JSON request and decodes the JSON response
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, result)
}

// doMultipart performs a multipart form request carrying a cover file
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, cover []byte, result interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	part, err := mw.CreateFormFile("cover", "cover")
	if err != nil {
		return fmt.Errorf("failed to create cover part: %w", err)
	}
	if _, err := part.Write(cover); err != nil {
		return fmt.Errorf("failed to write cover part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, result)
}

func (c *Client) send(req *http.Request, result interface{}) error {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
