package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lyrebird-app/lyrebird/internal/models"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/internal/server/image"
	"github.com/lyrebird-app/lyrebird/internal/server/objstore"
	"github.com/lyrebird-app/lyrebird/internal/server/storage"
	"github.com/lyrebird-app/lyrebird/internal/validation"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing;
// larger file parts spill to temp files.
const maxMultipartMemory = 12 << 20

// SongsHandler handles the song CRUD and freshness-check endpoints
type SongsHandler struct {
	logger       *slog.Logger
	songStorage  storage.SongStorage
	coverStorage storage.CoverStorage
	objects      objstore.ObjectStore
}

// NewSongsHandler creates a new songs handler
func NewSongsHandler(logger *slog.Logger, songStorage storage.SongStorage, coverStorage storage.CoverStorage, objects objstore.ObjectStore) *SongsHandler {
	return &SongsHandler{
		logger:       logger,
		songStorage:  songStorage,
		coverStorage: coverStorage,
		objects:      objects,
	}
}

// List handles GET /api/v1/songs
func (h *SongsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	songs, err := h.songStorage.GetUserSongs(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list songs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Song, 0, len(songs))
	for _, song := range songs {
		apiSong, err := h.toAPISong(ctx, song)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to load cover", slog.String("song_id", song.ID), slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		resp = append(resp, *apiSong)
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Summaries handles GET /api/v1/songs/summary
// Returns the authoritative (id, updated_at) listing of the owner's songs.
func (h *SongsHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.songStorage.ListSummaries(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list summaries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.SongSummary, 0, len(items))
	for _, item := range items {
		resp = append(resp, api.SongSummary{ID: item.ID, UpdatedAt: item.UpdatedAt})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get handles GET /api/v1/songs/{id}
func (h *SongsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	song, ok := h.ownedSong(ctx, w, r)
	if !ok {
		return
	}

	apiSong, err := h.toAPISong(ctx, song)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cover", slog.String("song_id", song.ID), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, apiSong, http.StatusOK)
}

// Create handles POST /api/v1/songs
// Accepts either a JSON body or multipart/form-data with song fields plus
// an optional "cover" file part.
func (h *SongsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	req, coverData, err := h.parseSongForm(r)
	if err != nil {
		h.logger.WarnContext(ctx, "bad create request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidateSongTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	song := &models.Song{
		ID:               uuid.New().String(),
		UserID:           userID,
		Title:            req.Title,
		Artist:           req.Artist,
		Album:            req.Album,
		OriginalLyrics:   req.OriginalLyrics,
		TranslatedLyrics: req.TranslatedLyrics,
	}

	if coverData != nil {
		cover, err := h.createCover(ctx, coverData)
		if err != nil {
			h.respondCoverError(ctx, w, err)
			return
		}
		song.CoverID = cover.ID
	}

	if err := h.songStorage.CreateSong(ctx, song); err != nil {
		h.logger.ErrorContext(ctx, "failed to create song", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "song created",
		slog.String("song_id", song.ID),
		slog.String("user_id", userID))

	apiSong, err := h.toAPISong(ctx, song)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cover", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, apiSong, http.StatusCreated)
}

// Update handles PATCH /api/v1/songs/{id}
// Applies a partial update; a new cover file replaces the old one, whose
// row and object are removed only after the song row is updated.
func (h *SongsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	song, ok := h.ownedSong(ctx, w, r)
	if !ok {
		return
	}

	req, coverData, err := h.parseSongPatch(r)
	if err != nil {
		h.logger.WarnContext(ctx, "bad update request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title != nil {
		if err := validation.ValidateSongTitle(*req.Title); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		song.Title = *req.Title
	}
	if req.Artist != nil {
		song.Artist = *req.Artist
	}
	if req.Album != nil {
		song.Album = *req.Album
	}
	if req.OriginalLyrics != nil {
		song.OriginalLyrics = *req.OriginalLyrics
	}
	if req.TranslatedLyrics != nil {
		song.TranslatedLyrics = *req.TranslatedLyrics
	}

	oldCoverID := ""
	if coverData != nil {
		cover, err := h.createCover(ctx, coverData)
		if err != nil {
			h.respondCoverError(ctx, w, err)
			return
		}
		oldCoverID = song.CoverID
		song.CoverID = cover.ID
	}

	if err := h.songStorage.UpdateSong(ctx, song); err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			sendError(h.logger, w, "song not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update song", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if oldCoverID != "" {
		h.removeCover(ctx, oldCoverID)
	}

	h.logger.InfoContext(ctx, "song updated", slog.String("song_id", song.ID))

	apiSong, err := h.toAPISong(ctx, song)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cover", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, apiSong, http.StatusOK)
}

// Delete handles DELETE /api/v1/songs/{id}
func (h *SongsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	song, ok := h.ownedSong(ctx, w, r)
	if !ok {
		return
	}

	if err := h.songStorage.DeleteSong(ctx, song.ID); err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			sendError(h.logger, w, "song not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete song", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if song.CoverID != "" {
		h.removeCover(ctx, song.CoverID)
	}

	h.logger.InfoContext(ctx, "song deleted", slog.String("song_id", song.ID))

	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /api/v1/songs/{id}/check?updated_at=RFC3339
// Compares the client's cached timestamp against the stored one by exact
// equality and returns the full record only when they differ.
func (h *SongsHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	song, ok := h.ownedSong(ctx, w, r)
	if !ok {
		return
	}

	clientStamp := r.URL.Query().Get("updated_at")
	if clientStamp == "" {
		sendError(h.logger, w, "updated_at query parameter is required", http.StatusBadRequest)
		return
	}

	clientTime, err := time.Parse(time.RFC3339Nano, clientStamp)
	if err != nil {
		sendError(h.logger, w, "updated_at must be an RFC 3339 timestamp", http.StatusBadRequest)
		return
	}

	if song.UpdatedAt.Equal(clientTime) {
		sendJSON(h.logger, w, api.SongCheckResponse{IsUpToDate: true}, http.StatusOK)
		return
	}

	apiSong, err := h.toAPISong(ctx, song)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cover", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.SongCheckResponse{Data: apiSong}, http.StatusOK)
}

// CheckAll handles POST /api/v1/songs/check-all
// Diffs the client's cached summaries against the owner's stored songs and
// returns the ids to update, create and delete on the client side.
func (h *SongsHandler) CheckAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SongCheckAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	clientState := make([]reconcile.Item, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ID == "" {
			sendError(h.logger, w, "items must carry an id", http.StatusBadRequest)
			return
		}
		clientState = append(clientState, reconcile.Item{ID: item.ID, UpdatedAt: item.UpdatedAt})
	}

	serverState, err := h.songStorage.ListSummaries(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list summaries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := reconcile.Reconcile(clientState, serverState)

	h.logger.DebugContext(ctx, "check-all reconciled",
		slog.String("user_id", userID),
		slog.Int("to_update", len(result.ToBeUpdated)),
		slog.Int("to_create", len(result.ToBeCreated)),
		slog.Int("to_delete", len(result.ToBeDeleted)))

	resp := api.SongCheckAllResponse{
		ToBeUpdated: result.ToBeUpdated,
		ToBeCreated: result.ToBeCreated,
		ToBeDeleted: result.ToBeDeleted,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ownedSong loads the song from the path id and enforces ownership.
// Writes the error response itself and returns ok=false on failure.
func (h *SongsHandler) ownedSong(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Song, bool) {
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "song id is required", http.StatusBadRequest)
		return nil, false
	}

	song, err := h.songStorage.GetSong(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			sendError(h.logger, w, "song not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get song", slog.String("song_id", id), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if song.UserID != userID {
		h.logger.WarnContext(ctx, "song access denied",
			slog.String("song_id", id), slog.String("user_id", userID))
		sendError(h.logger, w, "forbidden", http.StatusForbidden)
		return nil, false
	}

	return song, true
}

// toAPISong converts a model to its wire form, resolving the cover row
func (h *SongsHandler) toAPISong(ctx context.Context, song *models.Song) (*api.Song, error) {
	apiSong := &api.Song{
		ID:               song.ID,
		Title:            song.Title,
		Artist:           song.Artist,
		Album:            song.Album,
		OriginalLyrics:   song.OriginalLyrics,
		TranslatedLyrics: song.TranslatedLyrics,
		CreatedAt:        song.CreatedAt,
		UpdatedAt:        song.UpdatedAt,
	}

	if song.CoverID != "" {
		cover, err := h.coverStorage.GetCover(ctx, song.CoverID)
		if err != nil {
			if errors.Is(err, storage.ErrCoverNotFound) {
				// Dangling cover reference; the song itself is still valid
				return apiSong, nil
			}
			return nil, err
		}
		apiSong.Cover = &api.Cover{
			ID:        cover.ID,
			URL:       cover.URL,
			CreatedAt: cover.CreatedAt,
			UpdatedAt: cover.UpdatedAt,
		}
	}

	return apiSong, nil
}

// createCover runs the image pipeline, uploads the object and inserts the row
func (h *SongsHandler) createCover(ctx context.Context, data []byte) (*models.Cover, error) {
	processed, err := image.Process(data)
	if err != nil {
		return nil, err
	}

	coverID := uuid.New().String()
	objectKey := fmt.Sprintf("covers/%s.jpg", coverID)

	url, err := h.objects.Put(ctx, objectKey, processed.Data, processed.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover: %w", err)
	}

	now := time.Now()
	cover := &models.Cover{
		ID:        coverID,
		URL:       url,
		ObjectKey: objectKey,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.coverStorage.CreateCover(ctx, cover); err != nil {
		// Roll the upload back so the bucket does not accumulate orphans
		if rmErr := h.objects.Remove(ctx, objectKey); rmErr != nil {
			h.logger.ErrorContext(ctx, "failed to remove orphaned cover object",
				slog.String("key", objectKey), slog.Any("error", rmErr))
		}
		return nil, fmt.Errorf("failed to save cover: %w", err)
	}

	return cover, nil
}

// removeCover deletes the cover row and its object; failures are logged
// but never fail the surrounding request.
func (h *SongsHandler) removeCover(ctx context.Context, coverID string) {
	cover, err := h.coverStorage.DeleteCover(ctx, coverID)
	if err != nil {
		if !errors.Is(err, storage.ErrCoverNotFound) {
			h.logger.ErrorContext(ctx, "failed to delete cover row",
				slog.String("cover_id", coverID), slog.Any("error", err))
		}
		return
	}

	if err := h.objects.Remove(ctx, cover.ObjectKey); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove cover object",
			slog.String("key", cover.ObjectKey), slog.Any("error", err))
	}
}

// respondCoverError maps image pipeline errors to client-facing statuses
func (h *SongsHandler) respondCoverError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, image.ErrUnsupportedFormat):
		sendError(h.logger, w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, image.ErrTooLarge):
		sendError(h.logger, w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, image.ErrInvalidImage):
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "cover pipeline failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// parseSongForm reads a create request from either a JSON body or a
// multipart form with an optional "cover" file part.
func (h *SongsHandler) parseSongForm(r *http.Request) (*api.SongCreateRequest, []byte, error) {
	if !isMultipart(r) {
		var req api.SongCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, fmt.Errorf("invalid request body")
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form")
	}

	req := &api.SongCreateRequest{
		Title:            r.FormValue("title"),
		Artist:           r.FormValue("artist"),
		Album:            r.FormValue("album"),
		OriginalLyrics:   r.FormValue("original_lyrics"),
		TranslatedLyrics: r.FormValue("translated_lyrics"),
	}

	coverData, err := readCoverPart(r)
	if err != nil {
		return nil, nil, err
	}

	return req, coverData, nil
}

// parseSongPatch reads a partial update from either a JSON body or a
// multipart form; absent form fields stay nil so they are not applied.
func (h *SongsHandler) parseSongPatch(r *http.Request) (*api.SongUpdateRequest, []byte, error) {
	if !isMultipart(r) {
		var req api.SongUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, fmt.Errorf("invalid request body")
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form")
	}

	req := &api.SongUpdateRequest{}
	if v, ok := formValue(r, "title"); ok {
		req.Title = &v
	}
	if v, ok := formValue(r, "artist"); ok {
		req.Artist = &v
	}
	if v, ok := formValue(r, "album"); ok {
		req.Album = &v
	}
	if v, ok := formValue(r, "original_lyrics"); ok {
		req.OriginalLyrics = &v
	}
	if v, ok := formValue(r, "translated_lyrics"); ok {
		req.TranslatedLyrics = &v
	}

	coverData, err := readCoverPart(r)
	if err != nil {
		return nil, nil, err
	}

	return req, coverData, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "multipart/")
}

func formValue(r *http.Request, name string) (string, bool) {
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// readCoverPart returns the bytes of the optional "cover" file part
func readCoverPart(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("cover")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid cover file part")
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, image.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read cover file")
	}

	return data, nil
}
