package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lyrebird-app/lyrebird/internal/server/storage"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// CoversHandler handles cover metadata endpoints
type CoversHandler struct {
	logger       *slog.Logger
	coverStorage storage.CoverStorage
}

// NewCoversHandler creates a new covers handler
func NewCoversHandler(logger *slog.Logger, coverStorage storage.CoverStorage) *CoversHandler {
	return &CoversHandler{
		logger:       logger,
		coverStorage: coverStorage,
	}
}

// Get handles GET /api/v1/covers/{id}
func (h *CoversHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "cover id is required", http.StatusBadRequest)
		return
	}

	cover, err := h.coverStorage.GetCover(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCoverNotFound) {
			sendError(h.logger, w, "cover not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get cover", slog.String("cover_id", id), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.Cover{
		ID:        cover.ID,
		URL:       cover.URL,
		CreatedAt: cover.CreatedAt,
		UpdatedAt: cover.UpdatedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
