package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lyrebird-app/lyrebird/internal/server/translate"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// Translator is the part of the translation service the handler needs
type Translator interface {
	Translate(ctx context.Context, req api.TranslationRequest) (*api.TranslationResponse, error)
	AvailableLanguages(ctx context.Context) (*api.AvailableLanguages, error)
}

// TranslateHandler proxies translation requests to the provider service
type TranslateHandler struct {
	logger     *slog.Logger
	translator Translator
}

// NewTranslateHandler creates a new translation handler
func NewTranslateHandler(logger *slog.Logger, translator Translator) *TranslateHandler {
	return &TranslateHandler{
		logger:     logger,
		translator: translator,
	}
}

// Translate handles POST /api/v1/translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		sendError(h.logger, w, "text is required", http.StatusBadRequest)
		return
	}
	if req.To == "" {
		sendError(h.logger, w, "to language is required", http.StatusBadRequest)
		return
	}

	resp, err := h.translator.Translate(ctx, req)
	if err != nil {
		if errors.Is(err, translate.ErrUnknownLanguage) {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "translation failed", slog.Any("error", err))
		sendError(h.logger, w, "translation provider unavailable", http.StatusBadGateway)
		return
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Languages handles GET /api/v1/translate/languages
func (h *TranslateHandler) Languages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.translator.AvailableLanguages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch languages", slog.Any("error", err))
		sendError(h.logger, w, "translation provider unavailable", http.StatusBadGateway)
		return
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
