// Package translate proxies lyrics translation to a DeepL-compatible
// provider. Language catalogs are cached in memory because they change
// rarely and every translation request needs them for validation.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// ErrUnknownLanguage indicates a language code the provider does not support
var ErrUnknownLanguage = errors.New("unknown language code")

const (
	// DefaultBaseURL is the free-tier DeepL endpoint
	DefaultBaseURL = "https://api-free.deepl.com"

	languagesCacheTTL = 7 * 24 * time.Hour
	requestTimeout    = 30 * time.Second
)

// Config holds translation provider settings.
type Config struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond float64
}

// Service talks to the translation provider.
type Service struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	cache      *languageCache
	baseURL    string
	apiKey     string
}

// NewService creates a translation service. The rate limiter throttles
// outgoing provider calls so one chatty client cannot exhaust the quota.
func NewService(cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("translation API key is not set")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   newLanguageCache(languagesCacheTTL),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// AvailableLanguages returns the provider's source and target language
// lists, served from cache when fresh.
func (s *Service) AvailableLanguages(ctx context.Context) (*api.AvailableLanguages, error) {
	if cached, ok := s.cache.get(); ok {
		return cached, nil
	}

	sourceLanguages, err := s.fetchLanguages(ctx, "source")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source languages: %w", err)
	}

	targetLanguages, err := s.fetchLanguages(ctx, "target")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch target languages: %w", err)
	}

	languages := &api.AvailableLanguages{
		SourceLanguages: sourceLanguages,
		TargetLanguages: targetLanguages,
	}

	s.logger.Info("refreshed language catalog",
		"source_languages", len(sourceLanguages),
		"target_languages", len(targetLanguages))

	s.cache.set(languages)

	return languages, nil
}

// Translate sends text to the provider line by line and returns the
// translated lines together with the detected source languages.
// Unknown from/to codes produce ErrUnknownLanguage.
func (s *Service) Translate(ctx context.Context, req api.TranslationRequest) (*api.TranslationResponse, error) {
	languages, err := s.AvailableLanguages(ctx)
	if err != nil {
		return nil, err
	}

	if !languageKnown(languages, req.To) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, req.To)
	}
	if req.From != "" && !languageKnown(languages, req.From) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, req.From)
	}

	lines := strings.Split(req.Text, "\n")

	providerReq := providerTranslateRequest{
		Text:       lines,
		TargetLang: req.To,
		SourceLang: req.From,
	}

	var providerResp providerTranslateResponse
	if err := s.doRequest(ctx, http.MethodPost, "/v2/translate", providerReq, &providerResp); err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}

	translatedLines := make([]string, 0, len(providerResp.Translations))
	detectedCodes := map[string]bool{}
	var detected []api.Language

	for _, translation := range providerResp.Translations {
		translatedLines = append(translatedLines, translation.Text)

		code := strings.ToLower(translation.DetectedSourceLanguage)
		if code == "" || detectedCodes[code] {
			continue
		}
		detectedCodes[code] = true
		if language, ok := lookupLanguage(languages, code); ok {
			detected = append(detected, language)
		}
	}

	return &api.TranslationResponse{
		TranslatedTextLines: translatedLines,
		DetectedLanguages:   detected,
	}, nil
}

// fetchLanguages retrieves one language catalog ("source" or "target").
// English is filtered out: the application translates into or out of the
// user's languages, and English is handled as the pivot on the provider
// side.
func (s *Service) fetchLanguages(ctx context.Context, kind string) ([]api.Language, error) {
	var providerLanguages []providerLanguage
	path := "/v2/languages?type=" + kind
	if err := s.doRequest(ctx, http.MethodGet, path, nil, &providerLanguages); err != nil {
		return nil, err
	}

	languages := make([]api.Language, 0, len(providerLanguages))
	for _, l := range providerLanguages {
		code := strings.ToLower(l.Language)
		if code == "en" {
			continue
		}
		languages = append(languages, api.Language{
			Code: code,
			Name: l.Name,
		})
	}

	return languages, nil
}

// doRequest performs one provider HTTP call under the rate limiter.
func (s *Service) doRequest(ctx context.Context, method, path string, body, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "DeepL-Auth-Key "+s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
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
		return fmt.Errorf("provider error (%d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func languageKnown(languages *api.AvailableLanguages, code string) bool {
	_, ok := lookupLanguage(languages, code)
	return ok
}

func lookupLanguage(languages *api.AvailableLanguages, code string) (api.Language, bool) {
	code = strings.ToLower(code)
	for _, l := range languages.SourceLanguages {
		if l.Code == code {
			return l, true
		}
	}
	for _, l := range languages.TargetLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return api.Language{}, false
}

// Provider wire types (DeepL v2 API)

type providerLanguage struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

type providerTranslateRequest struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
	SourceLang string   `json:"source_lang,omitempty"`
}

type providerTranslateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}
