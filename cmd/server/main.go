package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lyrebird-app/lyrebird/internal/server/config"
	"github.com/lyrebird-app/lyrebird/internal/server/handlers"
	"github.com/lyrebird-app/lyrebird/internal/server/middleware"
	"github.com/lyrebird-app/lyrebird/internal/server/objstore"
	"github.com/lyrebird-app/lyrebird/internal/server/storage/sqlite"
	"github.com/lyrebird-app/lyrebird/internal/server/translate"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", ".", "Directory holding the optional .env file")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "lyrebird-server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg.Log)
	logger.Info("starting lyrebird server",
		"version", Version,
		"addr", cfg.Server.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	objects, err := objstore.New(ctx, objstore.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to object storage: %w", err)
	}

	translator, err := translate.NewService(translate.Config{
		APIKey:            cfg.Translate.APIKey,
		BaseURL:           cfg.Translate.BaseURL,
		RequestsPerSecond: cfg.Translate.RequestsPerSecond,
	}, logger)
	if err != nil {
		// The rest of the API works without a translation provider
		logger.Warn("translation disabled", "error", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(cfg.Auth.JWTSecret),
		AccessTokenTTL:  time.Duration(cfg.Auth.AccessTokenTTLMin) * time.Minute,
		RefreshTokenTTL: time.Duration(cfg.Auth.RefreshTokenTTLHr) * time.Hour,
	}

	mux := buildMux(logger, store, objects, translator, jwtConfig)

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(cfg.Server.RateLimit, time.Duration(cfg.Server.RateWindowSec)*time.Second, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	// Periodically purge expired refresh tokens
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := store.DeleteExpiredTokens(ctx)
				if err != nil {
					logger.Error("failed to purge expired tokens", "error", err)
					continue
				}
				if n > 0 {
					logger.Info("purged expired refresh tokens", "count", n)
				}
			}
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// buildMux wires every route to its handler. Protected routes go through
// the auth middleware; register, login, refresh and health do not.
func buildMux(
	logger *slog.Logger,
	store *sqlite.Storage,
	objects objstore.ObjectStore,
	translator *translate.Service,
	jwtConfig handlers.JWTConfig,
) *http.ServeMux {
	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	songsHandler := handlers.NewSongsHandler(logger, store, store, objects)
	coversHandler := handlers.NewCoversHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/auth/me", protected(authHandler.Me))

	mux.Handle("GET /api/v1/songs", protected(songsHandler.List))
	mux.Handle("GET /api/v1/songs/summary", protected(songsHandler.Summaries))
	mux.Handle("POST /api/v1/songs", protected(songsHandler.Create))
	mux.Handle("POST /api/v1/songs/check-all", protected(songsHandler.CheckAll))
	mux.Handle("GET /api/v1/songs/{id}", protected(songsHandler.Get))
	mux.Handle("PATCH /api/v1/songs/{id}", protected(songsHandler.Update))
	mux.Handle("DELETE /api/v1/songs/{id}", protected(songsHandler.Delete))
	mux.Handle("GET /api/v1/songs/{id}/check", protected(songsHandler.Check))

	mux.Handle("GET /api/v1/covers/{id}", protected(coversHandler.Get))

	if translator != nil {
		translateHandler := handlers.NewTranslateHandler(logger, translator)
		mux.Handle("POST /api/v1/translate", protected(translateHandler.Translate))
		mux.Handle("GET /api/v1/translate/languages", protected(translateHandler.Languages))
	}

	return mux
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func printVersion() {
	fmt.Printf("Lyrebird Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
