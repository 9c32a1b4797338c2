// Package sync brings the local song cache up to date with the server.
//
// A sync run sends the cached (id, updated_at) summaries to the server's
// check-all endpoint, fetches the full record for every id the server
// classified as changed or new, and applies the whole outcome to the cache
// in one transaction. Records that fail to download are skipped; the rest
// of the run proceeds and a later run retries them.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	clientapi "github.com/lyrebird-app/lyrebird/internal/client/api"
	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// ErrSyncInProgress is returned when a sync run is already active.
var ErrSyncInProgress = errors.New("sync already in progress")

// Service defines the sync interface
type Service interface {
	// Sync performs one full reconciliation run against the server
	Sync(ctx context.Context) (*SyncResult, error)
}

// SyncResult counts what one run did to the local cache
type SyncResult struct {
	Updated int // refreshed records the server holds newer state for
	Created int // records new to this client
	Deleted int // records removed because the server no longer has them
	Skipped int // records whose download failed and were left as-is
}

// Empty reports whether the run changed nothing locally
func (r SyncResult) Empty() bool {
	return r.Updated == 0 && r.Created == 0 && r.Deleted == 0 && r.Skipped == 0
}

type service struct {
	apiClient clientapi.ClientAPI
	songStore storage.SongStorage
	logger    *slog.Logger
	running   atomic.Bool
}

// NewService creates a new sync service
func NewService(apiClient clientapi.ClientAPI, songStore storage.SongStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		songStore: songStore,
		logger:    logger,
	}
}

// Sync performs one reconciliation run. Only one run may be active at a
// time; concurrent calls fail fast with ErrSyncInProgress.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	summaries, err := s.songStore.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local summaries: %w", err)
	}

	items := make([]api.SongSummary, 0, len(summaries))
	for _, item := range summaries {
		items = append(items, api.SongSummary{ID: item.ID, UpdatedAt: item.UpdatedAt})
	}

	plan, err := s.apiClient.CheckAll(ctx, api.SongCheckAllRequest{Items: items})
	if err != nil {
		return nil, fmt.Errorf("check-all request failed: %w", err)
	}

	s.logger.Info("received reconciliation plan",
		slog.Int("to_update", len(plan.ToBeUpdated)),
		slog.Int("to_create", len(plan.ToBeCreated)),
		slog.Int("to_delete", len(plan.ToBeDeleted)))

	result := &SyncResult{}

	upserts := make([]*api.Song, 0, len(plan.ToBeUpdated)+len(plan.ToBeCreated))
	fetch := func(ids []string, counter *int) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			song, err := s.apiClient.GetSong(ctx, id)
			if err != nil {
				s.logger.Warn("failed to fetch song, skipping",
					slog.String("id", id), slog.Any("error", err))
				result.Skipped++
				continue
			}
			upserts = append(upserts, song)
			*counter++
		}
		return nil
	}

	if err := fetch(plan.ToBeUpdated, &result.Updated); err != nil {
		return nil, fmt.Errorf("sync canceled: %w", err)
	}
	if err := fetch(plan.ToBeCreated, &result.Created); err != nil {
		return nil, fmt.Errorf("sync canceled: %w", err)
	}

	result.Deleted = len(plan.ToBeDeleted)

	if len(upserts) > 0 || len(plan.ToBeDeleted) > 0 {
		if err := s.songStore.ApplyBatch(ctx, upserts, plan.ToBeDeleted); err != nil {
			return nil, fmt.Errorf("failed to apply sync batch: %w", err)
		}
	}

	s.logger.Info("sync finished",
		slog.Int("updated", result.Updated),
		slog.Int("created", result.Created),
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped))

	return result, nil
}
