package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/lyrebird-app/lyrebird/internal/client/storage"
	"github.com/lyrebird-app/lyrebird/internal/reconcile"
	"github.com/lyrebird-app/lyrebird/pkg/api"
)

// SaveSong inserts or overwrites one cached song
func (s *Storage) SaveSong(ctx context.Context, song *api.Song) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return putSong(tx, song)
	})
}

// GetSong retrieves a cached song by id
func (s *Storage) GetSong(ctx context.Context, id string) (*api.Song, error) {
	var song *api.Song

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSongs)
		if bucket == nil {
			return fmt.Errorf("songs bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSongNotFound
		}

		song = &api.Song{}
		if err := json.Unmarshal(data, song); err != nil {
			return fmt.Errorf("failed to unmarshal song: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return song, nil
}

// ListSongs returns all cached songs ordered by title
func (s *Storage) ListSongs(ctx context.Context) ([]*api.Song, error) {
	var songs []*api.Song

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSongs)
		if bucket == nil {
			return fmt.Errorf("songs bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			song := &api.Song{}
			if err := json.Unmarshal(v, song); err != nil {
				return fmt.Errorf("failed to unmarshal song %s: %w", k, err)
			}
			songs = append(songs, song)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(songs, func(i, j int) bool {
		if songs[i].Title != songs[j].Title {
			return songs[i].Title < songs[j].Title
		}
		return songs[i].ID < songs[j].ID
	})

	return songs, nil
}

// ListSummaries returns the (id, updated_at) pairs of every cached song
func (s *Storage) ListSummaries(ctx context.Context) ([]reconcile.Item, error) {
	var items []reconcile.Item

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSongs)
		if bucket == nil {
			return fmt.Errorf("songs bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			song := &api.Song{}
			if err := json.Unmarshal(v, song); err != nil {
				return fmt.Errorf("failed to unmarshal song %s: %w", k, err)
			}
			items = append(items, reconcile.Item{ID: song.ID, UpdatedAt: song.UpdatedAt})
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteSong removes a cached song by id
func (s *Storage) DeleteSong(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSongs)
		if bucket == nil {
			return fmt.Errorf("songs bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrSongNotFound
		}

		return bucket.Delete([]byte(id))
	})
}

// ApplyBatch applies a reconciliation outcome in a single bolt
// transaction, so a crash mid-sync never leaves the cache half-updated.
// Deletes of ids that are already absent are ignored.
func (s *Storage) ApplyBatch(ctx context.Context, upserts []*api.Song, deletes []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSongs)
		if bucket == nil {
			return fmt.Errorf("songs bucket not found")
		}

		for _, song := range upserts {
			if err := putSong(tx, song); err != nil {
				return err
			}
		}

		for _, id := range deletes {
			if err := bucket.Delete([]byte(id)); err != nil {
				return fmt.Errorf("failed to delete song %s: %w", id, err)
			}
		}

		return nil
	})
}

func putSong(tx *bbolt.Tx, song *api.Song) error {
	bucket := tx.Bucket(bucketSongs)
	if bucket == nil {
		return fmt.Errorf("songs bucket not found")
	}

	data, err := json.Marshal(song)
	if err != nil {
		return fmt.Errorf("failed to marshal song: %w", err)
	}

	if err := bucket.Put([]byte(song.ID), data); err != nil {
		return fmt.Errorf("failed to save song: %w", err)
	}

	return nil
}
