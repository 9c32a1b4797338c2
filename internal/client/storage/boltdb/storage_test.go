package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// setupTestStorage creates a Storage backed by a temp file
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client-test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNew_CreatesBuckets(t *testing.T) {
	s := setupTestStorage(t)

	err := s.db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket(bucketAuth))
		assert.NotNil(t, tx.Bucket(bucketSongs))
		return nil
	})
	require.NoError(t, err)
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(context.Background(), "/nonexistent-dir/db.bolt")
	assert.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "close-test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, s.Close())
}
