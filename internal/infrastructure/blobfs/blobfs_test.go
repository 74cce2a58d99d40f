package blobfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotolio/internal/domain/repository/blob"
	"fotolio/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(Config{Root: t.TempDir()}, logger.NewNop())
	require.NoError(t, err)

	return store
}

func TestURL(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	assert.Equal(t, "/uploads/64a1f0b2c3d4e5f601234567/praia.jpg",
		store.URL("64a1f0b2c3d4e5f601234567", "praia.jpg"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte("raw photo bytes")

	url, err := store.Save(ctx, payload, "praia.jpg", "owner")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/owner/praia.jpg", url)

	got, err := store.Load(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := os.Stat(filepath.Join(store.root, "owner", "praia.jpg"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), info.Size())
}

func TestSaveOverwritesSilently(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, []byte("first"), "praia.jpg", "owner")
	require.NoError(t, err)

	url, err := store.Save(ctx, []byte("second"), "praia.jpg", "owner")
	require.NoError(t, err)

	got, err := store.Load(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSaveRejectsEmptyFilename(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Save(context.Background(), []byte("bytes"), "  ", "owner")
	require.Error(t, err)
}

func TestLoadMissingBlob(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Load(context.Background(), "/uploads/owner/missing.jpg")
	require.ErrorIs(t, err, blob.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Save(ctx, []byte("bytes"), "montanha.jpg", "owner")
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, url)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second delete observes the blob already absent.
	deleted, err = store.Delete(ctx, url)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = store.Load(ctx, url)
	require.ErrorIs(t, err, blob.ErrNotFound)
}

func TestPhysicalPathStaysUnderRoot(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Load(context.Background(), "/uploads/../../etc/passwd")
	require.Error(t, err)
	require.NotErrorIs(t, err, blob.ErrNotFound)

	_, err = store.Delete(context.Background(), "/uploads/../escape")
	require.Error(t, err)
}
