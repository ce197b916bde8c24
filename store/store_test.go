package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fs, err := Open(Config{Backend: BackendFile, Path: filepath.Join(dir, "files")})
	require.NoError(t, err)
	db, err := Open(Config{Backend: BackendSQLite, Path: filepath.Join(dir, "db", "mdpad.db")})
	require.NoError(t, err)

	t.Cleanup(func() {
		fs.Close()
		db.Close()
	})
	return map[string]Store{BackendFile: fs, BackendSQLite: db}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Load(ctx, ContentKey)
			require.NoError(t, err)
			assert.False(t, ok, "missing key must report ok=false")

			require.NoError(t, s.Save(ctx, ContentKey, "# Draft\n\n- one"))
			got, ok, err := s.Load(ctx, ContentKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "# Draft\n\n- one", got)

			require.NoError(t, s.Save(ctx, ContentKey, ""))
			got, ok, err = s.Load(ctx, ContentKey)
			require.NoError(t, err)
			assert.True(t, ok, "empty value is still present")
			assert.Empty(t, got)
		})
	}
}

func TestStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	keys := []string{"", "../x", "a/b", ".hidden", "with space"}
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range keys {
				err := s.Save(ctx, k, "v")
				assert.ErrorIs(t, err, ErrInvalidKey, "save key %q", k)
				_, _, err = s.Load(ctx, k)
				assert.ErrorIs(t, err, ErrInvalidKey, "load key %q", k)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Config{Backend: "redis", Path: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestFileStore_AtomicWriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "doc", "x"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.md", entries[0].Name())
}

func TestFileStore_Closed(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Save(context.Background(), "doc", "x"), ErrClosed)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Save(ctx, "doc", "x"))
		})
	}
}

func TestSQLiteStore_Memory(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "a", "1"))
	require.NoError(t, s.Save(ctx, "a", "2"))
	got, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", got)
}
