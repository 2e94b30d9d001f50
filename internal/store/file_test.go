package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prep.json")
	s := NewFileStore(path)

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "key", []byte(`{"a":1}`)))

	value, found, err := s.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(value))
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prep.json")

	require.NoError(t, NewFileStore(path).Set(ctx, "key", []byte(`"value"`)))

	value, found, err := NewFileStore(path).Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"value"`, string(value))
}

func TestFileStore_CorruptFileBehavesAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prep.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	s := NewFileStore(path)
	_, found, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)

	// Writes still work after corruption; the file is rebuilt.
	require.NoError(t, s.Set(ctx, "key", []byte(`1`)))
	value, found, err := s.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", string(value))
}

func TestFileStore_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "prep.json")

	require.NoError(t, NewFileStore(path).Set(ctx, "key", []byte(`true`)))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte(`"abc"`)
	require.NoError(t, s.Set(ctx, "key", original))
	original[1] = 'x'

	value, found, err := s.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"abc"`, string(value))
}
