package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recipes")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileStoreRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreLayout(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Start(ctx))

	key, err := store.Create(ctx, sampleRecipe(t, "Pancakes"), "")
	require.NoError(t, err)

	// One <key>.json file holding the projection.
	raw, err := os.ReadFile(filepath.Join(store.Dir(), key+".json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Pancakes", doc["name"])
	assert.NotContains(t, doc, "id")
}

func TestFileStoreIgnoresStrayFiles(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Start(ctx))

	_, err = store.Create(ctx, sampleRecipe(t, "Pancakes"), "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "README.txt"), []byte("notes"), 0o644))

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// ClearAll removes records only, not stray files.
	require.NoError(t, store.ClearAll(ctx))
	_, err = os.Stat(filepath.Join(store.Dir(), "README.txt"))
	assert.NoError(t, err)
}
