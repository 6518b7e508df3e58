package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFSStorage(t *testing.T) {
	cfg, err := Parse([]byte(`
service:
  addr: ":9090"
recipes_db:
  fs: /var/lib/recipes
`))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Service.Addr)
	assert.Equal(t, KindFS, cfg.RecipesDB.Kind)
	assert.Equal(t, "/var/lib/recipes", cfg.RecipesDB.Path)
}

func TestParseMemoryStorage(t *testing.T) {
	cfg, err := Parse([]byte(`
recipes_db:
  memory: null
`))
	require.NoError(t, err)
	assert.Equal(t, KindMemory, cfg.RecipesDB.Kind)
	assert.Empty(t, cfg.RecipesDB.Path)
}

func TestParseSQLStorage(t *testing.T) {
	cfg, err := Parse([]byte(`
recipes_db:
  sql: /var/lib/recipes.db
`))
	require.NoError(t, err)
	assert.Equal(t, KindSQL, cfg.RecipesDB.Kind)
	assert.Equal(t, "/var/lib/recipes.db", cfg.RecipesDB.Path)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(``))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Service.Addr)
	assert.Equal(t, KindMemory, cfg.RecipesDB.Kind)
	assert.False(t, cfg.Service.Debug)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte(`
recipes_db:
  redis: localhost:6379
`))
	assert.Error(t, err)
}

func TestParseRejectsMultipleKinds(t *testing.T) {
	_, err := Parse([]byte(`
recipes_db:
  memory: null
  fs: /var/lib/recipes
`))
	assert.Error(t, err)
}

func TestParseRejectsMissingPath(t *testing.T) {
	_, err := Parse([]byte(`
recipes_db:
  fs: null
`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
recipes_db:
  sql: null
`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
service:
  addr: ":8081"
  debug: true
recipes_db:
  memory: null
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Service.Addr)
	assert.True(t, cfg.Service.Debug)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
