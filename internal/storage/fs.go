package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/platewise/recipe-service/internal/model"
)

const fileExt = ".json"

// FileStore keeps one <key>.json file per record under a configured
// directory. Each file holds the recipe's projection; writes replace the
// whole file.
type FileStore struct {
	dir string
}

// NewFileStore ensures dir exists and is a writable directory, creating it
// when absent. A path that exists as a regular file, or a directory that
// cannot be written to, is a configuration error.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recipe store %q is not a writable directory: %w", dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("recipe store %q is not a writable directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return nil, fmt.Errorf("recipe store %q is not a writable directory: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return &FileStore{dir: dir}, nil
}

// Dir reports the configured store directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) Start(ctx context.Context) error { return nil }
func (s *FileStore) Stop(ctx context.Context) error  { return nil }

func (s *FileStore) fileName(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

func (s *FileStore) fileExists(key string) bool {
	_, err := os.Stat(s.fileName(key))
	return err == nil
}

func (s *FileStore) writeFile(key string, recipe *model.RecipeEntry) error {
	raw, err := json.Marshal(recipe.Projection())
	if err != nil {
		return fmt.Errorf("encode recipe %s: %w", key, err)
	}
	if err := os.WriteFile(s.fileName(key), raw, 0o644); err != nil {
		return fmt.Errorf("write recipe %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) readFile(key string) (*model.RecipeEntry, error) {
	raw, err := os.ReadFile(s.fileName(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("read recipe %s: %w", key, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", key, err)
	}
	return model.FromProjection(doc)
}

func (s *FileStore) Create(ctx context.Context, recipe *model.RecipeEntry, key string) (string, error) {
	if key == "" {
		key = newKey()
	}
	if s.fileExists(key) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}
	if err := s.writeFile(key, recipe); err != nil {
		return "", err
	}
	return key, nil
}

func (s *FileStore) Read(ctx context.Context, key string) (*model.RecipeEntry, error) {
	return s.readFile(key)
}

func (s *FileStore) ReadAll(ctx context.Context) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list recipe store %q: %w", s.dir, err)
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key := strings.TrimSuffix(name, fileExt)
		recipe, err := s.readFile(key)
		if err != nil {
			// Deleted between listing and reading.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, Record{Key: key, Recipe: recipe})
	}
	return records, nil
}

func (s *FileStore) Update(ctx context.Context, key string, recipe *model.RecipeEntry) error {
	if !s.fileExists(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return s.writeFile(key, recipe)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if !s.fileExists(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := os.Remove(s.fileName(key)); err != nil {
		return fmt.Errorf("delete recipe %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) ClearAll(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("list recipe store %q: %w", s.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("clear recipe store: %w", err)
		}
	}
	return nil
}

func (s *FileStore) Count(ctx context.Context) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("list recipe store %q: %w", s.dir, err)
	}
	var n int64
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), fileExt) {
			n++
		}
	}
	return n, nil
}
