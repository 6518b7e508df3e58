package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/platewise/recipe-service/internal/model"
)

// MemoryStore keeps recipes in a process-local map. Nothing survives a
// restart. Records are held as projections so every read materializes a
// fresh RecipeEntry.
type MemoryStore struct {
	mu sync.RWMutex
	db map[string]map[string]any
}

// NewMemoryStore creates an empty in-memory engine.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: make(map[string]map[string]any)}
}

func (s *MemoryStore) Start(ctx context.Context) error { return nil }
func (s *MemoryStore) Stop(ctx context.Context) error  { return nil }

func (s *MemoryStore) Create(ctx context.Context, recipe *model.RecipeEntry, key string) (string, error) {
	if key == "" {
		key = newKey()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.db[key]; ok {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}
	s.db[key] = recipe.Projection()
	return key, nil
}

func (s *MemoryStore) Read(ctx context.Context, key string) (*model.RecipeEntry, error) {
	s.mu.RLock()
	doc, ok := s.db[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return model.FromProjection(doc)
}

func (s *MemoryStore) ReadAll(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	docs := make(map[string]map[string]any, len(s.db))
	for key, doc := range s.db {
		docs[key] = doc
	}
	s.mu.RUnlock()

	records := make([]Record, 0, len(docs))
	for key, doc := range docs {
		recipe, err := model.FromProjection(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Key: key, Recipe: recipe})
	}
	return records, nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, recipe *model.RecipeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.db[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	s.db[key] = recipe.Projection()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.db[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.db, key)
	return nil
}

func (s *MemoryStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = make(map[string]map[string]any)
	return nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.db)), nil
}
