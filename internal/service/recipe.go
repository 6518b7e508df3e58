// Package service orchestrates schema validation, the data model and the
// configured storage engine. It is the only package the HTTP layer touches.
package service

import (
	"context"

	"github.com/platewise/recipe-service/internal/model"
	"github.com/platewise/recipe-service/internal/schema"
	"github.com/platewise/recipe-service/internal/storage"
)

// RecipeService handles recipe operations against one storage engine.
type RecipeService struct {
	store storage.Store
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(store storage.Store) *RecipeService {
	return &RecipeService{store: store}
}

// Start acquires the storage engine's resources.
func (s *RecipeService) Start(ctx context.Context) error {
	return s.store.Start(ctx)
}

// Stop releases the storage engine's resources.
func (s *RecipeService) Stop(ctx context.Context) error {
	return s.store.Stop(ctx)
}

// CreateRecipe validates an external recipe document, stores it under a
// fresh key and returns the key.
func (s *RecipeService) CreateRecipe(ctx context.Context, doc map[string]any) (string, error) {
	if err := schema.Validate(doc); err != nil {
		return "", err
	}
	recipe, err := model.FromProjection(doc)
	if err != nil {
		return "", err
	}
	return s.store.Create(ctx, recipe, "")
}

// GetRecipe returns the external representation of one stored recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, key string) (map[string]any, error) {
	recipe, err := s.store.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	return recipe.Projection(), nil
}

// GetAllRecipes returns every stored recipe keyed by its identifier.
func (s *RecipeService) GetAllRecipes(ctx context.Context) (map[string]map[string]any, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	all := make(map[string]map[string]any, len(records))
	for _, record := range records {
		all[record.Key] = record.Recipe.Projection()
	}
	return all, nil
}

// UpdateRecipe validates an external recipe document and replaces the record
// stored under key with it.
func (s *RecipeService) UpdateRecipe(ctx context.Context, key string, doc map[string]any) error {
	if err := schema.Validate(doc); err != nil {
		return err
	}
	recipe, err := model.FromProjection(doc)
	if err != nil {
		return err
	}
	return s.store.Update(ctx, key, recipe)
}

// DeleteRecipe removes the record stored under key.
func (s *RecipeService) DeleteRecipe(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}

// ClearAllRecipes removes every stored record.
func (s *RecipeService) ClearAllRecipes(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}
