package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/recipe-service/internal/model"
	"github.com/platewise/recipe-service/internal/storage"
)

func newService(t *testing.T) *RecipeService {
	t.Helper()
	svc := NewRecipeService(storage.NewMemoryStore())
	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, svc.Stop(context.Background()))
	})
	return svc
}

func validDoc() map[string]any {
	return map[string]any{
		"name":         "Toast",
		"ingredients":  []any{"bread"},
		"instructions": []any{"toast it"},
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	key, err := svc.CreateRecipe(ctx, validDoc())
	require.NoError(t, err)
	assert.Len(t, key, 32)

	got, err := svc.GetRecipe(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Toast", got["name"])
	assert.Equal(t, []string{"bread"}, got["ingredients"])
}

func TestCreateRejectsInvalidBeforeStorage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewRecipeService(store)
	require.NoError(t, svc.Start(ctx))

	doc := validDoc()
	delete(doc, "ingredients")

	_, err := svc.CreateRecipe(ctx, doc)
	assert.ErrorIs(t, err, model.ErrInvalid)

	// Nothing reached the engine.
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateValidatesAndReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	key, err := svc.CreateRecipe(ctx, validDoc())
	require.NoError(t, err)

	bad := validDoc()
	bad["rating"] = "five"
	assert.ErrorIs(t, svc.UpdateRecipe(ctx, key, bad), model.ErrInvalid)

	good := validDoc()
	good["name"] = "French Toast"
	require.NoError(t, svc.UpdateRecipe(ctx, key, good))

	got, err := svc.GetRecipe(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "French Toast", got["name"])
}

func TestStorageConditionsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.GetRecipe(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, svc.UpdateRecipe(ctx, "missing", validDoc()), storage.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, "missing"), storage.ErrNotFound)
}

func TestGetAllAndClearAll(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	keys := map[string]bool{}
	for i := 0; i < 3; i++ {
		key, err := svc.CreateRecipe(ctx, validDoc())
		require.NoError(t, err)
		keys[key] = true
	}

	all, err := svc.GetAllRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for key := range all {
		assert.True(t, keys[key])
	}

	require.NoError(t, svc.ClearAllRecipes(ctx))
	all, err = svc.GetAllRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
