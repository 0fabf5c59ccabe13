package repository

import (
	"sync"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/storage"
)

// RecipeRepository holds the saved recipe snapshots in creation order.
type RecipeRepository struct {
	mu      sync.RWMutex
	kv      storage.KV
	recipes []models.SavedRecipe
}

// NewRecipeRepository loads the saved recipes from storage.
func NewRecipeRepository(kv storage.KV) *RecipeRepository {
	return &RecipeRepository{
		kv:      kv,
		recipes: storage.LoadJSON(kv, keyRecipes, []models.SavedRecipe{}),
	}
}

// Add appends a saved recipe.
func (r *RecipeRepository) Add(recipe models.SavedRecipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipes = append(r.recipes, recipe)
	return r.persist()
}

// Remove deletes the recipe with the given id, if present.
func (r *RecipeRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.recipes[:0]
	removed := false
	for _, recipe := range r.recipes {
		if recipe.ID == id {
			removed = true
			continue
		}
		kept = append(kept, recipe)
	}

	if !removed {
		return nil
	}

	r.recipes = kept
	return r.persist()
}

// Get returns the recipe with the given id. The returned recipe's items are a
// copy, so callers can never mutate the stored snapshot.
func (r *RecipeRepository) Get(id string) (models.SavedRecipe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, recipe := range r.recipes {
		if recipe.ID == id {
			recipe.Items = append([]models.RecipeItem(nil), recipe.Items...)
			return recipe, true
		}
	}
	return models.SavedRecipe{}, false
}

// ListMostRecentFirst returns the saved recipes in reverse creation order
// without touching the stored order.
func (r *RecipeRepository) ListMostRecentFirst() []models.SavedRecipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SavedRecipe, 0, len(r.recipes))
	for i := len(r.recipes) - 1; i >= 0; i-- {
		recipe := r.recipes[i]
		recipe.Items = append([]models.RecipeItem(nil), recipe.Items...)
		out = append(out, recipe)
	}
	return out
}

// persist rewrites the stored recipes. Caller must hold the write lock.
func (r *RecipeRepository) persist() error {
	return storage.StoreJSON(r.kv, keyRecipes, r.recipes)
}
