// Package repository keeps each persisted collection in memory and rewrites
// its key-value entry after every mutation.
package repository

import (
	"sync"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/storage"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Storage keys for the persisted collections.
const (
	keyIngredients = "ingredients"
	keyDraftItems  = "draftRecipeItems"
	keyRecipeName  = "recipeName"
	keyRecipes     = "recipes"
	keySizeConfig  = "sizeConfig"
)

// IngredientRepository holds the ingredient catalog. Insertion order is
// preserved in storage; sorted views are produced on read.
type IngredientRepository struct {
	mu    sync.RWMutex
	kv    storage.KV
	items []models.Ingredient
}

// NewIngredientRepository loads the catalog from storage, starting empty when
// nothing usable is stored.
func NewIngredientRepository(kv storage.KV) *IngredientRepository {
	return &IngredientRepository{
		kv:    kv,
		items: storage.LoadJSON(kv, keyIngredients, []models.Ingredient{}),
	}
}

// Upsert overwrites the record sharing ing's key or appends a new one.
func (r *IngredientRepository) Upsert(ing models.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].Key == ing.Key {
			r.items[i] = ing
			return r.persist()
		}
	}

	r.items = append(r.items, ing)
	return r.persist()
}

// Remove deletes the record with the given key. Reports whether a record was
// actually removed; removing an absent key is a no-op and does not persist.
func (r *IngredientRepository) Remove(key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := false
	for _, ing := range r.items {
		if ing.Key == key {
			removed = true
			continue
		}
		kept = append(kept, ing)
	}

	if !removed {
		return false, nil
	}

	r.items = kept
	return true, r.persist()
}

// Get returns the ingredient with the given key.
func (r *IngredientRepository) Get(key string) (models.Ingredient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ing := range r.items {
		if ing.Key == key {
			return ing, true
		}
	}
	return models.Ingredient{}, false
}

// ListSorted returns a copy of the catalog ordered by display name using
// locale-style collation, leaving the stored order untouched.
func (r *IngredientRepository) ListSorted() []models.Ingredient {
	r.mu.RLock()
	out := append([]models.Ingredient(nil), r.items...)
	r.mu.RUnlock()

	c := collate.New(language.Und)
	c.Sort(ingredientsByName(out))
	return out
}

// persist rewrites the stored catalog. Caller must hold the write lock.
func (r *IngredientRepository) persist() error {
	return storage.StoreJSON(r.kv, keyIngredients, r.items)
}

// ingredientsByName adapts a slice to the collate.Lister interface.
type ingredientsByName []models.Ingredient

func (s ingredientsByName) Len() int           { return len(s) }
func (s ingredientsByName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ingredientsByName) Bytes(i int) []byte { return []byte(s[i].Name) }
