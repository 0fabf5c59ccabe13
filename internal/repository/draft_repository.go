package repository

import (
	"sync"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/storage"
)

// DraftRepository holds the in-progress recipe: its line items and its name.
// Items and name are persisted under separate keys, matching how each is
// edited independently.
type DraftRepository struct {
	mu    sync.RWMutex
	kv    storage.KV
	items []models.RecipeItem
	name  string
}

// NewDraftRepository loads the draft from storage.
func NewDraftRepository(kv storage.KV) *DraftRepository {
	return &DraftRepository{
		kv:    kv,
		items: storage.LoadJSON(kv, keyDraftItems, []models.RecipeItem{}),
		name:  storage.LoadJSON(kv, keyRecipeName, ""),
	}
}

// Items returns a copy of the draft lines in insertion order.
func (r *DraftRepository) Items() []models.RecipeItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.RecipeItem(nil), r.items...)
}

// Add appends a line to the draft.
func (r *DraftRepository) Add(item models.RecipeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return r.persistItems()
}

// Remove deletes the line with the given id, if present.
func (r *DraftRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := false
	for _, item := range r.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if !removed {
		return nil
	}

	r.items = kept
	return r.persistItems()
}

// RemoveByIngredient deletes every line referencing the given catalog key and
// returns how many were removed. Used by the ingredient-delete cascade.
func (r *DraftRepository) RemoveByIngredient(key string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := 0
	for _, item := range r.items {
		if item.IngredientKey == key {
			removed++
			continue
		}
		kept = append(kept, item)
	}

	if removed == 0 {
		return 0, nil
	}

	r.items = kept
	return removed, r.persistItems()
}

// Replace swaps the whole draft for the given lines.
func (r *DraftRepository) Replace(items []models.RecipeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.RecipeItem(nil), items...)
	return r.persistItems()
}

// Clear empties the draft.
func (r *DraftRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	return r.persistItems()
}

// Name returns the draft's in-progress name.
func (r *DraftRepository) Name() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.name
}

// SetName stores the draft's in-progress name as typed, untrimmed.
func (r *DraftRepository) SetName(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.name = name
	return storage.StoreJSON(r.kv, keyRecipeName, r.name)
}

// persistItems rewrites the stored draft lines. Caller must hold the write lock.
func (r *DraftRepository) persistItems() error {
	return storage.StoreJSON(r.kv, keyDraftItems, r.items)
}
