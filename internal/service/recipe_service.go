package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/repository"
)

var (
	ErrEmptyRecipeName = errors.New("recipe name is required")
	ErrEmptyDraft      = errors.New("draft must contain at least one item")
	ErrRecipeNotFound  = errors.New("recipe not found")
)

// draftAccess is what saving and loading recipes needs from the draft.
type draftAccess interface {
	Items() []models.RecipeItem
	Name() string
	Clear() error
	LoadFrom(recipe models.SavedRecipe) error
}

// RecipeService handles saved recipe snapshots.
type RecipeService struct {
	repo  *repository.RecipeRepository
	draft draftAccess
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(repo *repository.RecipeRepository, draft draftAccess) *RecipeService {
	return &RecipeService{
		repo:  repo,
		draft: draft,
	}
}

// Save snapshots the current draft under the given name and clears the draft.
// An empty name falls back to the persisted draft name; if that is empty too,
// or the draft has no items, nothing happens.
func (s *RecipeService) Save(name string) (models.SavedRecipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(s.draft.Name())
	}
	if name == "" {
		return models.SavedRecipe{}, ErrEmptyRecipeName
	}

	items := s.draft.Items()
	if len(items) == 0 {
		return models.SavedRecipe{}, ErrEmptyDraft
	}

	recipe := models.SavedRecipe{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Items:     items,
	}

	if err := s.repo.Add(recipe); err != nil {
		return models.SavedRecipe{}, err
	}
	if err := s.draft.Clear(); err != nil {
		return models.SavedRecipe{}, err
	}
	return recipe, nil
}

// Load copies a saved recipe back into the draft.
func (s *RecipeService) Load(id string) (models.SavedRecipe, error) {
	recipe, ok := s.repo.Get(id)
	if !ok {
		return models.SavedRecipe{}, ErrRecipeNotFound
	}

	if err := s.draft.LoadFrom(recipe); err != nil {
		return models.SavedRecipe{}, err
	}
	return recipe, nil
}

// Remove deletes a saved recipe. An unknown id is a no-op.
func (s *RecipeService) Remove(id string) error {
	return s.repo.Remove(id)
}

// List returns the saved recipes, most recently saved first.
func (s *RecipeService) List() []models.SavedRecipe {
	return s.repo.ListMostRecentFirst()
}
