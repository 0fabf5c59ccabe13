package service

import (
	"errors"
	"math"
	"strings"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/repository"
)

var (
	ErrEmptyName    = errors.New("ingredient name is required")
	ErrEmptyUnit    = errors.New("ingredient unit is required")
	ErrInvalidPrice = errors.New("price must be a non-negative number")
)

// draftPruner removes draft lines referencing a deleted catalog key.
type draftPruner interface {
	RemoveByIngredient(key string) (int, error)
}

// CatalogService handles ingredient catalog business logic.
type CatalogService struct {
	repo  *repository.IngredientRepository
	draft draftPruner
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo *repository.IngredientRepository, draft draftPruner) *CatalogService {
	return &CatalogService{
		repo:  repo,
		draft: draft,
	}
}

// Upsert validates and stores an ingredient. The lowercased name is the
// catalog key: a second submission with the same normalized name overwrites
// the existing record in place instead of creating a duplicate.
func (s *CatalogService) Upsert(name, unit string, price float64) (models.Ingredient, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)

	if name == "" {
		return models.Ingredient{}, ErrEmptyName
	}
	if unit == "" {
		return models.Ingredient{}, ErrEmptyUnit
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return models.Ingredient{}, ErrInvalidPrice
	}

	ing := models.Ingredient{
		Key:   strings.ToLower(name),
		Name:  name,
		Unit:  unit,
		Price: price,
	}

	if err := s.repo.Upsert(ing); err != nil {
		return models.Ingredient{}, err
	}
	return ing, nil
}

// Remove deletes an ingredient and cascades into the draft: every line
// referencing the key is removed too, and both collections are persisted.
// Removing an unknown key is a no-op.
func (s *CatalogService) Remove(key string) error {
	removed, err := s.repo.Remove(key)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	_, err = s.draft.RemoveByIngredient(key)
	return err
}

// Lookup returns the ingredient with the given key.
func (s *CatalogService) Lookup(key string) (models.Ingredient, bool) {
	return s.repo.Get(key)
}

// List returns the catalog sorted by display name.
func (s *CatalogService) List() []models.Ingredient {
	return s.repo.ListSorted()
}
