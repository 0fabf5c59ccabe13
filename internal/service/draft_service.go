package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/pricing"
	"github.com/plateworks/menucost/internal/repository"
)

var (
	ErrUnknownIngredient = errors.New("ingredient not found in catalog")
	ErrInvalidQuantity   = errors.New("quantities must be non-negative numbers")
	ErrZeroQuantities    = errors.New("at least one quantity must be positive")
)

// ingredientSource resolves catalog keys for validation and costing.
type ingredientSource interface {
	Get(key string) (models.Ingredient, bool)
}

// configSource provides the current size configuration.
type configSource interface {
	Get() models.SizeConfig
}

// DraftService handles the in-progress recipe draft.
type DraftService struct {
	repo    *repository.DraftRepository
	catalog ingredientSource
	config  configSource
	variant pricing.Variant
}

// NewDraftService creates a new draft service for the given pricing variant.
func NewDraftService(repo *repository.DraftRepository, catalog ingredientSource, config configSource, variant pricing.Variant) *DraftService {
	return &DraftService{
		repo:    repo,
		catalog: catalog,
		config:  config,
		variant: variant,
	}
}

// AddItem validates a line against the current catalog and appends it to the
// draft, snapshotting the ingredient's name and unit for fallback display.
// The quantities checked are the ones the deployment's variant uses.
func (s *DraftService) AddItem(req models.DraftItemRequest) (models.RecipeItem, error) {
	ing, ok := s.catalog.Get(req.IngredientKey)
	if !ok {
		return models.RecipeItem{}, ErrUnknownIngredient
	}

	var qtys []float64
	if s.variant == pricing.VariantMultiplier {
		qtys = []float64{req.Qty}
	} else {
		qtys = []float64{req.QtySmall, req.QtyMedium, req.QtyLarge}
	}

	allZero := true
	for _, q := range qtys {
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return models.RecipeItem{}, ErrInvalidQuantity
		}
		if q > 0 {
			allZero = false
		}
	}
	if allZero {
		return models.RecipeItem{}, ErrZeroQuantities
	}

	item := models.RecipeItem{
		ID:             uuid.New().String(),
		IngredientKey:  ing.Key,
		IngredientName: ing.Name,
		Unit:           ing.Unit,
	}
	if s.variant == pricing.VariantMultiplier {
		item.Qty = req.Qty
	} else {
		item.QtySmall = req.QtySmall
		item.QtyMedium = req.QtyMedium
		item.QtyLarge = req.QtyLarge
	}

	if err := s.repo.Add(item); err != nil {
		return models.RecipeItem{}, err
	}
	return item, nil
}

// RemoveItem deletes a line by id. An unknown id is a no-op.
func (s *DraftService) RemoveItem(id string) error {
	return s.repo.Remove(id)
}

// Clear empties the draft.
func (s *DraftService) Clear() error {
	return s.repo.Clear()
}

// Items returns a copy of the draft lines.
func (s *DraftService) Items() []models.RecipeItem {
	return s.repo.Items()
}

// Name returns the draft's in-progress name.
func (s *DraftService) Name() string {
	return s.repo.Name()
}

// SetName persists the draft name exactly as typed.
func (s *DraftService) SetName(name string) error {
	return s.repo.SetName(name)
}

// LoadFrom replaces the draft with a copy of the saved recipe's items, each
// under a fresh id so later edits never touch the saved snapshot, and takes
// over the recipe's name.
func (s *DraftService) LoadFrom(recipe models.SavedRecipe) error {
	items := make([]models.RecipeItem, 0, len(recipe.Items))
	for _, item := range recipe.Items {
		item.ID = uuid.New().String()
		items = append(items, item)
	}

	if err := s.repo.Replace(items); err != nil {
		return err
	}
	return s.repo.SetName(recipe.Name)
}

// View resolves the draft against the current catalog and configuration.
func (s *DraftService) View() pricing.DraftView {
	lines, totals := pricing.LineCosts(s.variant, s.repo.Items(), s.catalog.Get, s.config.Get())
	return pricing.DraftView{
		Name:   s.repo.Name(),
		Lines:  lines,
		Totals: totals,
	}
}

// Breakdown computes the current size breakdown. Pure: derived from catalog,
// draft, and config state at call time.
func (s *DraftService) Breakdown() []pricing.Tier {
	return pricing.Breakdown(s.variant, s.repo.Items(), s.catalog.Get, s.config.Get())
}
