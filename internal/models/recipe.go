package models

import "time"

// RecipeItem is one line of a recipe draft. It references the catalog by
// ingredient key and keeps a snapshot of the ingredient's name and unit so the
// line stays displayable if the ingredient is later deleted.
//
// Quantity fields depend on the deployment's pricing variant: the per-size
// variant fills QtySmall/QtyMedium/QtyLarge, the multiplier variant fills Qty.
type RecipeItem struct {
	ID             string  `json:"id"`
	IngredientKey  string  `json:"ingredientKey"`
	IngredientName string  `json:"ingredientName"`
	Unit           string  `json:"unit"`
	Qty            float64 `json:"qty,omitempty"`
	QtySmall       float64 `json:"qtySmall,omitempty"`
	QtyMedium      float64 `json:"qtyMedium,omitempty"`
	QtyLarge       float64 `json:"qtyLarge,omitempty"`
}

// DraftItemRequest is the payload for adding a line to the draft.
type DraftItemRequest struct {
	IngredientKey string  `json:"ingredientKey"`
	Qty           float64 `json:"qty"`
	QtySmall      float64 `json:"qtySmall"`
	QtyMedium     float64 `json:"qtyMedium"`
	QtyLarge      float64 `json:"qtyLarge"`
}

// SavedRecipe is a named snapshot of a draft. Items is a value copy taken at
// save time; it never aliases the live draft and is frozen until deletion.
type SavedRecipe struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Items     []RecipeItem `json:"items"`
}

// SaveRecipeRequest is the payload for saving the draft as a recipe.
// Name is optional; when empty the persisted draft name is used.
type SaveRecipeRequest struct {
	Name string `json:"name"`
}
