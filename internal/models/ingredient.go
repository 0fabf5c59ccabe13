package models

// Ingredient is a catalog entry: a priced unit of something recipes are built from.
// Key is the lowercased display name and is the join key used by recipe items.
type Ingredient struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// IngredientRequest is the payload for creating or updating a catalog entry.
type IngredientRequest struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}
