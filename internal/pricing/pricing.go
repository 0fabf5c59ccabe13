// Package pricing implements the size pricing model: pure functions that
// combine draft lines, catalog prices, and the size configuration into
// per-tier food costs and suggested menu prices. Nothing here has side
// effects or is ever persisted; results are re-derived from current state on
// every call.
package pricing

import "github.com/plateworks/menucost/internal/models"

// Variant selects how a recipe line's quantities map onto size tiers.
type Variant string

const (
	// VariantPerSize gives every line an independent quantity per tier.
	VariantPerSize Variant = "per-size"
	// VariantMultiplier gives every line one quantity; tier costs are the
	// base total scaled by the configured per-tier multipliers.
	VariantMultiplier Variant = "multiplier"
)

// Tier names in their fixed canonical order.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// Lookup resolves a catalog key to its ingredient.
type Lookup func(key string) (models.Ingredient, bool)

// Tier is one row of the size breakdown. Multiplier is only set by the
// multiplier variant; the per-size variant has no meaningful multiplier.
type Tier struct {
	Size           string  `json:"size"`
	Multiplier     float64 `json:"multiplier,omitempty"`
	FoodCost       float64 `json:"foodCost"`
	SuggestedPrice float64 `json:"suggestedPrice"`
}

// Breakdown computes the per-tier costs for the given variant. Tiers are
// always returned in Small, Medium, Large order.
func Breakdown(variant Variant, items []models.RecipeItem, lookup Lookup, cfg models.SizeConfig) []Tier {
	if variant == VariantMultiplier {
		return MultiplierBreakdown(items, lookup, cfg)
	}
	return PerSizeBreakdown(items, lookup, cfg)
}

// PerSizeBreakdown sums each line's per-tier quantity times its unit cost.
func PerSizeBreakdown(items []models.RecipeItem, lookup Lookup, cfg models.SizeConfig) []Tier {
	var small, medium, large float64
	for _, item := range items {
		cost := unitCost(item, lookup)
		small += item.QtySmall * cost
		medium += item.QtyMedium * cost
		large += item.QtyLarge * cost
	}

	return []Tier{
		{Size: SizeSmall, FoodCost: small, SuggestedPrice: suggestedPrice(small, cfg.FoodCostPercent)},
		{Size: SizeMedium, FoodCost: medium, SuggestedPrice: suggestedPrice(medium, cfg.FoodCostPercent)},
		{Size: SizeLarge, FoodCost: large, SuggestedPrice: suggestedPrice(large, cfg.FoodCostPercent)},
	}
}

// MultiplierBreakdown sums every line's base cost once, then scales the total
// by each tier's multiplier.
func MultiplierBreakdown(items []models.RecipeItem, lookup Lookup, cfg models.SizeConfig) []Tier {
	var base float64
	for _, item := range items {
		base += item.Qty * unitCost(item, lookup)
	}

	tiers := make([]Tier, 0, 3)
	for _, t := range []struct {
		size string
		mult float64
	}{
		{SizeSmall, cfg.Small},
		{SizeMedium, cfg.Medium},
		{SizeLarge, cfg.Large},
	} {
		cost := base * t.mult
		tiers = append(tiers, Tier{
			Size:           t.size,
			Multiplier:     t.mult,
			FoodCost:       cost,
			SuggestedPrice: suggestedPrice(cost, cfg.FoodCostPercent),
		})
	}
	return tiers
}

// unitCost resolves a line's ingredient price. A line whose ingredient was
// deleted costs 0 so the rest of the computation stays usable.
func unitCost(item models.RecipeItem, lookup Lookup) float64 {
	if ing, ok := lookup(item.IngredientKey); ok {
		return ing.Price
	}
	return 0
}

// suggestedPrice back-computes a menu price from the food cost target.
// A percent of 0 or less yields 0 rather than dividing by zero; the config
// setter clamps the percent to at least 0.1 so this stays a guard.
func suggestedPrice(cost, percent float64) float64 {
	ratio := percent / 100
	if ratio <= 0 {
		return 0
	}
	return cost / ratio
}
