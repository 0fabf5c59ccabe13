package pricing

import "github.com/plateworks/menucost/internal/models"

// Line is a draft line resolved against the live catalog: current name and
// unit where the ingredient still exists, the stored snapshot otherwise, plus
// the line's unit cost and per-tier totals.
type Line struct {
	models.RecipeItem
	UnitCost    float64 `json:"unitCost"`
	Missing     bool    `json:"missing,omitempty"`
	Total       float64 `json:"total,omitempty"`
	TotalSmall  float64 `json:"totalSmall,omitempty"`
	TotalMedium float64 `json:"totalMedium,omitempty"`
	TotalLarge  float64 `json:"totalLarge,omitempty"`
}

// Totals are the draft-wide food costs. Base is only set by the multiplier
// variant, where it is the unscaled sum of line costs.
type Totals struct {
	Base   float64 `json:"base,omitempty"`
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// DraftView is the fully computed draft: resolved lines and their totals.
type DraftView struct {
	Name   string `json:"name"`
	Lines  []Line `json:"lines"`
	Totals Totals `json:"totals"`
}

// LineCosts resolves every draft line against the catalog and computes line
// and draft totals for the given variant.
func LineCosts(variant Variant, items []models.RecipeItem, lookup Lookup, cfg models.SizeConfig) ([]Line, Totals) {
	lines := make([]Line, 0, len(items))
	var totals Totals

	for _, item := range items {
		line := Line{RecipeItem: item}

		if ing, ok := lookup(item.IngredientKey); ok {
			line.IngredientName = ing.Name
			line.Unit = ing.Unit
			line.UnitCost = ing.Price
		} else {
			line.Missing = true
		}

		if variant == VariantMultiplier {
			line.Total = item.Qty * line.UnitCost
			totals.Base += line.Total
		} else {
			line.TotalSmall = item.QtySmall * line.UnitCost
			line.TotalMedium = item.QtyMedium * line.UnitCost
			line.TotalLarge = item.QtyLarge * line.UnitCost
			totals.Small += line.TotalSmall
			totals.Medium += line.TotalMedium
			totals.Large += line.TotalLarge
		}

		lines = append(lines, line)
	}

	if variant == VariantMultiplier {
		totals.Small = totals.Base * cfg.Small
		totals.Medium = totals.Base * cfg.Medium
		totals.Large = totals.Base * cfg.Large
	}

	return lines, totals
}
