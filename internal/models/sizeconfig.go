package models

// SizeConfig drives the size pricing model. FoodCostPercent is the target
// ratio of ingredient cost to menu price. Small/Medium/Large are the per-tier
// quantity multipliers used by the multiplier pricing variant.
type SizeConfig struct {
	FoodCostPercent float64 `json:"foodCostPercent"`
	Small           float64 `json:"small"`
	Medium          float64 `json:"medium"`
	Large           float64 `json:"large"`
}

// DefaultSizeConfig returns the configuration used until the user changes it.
func DefaultSizeConfig() SizeConfig {
	return SizeConfig{
		FoodCostPercent: 30,
		Small:           0.8,
		Medium:          1,
		Large:           1.25,
	}
}

// SizeConfigRequest is a partial update of the size configuration.
// Nil fields are left unchanged.
type SizeConfigRequest struct {
	FoodCostPercent *float64 `json:"foodCostPercent"`
	Small           *float64 `json:"small"`
	Medium          *float64 `json:"medium"`
	Large           *float64 `json:"large"`
}
