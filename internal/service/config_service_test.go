package service

import (
	"math"
	"testing"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/pricing"
)

func floatPtr(v float64) *float64 { return &v }

func TestConfigService_ClampsFoodCostPercent(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"normal value", 25, 25},
		{"zero clamps", 0, 0.1},
		{"negative clamps", -10, 0.1},
		{"nan clamps", math.NaN(), 0.1},
		{"below floor clamps", 0.05, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, config := newTestServices(t, pricing.VariantMultiplier)

			cfg, err := config.Update(models.SizeConfigRequest{FoodCostPercent: floatPtr(tt.input)})
			if err != nil {
				t.Fatalf("Update() unexpected error = %v", err)
			}
			if cfg.FoodCostPercent != tt.want {
				t.Errorf("expected percent %v, got %v", tt.want, cfg.FoodCostPercent)
			}
		})
	}
}

func TestConfigService_PartialUpdate(t *testing.T) {
	_, _, _, config := newTestServices(t, pricing.VariantMultiplier)

	cfg, err := config.Update(models.SizeConfigRequest{Small: floatPtr(0.6)})
	if err != nil {
		t.Fatalf("Update() unexpected error = %v", err)
	}

	if cfg.Small != 0.6 {
		t.Errorf("expected small multiplier 0.6, got %v", cfg.Small)
	}
	// Untouched fields keep their defaults.
	if cfg.FoodCostPercent != 30 || cfg.Medium != 1 || cfg.Large != 1.25 {
		t.Errorf("expected other fields unchanged, got %+v", cfg)
	}
}

func TestConfigService_RejectsBadMultipliers(t *testing.T) {
	_, _, _, config := newTestServices(t, pricing.VariantMultiplier)

	for _, bad := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		if _, err := config.Update(models.SizeConfigRequest{Large: floatPtr(bad)}); err != ErrInvalidMultiplier {
			t.Errorf("multiplier %v: expected ErrInvalidMultiplier, got %v", bad, err)
		}
	}

	// State unchanged after the rejections.
	if got := config.Get(); got.Large != 1.25 {
		t.Errorf("expected large multiplier untouched, got %v", got.Large)
	}
}
