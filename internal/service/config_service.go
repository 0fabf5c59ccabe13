package service

import (
	"errors"
	"math"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/repository"
)

var ErrInvalidMultiplier = errors.New("size multipliers must be non-negative numbers")

// minFoodCostPercent is the floor the percent setter clamps to, keeping the
// suggested-price division away from zero.
const minFoodCostPercent = 0.1

// ConfigService handles the size-pricing configuration.
type ConfigService struct {
	repo *repository.ConfigRepository
}

// NewConfigService creates a new config service.
func NewConfigService(repo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// Get returns the current configuration.
func (s *ConfigService) Get() models.SizeConfig {
	return s.repo.Get()
}

// Update applies a partial configuration change. The food cost percent is
// clamped to at least 0.1 (non-numeric input maps to 0.1 as well); multiplier
// updates are rejected outright when negative or non-finite.
func (s *ConfigService) Update(req models.SizeConfigRequest) (models.SizeConfig, error) {
	cfg := s.repo.Get()

	if req.FoodCostPercent != nil {
		pct := *req.FoodCostPercent
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < minFoodCostPercent {
			pct = minFoodCostPercent
		}
		cfg.FoodCostPercent = pct
	}

	for _, m := range []struct {
		value *float64
		dst   *float64
	}{
		{req.Small, &cfg.Small},
		{req.Medium, &cfg.Medium},
		{req.Large, &cfg.Large},
	} {
		if m.value == nil {
			continue
		}
		if math.IsNaN(*m.value) || math.IsInf(*m.value, 0) || *m.value < 0 {
			return models.SizeConfig{}, ErrInvalidMultiplier
		}
		*m.dst = *m.value
	}

	if err := s.repo.Set(cfg); err != nil {
		return models.SizeConfig{}, err
	}
	return cfg, nil
}
