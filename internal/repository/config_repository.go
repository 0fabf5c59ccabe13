package repository

import (
	"sync"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/storage"
)

// ConfigRepository holds the single size-pricing configuration record.
type ConfigRepository struct {
	mu  sync.RWMutex
	kv  storage.KV
	cfg models.SizeConfig
}

// NewConfigRepository loads the configuration, falling back to the defaults.
func NewConfigRepository(kv storage.KV) *ConfigRepository {
	return &ConfigRepository{
		kv:  kv,
		cfg: storage.LoadJSON(kv, keySizeConfig, models.DefaultSizeConfig()),
	}
}

// Get returns the current configuration.
func (r *ConfigRepository) Get() models.SizeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cfg
}

// Set replaces the configuration.
func (r *ConfigRepository) Set(cfg models.SizeConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg = cfg
	return storage.StoreJSON(r.kv, keySizeConfig, r.cfg)
}
