package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/service"
)

// ConfigHandler handles size configuration HTTP requests.
type ConfigHandler struct {
	config *service.ConfigService
	log    *slog.Logger
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(config *service.ConfigService, log *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		config: config,
		log:    log,
	}
}

// Get handles GET /api/config
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.config.Get(), h.log)
}

// Update handles PUT /api/config
// Applies a partial update; omitted fields keep their current values.
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.SizeConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode config request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	cfg, err := h.config.Update(req)
	if err != nil {
		switch err {
		case service.ErrInvalidMultiplier:
			WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		default:
			h.log.Error("failed to update config", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("size config updated", "food_cost_percent", cfg.FoodCostPercent)
	WriteJSON(w, http.StatusOK, cfg, h.log)
}
