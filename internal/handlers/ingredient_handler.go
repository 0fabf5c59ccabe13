package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/service"
)

// IngredientHandler handles ingredient catalog HTTP requests.
type IngredientHandler struct {
	catalog *service.CatalogService
	log     *slog.Logger
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(catalog *service.CatalogService, log *slog.Logger) *IngredientHandler {
	return &IngredientHandler{
		catalog: catalog,
		log:     log,
	}
}

// List handles GET /api/ingredient
// Returns the catalog sorted by display name.
func (h *IngredientHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.List(), h.log)
}

// Upsert handles POST /api/ingredient
// Creates an ingredient, or overwrites the record whose key matches the
// lowercased name.
func (h *IngredientHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode ingredient request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	ing, err := h.catalog.Upsert(req.Name, req.Unit, req.Price)
	if err != nil {
		switch err {
		case service.ErrEmptyName, service.ErrEmptyUnit, service.ErrInvalidPrice:
			WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		default:
			h.log.Error("failed to upsert ingredient", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("ingredient stored", "key", ing.Key, "price", ing.Price)
	WriteJSON(w, http.StatusOK, ing, h.log)
}

// Remove handles DELETE /api/ingredient/{key}
// Deletes the ingredient and every draft line referencing it.
func (h *IngredientHandler) Remove(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		WriteError(w, http.StatusBadRequest, "Ingredient key is required", h.log)
		return
	}

	if err := h.catalog.Remove(key); err != nil {
		h.log.Error("failed to remove ingredient", "key", key, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("ingredient removed", "key", key)
	w.WriteHeader(http.StatusNoContent)
}
