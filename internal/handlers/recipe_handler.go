package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/service"
)

// RecipeHandler handles saved recipe HTTP requests.
type RecipeHandler struct {
	recipes *service.RecipeService
	log     *slog.Logger
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipes *service.RecipeService, log *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		log:     log,
	}
}

// Save handles POST /api/recipe
// Snapshots the draft under the given name (or the stored draft name when the
// body omits one) and clears the draft.
func (h *RecipeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode save request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	recipe, err := h.recipes.Save(req.Name)
	if err != nil {
		switch err {
		case service.ErrEmptyRecipeName, service.ErrEmptyDraft:
			WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		default:
			h.log.Error("failed to save recipe", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("recipe saved", "recipe_id", recipe.ID, "items_count", len(recipe.Items))
	WriteJSON(w, http.StatusCreated, recipe, h.log)
}

// List handles GET /api/recipe
// Returns the saved recipes, most recently saved first.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.recipes.List(), h.log)
}

// Remove handles DELETE /api/recipe/{recipeId}
func (h *RecipeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recipeId")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Recipe id is required", h.log)
		return
	}

	if err := h.recipes.Remove(id); err != nil {
		h.log.Error("failed to remove recipe", "recipe_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Load handles POST /api/recipe/{recipeId}/load
// Copies a saved recipe back into the draft under fresh item ids.
func (h *RecipeHandler) Load(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recipeId")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Recipe id is required", h.log)
		return
	}

	recipe, err := h.recipes.Load(id)
	if err != nil {
		switch err {
		case service.ErrRecipeNotFound:
			WriteError(w, http.StatusNotFound, "Recipe not found", h.log)
		default:
			h.log.Error("failed to load recipe", "recipe_id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("recipe loaded into draft", "recipe_id", recipe.ID)
	WriteJSON(w, http.StatusOK, recipe, h.log)
}
