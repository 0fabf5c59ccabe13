package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/service"
)

// DraftHandler handles recipe draft HTTP requests.
type DraftHandler struct {
	draft *service.DraftService
	log   *slog.Logger
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(draft *service.DraftService, log *slog.Logger) *DraftHandler {
	return &DraftHandler{
		draft: draft,
		log:   log,
	}
}

// View handles GET /api/draft
// Returns the draft lines resolved against the live catalog, with per-line
// and draft-wide costs.
func (h *DraftHandler) View(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.draft.View(), h.log)
}

// AddItem handles POST /api/draft/item
func (h *DraftHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.DraftItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode draft item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	item, err := h.draft.AddItem(req)
	if err != nil {
		switch err {
		case service.ErrUnknownIngredient, service.ErrInvalidQuantity, service.ErrZeroQuantities:
			WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		default:
			h.log.Error("failed to add draft item", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("draft item added", "id", item.ID, "ingredient", item.IngredientKey)
	WriteJSON(w, http.StatusOK, item, h.log)
}

// RemoveItem handles DELETE /api/draft/item/{itemId}
func (h *DraftHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Item id is required", h.log)
		return
	}

	if err := h.draft.RemoveItem(id); err != nil {
		h.log.Error("failed to remove draft item", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/draft
func (h *DraftHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.draft.Clear(); err != nil {
		h.log.Error("failed to clear draft", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("draft cleared")
	w.WriteHeader(http.StatusNoContent)
}

// nameRequest is the payload for renaming the draft.
type nameRequest struct {
	Name string `json:"name"`
}

// GetName handles GET /api/draft/name
func (h *DraftHandler) GetName(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, nameRequest{Name: h.draft.Name()}, h.log)
}

// SetName handles PUT /api/draft/name
// The name is stored as typed; trimming happens at save time.
func (h *DraftHandler) SetName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.draft.SetName(req.Name); err != nil {
		h.log.Error("failed to set draft name", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, nameRequest{Name: h.draft.Name()}, h.log)
}

// Breakdown handles GET /api/pricing
// Computes the per-size food costs and suggested prices from current state.
func (h *DraftHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.draft.Breakdown(), h.log)
}
