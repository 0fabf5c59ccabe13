package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/plateworks/menucost/internal/pricing"
	"github.com/plateworks/menucost/internal/repository"
	"github.com/plateworks/menucost/internal/service"
	"github.com/plateworks/menucost/internal/storage"
	"github.com/plateworks/menucost/pkg/logger"
)

// newTestRouter wires the full API over an in-memory store, mirroring the
// routes cmd/server registers.
func newTestRouter(t *testing.T, variant pricing.Variant) *chi.Mux {
	t.Helper()

	kv := storage.NewMemoryStore()
	ingredientRepo := repository.NewIngredientRepository(kv)
	draftRepo := repository.NewDraftRepository(kv)
	recipeRepo := repository.NewRecipeRepository(kv)
	configRepo := repository.NewConfigRepository(kv)

	catalogService := service.NewCatalogService(ingredientRepo, draftRepo)
	configService := service.NewConfigService(configRepo)
	draftService := service.NewDraftService(draftRepo, ingredientRepo, configRepo, variant)
	recipeService := service.NewRecipeService(recipeRepo, draftService)

	log := logger.New("error")
	ingredientHandler := NewIngredientHandler(catalogService, log)
	draftHandler := NewDraftHandler(draftService, log)
	recipeHandler := NewRecipeHandler(recipeService, log)
	configHandler := NewConfigHandler(configService, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/ingredient", ingredientHandler.List)
		r.Post("/ingredient", ingredientHandler.Upsert)
		r.Delete("/ingredient/{key}", ingredientHandler.Remove)

		r.Get("/draft", draftHandler.View)
		r.Delete("/draft", draftHandler.Clear)
		r.Post("/draft/item", draftHandler.AddItem)
		r.Delete("/draft/item/{itemId}", draftHandler.RemoveItem)
		r.Get("/draft/name", draftHandler.GetName)
		r.Put("/draft/name", draftHandler.SetName)

		r.Get("/recipe", recipeHandler.List)
		r.Post("/recipe", recipeHandler.Save)
		r.Delete("/recipe/{recipeId}", recipeHandler.Remove)
		r.Post("/recipe/{recipeId}/load", recipeHandler.Load)

		r.Get("/pricing", draftHandler.Breakdown)
		r.Get("/config", configHandler.Get)
		r.Put("/config", configHandler.Update)
	})
	return r
}

// doJSON executes a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}
