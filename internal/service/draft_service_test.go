package service

import (
	"math"
	"testing"

	"github.com/plateworks/menucost/internal/models"
	"github.com/plateworks/menucost/internal/pricing"
	"github.com/plateworks/menucost/internal/repository"
	"github.com/plateworks/menucost/internal/storage"
)

func TestDraftService_AddItem(t *testing.T) {
	tests := []struct {
		name    string
		req     models.DraftItemRequest
		wantErr error
	}{
		{
			name: "valid per-size item",
			req:  models.DraftItemRequest{IngredientKey: "flour", QtySmall: 1, QtyMedium: 2, QtyLarge: 3},
		},
		{
			name: "one positive quantity is enough",
			req:  models.DraftItemRequest{IngredientKey: "flour", QtyLarge: 0.5},
		},
		{
			name:    "unknown ingredient",
			req:     models.DraftItemRequest{IngredientKey: "unobtanium", QtySmall: 1},
			wantErr: ErrUnknownIngredient,
		},
		{
			name:    "negative quantity",
			req:     models.DraftItemRequest{IngredientKey: "flour", QtySmall: -1, QtyMedium: 1},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "all quantities zero",
			req:     models.DraftItemRequest{IngredientKey: "flour"},
			wantErr: ErrZeroQuantities,
		},
		{
			name:    "non-finite quantity",
			req:     models.DraftItemRequest{IngredientKey: "flour", QtySmall: math.NaN()},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, draft, _, _ := newTestServices(t, pricing.VariantPerSize)
			if _, err := catalog.Upsert("Flour", "kg", 1); err != nil {
				t.Fatalf("seed failed: %v", err)
			}

			item, err := draft.AddItem(tt.req)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
				}
				if len(draft.Items()) != 0 {
					t.Error("rejected item must leave the draft unchanged")
				}
				return
			}

			if err != nil {
				t.Fatalf("AddItem() unexpected error = %v", err)
			}
			if item.ID == "" {
				t.Error("expected a generated item id")
			}
			if item.IngredientName != "Flour" || item.Unit != "kg" {
				t.Errorf("expected ingredient snapshot on the line, got %+v", item)
			}
			if len(draft.Items()) != 1 {
				t.Errorf("expected draft length 1, got %d", len(draft.Items()))
			}
		})
	}
}

func TestDraftService_AddItemMultiplierVariant(t *testing.T) {
	catalog, draft, _, _ := newTestServices(t, pricing.VariantMultiplier)
	if _, err := catalog.Upsert("Flour", "kg", 1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// The multiplier variant validates the single base quantity.
	if _, err := draft.AddItem(models.DraftItemRequest{IngredientKey: "flour"}); err != ErrZeroQuantities {
		t.Errorf("expected zero base quantity rejected, got %v", err)
	}

	item, err := draft.AddItem(models.DraftItemRequest{IngredientKey: "flour", Qty: 2})
	if err != nil {
		t.Fatalf("AddItem() unexpected error = %v", err)
	}
	if item.Qty != 2 || item.QtySmall != 0 {
		t.Errorf("expected only the base quantity stored, got %+v", item)
	}
}

func TestDraftService_RemoveItem(t *testing.T) {
	catalog, draft, _, _ := newTestServices(t, pricing.VariantPerSize)
	if _, err := catalog.Upsert("Flour", "kg", 1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	item, err := draft.AddItem(models.DraftItemRequest{IngredientKey: "flour", QtySmall: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Unknown id is a no-op.
	if err := draft.RemoveItem("nope"); err != nil {
		t.Fatalf("remove unknown id failed: %v", err)
	}
	if len(draft.Items()) != 1 {
		t.Error("unknown id must not remove anything")
	}

	if err := draft.RemoveItem(item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(draft.Items()) != 0 {
		t.Error("expected empty draft after removal")
	}
}

func TestDraftService_ViewFallsBackToSnapshot(t *testing.T) {
	kv := storage.NewMemoryStore()
	ingredientRepo := repository.NewIngredientRepository(kv)
	draftRepo := repository.NewDraftRepository(kv)
	configRepo := repository.NewConfigRepository(kv)

	catalog := NewCatalogService(ingredientRepo, draftRepo)
	draft := NewDraftService(draftRepo, ingredientRepo, configRepo, pricing.VariantPerSize)

	if _, err := catalog.Upsert("Cheddar", "kg", 8); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := draft.AddItem(models.DraftItemRequest{IngredientKey: "cheddar", QtySmall: 0.1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Delete straight from the repository, bypassing the cascade, to get a
	// dangling reference the way a hand-edited data file would.
	if _, err := ingredientRepo.Remove("cheddar"); err != nil {
		t.Fatalf("repo remove failed: %v", err)
	}

	view := draft.View()
	if len(view.Lines) != 1 {
		t.Fatalf("expected the dangling line to stay visible, got %d lines", len(view.Lines))
	}
	line := view.Lines[0]
	if !line.Missing || line.UnitCost != 0 {
		t.Errorf("expected zero-cost missing line, got %+v", line)
	}
	if line.IngredientName != "Cheddar" || line.Unit != "kg" {
		t.Errorf("expected snapshot name/unit fallback, got %q/%q", line.IngredientName, line.Unit)
	}
}

func TestDraftService_NameRoundTrip(t *testing.T) {
	_, draft, _, _ := newTestServices(t, pricing.VariantPerSize)

	if err := draft.SetName("Work in progress"); err != nil {
		t.Fatalf("set name failed: %v", err)
	}
	if draft.Name() != "Work in progress" {
		t.Errorf("unexpected draft name %q", draft.Name())
	}
}
