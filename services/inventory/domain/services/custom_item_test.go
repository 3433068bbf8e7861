package services

import (
	"errors"
	"math"
	"testing"

	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	domain "github.com/ghuser/forgemart/services/inventory/domain"
)

func validDraft() CustomItemDraft {
	return CustomItemDraft{
		Name:        "Grail Reliquae",
		GameSystem:  "Warhammer Old World",
		Army:        "Bretonnia",
		UnitType:    "Reliquae",
		Description: "Pilgrims hauling a reliquary into battle.",
		Price:       11.99,
	}
}

func TestNewCustomItem(t *testing.T) {
	t.Run("builds item with assigned id", func(t *testing.T) {
		item, err := NewCustomItem(1724932800000, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1724932800000 {
			t.Fatalf("expected id 1724932800000, got %d", item.ID)
		}
		if item.Name != "Grail Reliquae" {
			t.Fatalf("expected name %q, got %q", "Grail Reliquae", item.Name)
		}
		if item.Price != 11.99 {
			t.Fatalf("expected price 11.99, got %v", item.Price)
		}
	})

	t.Run("always carries manufacturer id 0", func(t *testing.T) {
		item, err := NewCustomItem(1, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ManufacturerID != catalogmodels.StoreOriginalManufacturerID {
			t.Fatalf("expected manufacturer id 0, got %d", item.ManufacturerID)
		}
		if !item.IsCustom() {
			t.Fatal("expected IsCustom to be true")
		}
	})

	t.Run("defaults tags from game system, army, and unit type", func(t *testing.T) {
		item, err := NewCustomItem(1, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"warhammer old world", "bretonnia", "reliquae"}
		if len(item.Tags) != len(want) {
			t.Fatalf("expected %d tags, got %d", len(want), len(item.Tags))
		}
		for i, tag := range want {
			if item.Tags[i] != tag {
				t.Fatalf("tag %d: expected %q, got %q", i, tag, item.Tags[i])
			}
		}
	})

	t.Run("keeps explicit tags", func(t *testing.T) {
		draft := validDraft()
		draft.Tags = []string{"relic", "pilgrims"}
		item, err := NewCustomItem(1, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(item.Tags) != 2 || item.Tags[0] != "relic" {
			t.Fatalf("explicit tags replaced: %v", item.Tags)
		}
	})

	t.Run("defaults format and type", func(t *testing.T) {
		item, err := NewCustomItem(1, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Format != "3D" {
			t.Fatalf("expected format %q, got %q", "3D", item.Format)
		}
		if item.Type != "unit" {
			t.Fatalf("expected type %q, got %q", "unit", item.Type)
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		for _, field := range []string{"name", "game_system", "army", "unit_type", "description"} {
			draft := validDraft()
			switch field {
			case "name":
				draft.Name = "  "
			case "game_system":
				draft.GameSystem = ""
			case "army":
				draft.Army = ""
			case "unit_type":
				draft.UnitType = ""
			case "description":
				draft.Description = ""
			}
			_, err := NewCustomItem(1, draft)
			if !errors.Is(err, domain.ErrInvalidItem) {
				t.Fatalf("%s: expected ErrInvalidItem, got %v", field, err)
			}
		}
	})

	t.Run("rejects negative and NaN prices", func(t *testing.T) {
		for _, price := range []float64{-0.01, math.NaN()} {
			draft := validDraft()
			draft.Price = price
			_, err := NewCustomItem(1, draft)
			if !errors.Is(err, domain.ErrInvalidPrice) {
				t.Fatalf("price %v: expected ErrInvalidPrice, got %v", price, err)
			}
		}
	})

	t.Run("zero price is a valid free item", func(t *testing.T) {
		draft := validDraft()
		draft.Price = 0
		item, err := NewCustomItem(1, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Price != 0 {
			t.Fatalf("expected price 0, got %v", item.Price)
		}
	})
}
