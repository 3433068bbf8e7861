package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ghuser/forgemart/pkg/config"
	"github.com/ghuser/forgemart/pkg/kvstore"
	"github.com/ghuser/forgemart/pkg/logger"
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	domain "github.com/ghuser/forgemart/services/inventory/domain"
	"github.com/ghuser/forgemart/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/forgemart/services/inventory/domain/services"
	"github.com/ghuser/forgemart/services/inventory/infrastructure/persistence/kv"
)

// fakeCatalog serves the fixed catalogue without Postgres.
type fakeCatalog struct{}

var catalogueFixture = map[int64]catalogmodels.Item{
	1: {ID: 1, Name: "Knight of the realm", UnitType: "Knight of the realm", Price: 12.99, ManufacturerID: 1},
	2: {ID: 2, Name: "Man at arms", UnitType: "Man at arms", Price: 8.99, ManufacturerID: 1},
	3: {ID: 3, Name: "Bowmen", UnitType: "Bowmen", Price: 8.99, ManufacturerID: 1},
	4: {ID: 4, Name: "Knight of the realm", UnitType: "Knight of the realm", Price: 10.99, ManufacturerID: 2},
	5: {ID: 5, Name: "Man at arms", UnitType: "Man at arms", Price: 7.99, ManufacturerID: 2},
	6: {ID: 6, Name: "Bowmen", UnitType: "Bowmen", Price: 7.99, ManufacturerID: 2},
	7: {ID: 7, Name: "Knight of the realm", UnitType: "Knight of the realm", Price: 14.99, ManufacturerID: 3},
	8: {ID: 8, Name: "Man at arms", UnitType: "Man at arms", Price: 9.99, ManufacturerID: 3},
	9: {ID: 9, Name: "Bowmen", UnitType: "Bowmen", Price: 9.99, ManufacturerID: 3},
}

func (fakeCatalog) ItemByID(_ context.Context, id int64) (*catalogmodels.Item, error) {
	item, ok := catalogueFixture[id]
	if !ok {
		return nil, fmt.Errorf("get catalog item: %w", catalogdomain.ErrItemNotFound)
	}
	return &item, nil
}

func (fakeCatalog) StoreByID(_ context.Context, id int64) (*catalogmodels.Store, error) {
	if id < 1 || id > 3 {
		return nil, fmt.Errorf("get store: %w", catalogdomain.ErrStoreNotFound)
	}
	return &catalogmodels.Store{ID: id, Name: fmt.Sprintf("Store %d", id)}, nil
}

// fixedIDs issues sequential identifiers for deterministic assertions.
type fixedIDs struct{ next int64 }

func (g *fixedIDs) NextID() int64 {
	g.next++
	return g.next + 1000
}

func newTestService() *InventoryService {
	return NewInventoryService(
		kv.NewRegistry(kvstore.NewMemoryStore()),
		fakeCatalog{},
		nil, // no event bus in unit tests
		&fixedIDs{},
		logger.New(&config.Config{LogLevel: "error"}),
	)
}

func TestInventory_SeedsDefaultsAndJoinsItems(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	listings, err := svc.Inventory(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 4 {
		t.Fatalf("expected 4 default listings, got %d", len(listings))
	}
	if listings[0].Item.ID != 1 {
		t.Fatalf("expected item 1 first, got %d", listings[0].Item.ID)
	}
	// Store price overrides the manufacturer base price in the joined view.
	if listings[0].Price != 14.99 || listings[0].Item.Price != 14.99 {
		t.Fatalf("expected store price 14.99, got listing %v item %v",
			listings[0].Price, listings[0].Item.Price)
	}
}

func TestInventory_UnknownStore(t *testing.T) {
	svc := newTestService()

	_, err := svc.Inventory(context.Background(), 99)
	if !errors.Is(err, catalogdomain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestAddListing_Rules(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects item outside the allow-list", func(t *testing.T) {
		svc := newTestService()
		// Item 3 was never assigned to store 1.
		_, err := svc.AddListing(ctx, 1, 3, 9.49)
		if !errors.Is(err, domain.ErrItemNotAllowed) {
			t.Fatalf("expected ErrItemNotAllowed, got %v", err)
		}
	})

	t.Run("rejects a unit type the store already carries", func(t *testing.T) {
		svc := newTestService()
		// Store 1 lists items 1 and 7 (both knights); re-adding item 4 after
		// delisting it still collides on unit type.
		if err := svc.RemoveListing(ctx, 1, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := svc.AddListing(ctx, 1, 4, 12.99)
		if !errors.Is(err, domain.ErrUnitTypeTaken) {
			t.Fatalf("expected ErrUnitTypeTaken, got %v", err)
		}
	})

	t.Run("accepts an allowed item with a free unit type", func(t *testing.T) {
		svc := newTestService()
		for _, id := range []int64{1, 4, 7} {
			if err := svc.RemoveListing(ctx, 1, id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		listings, err := svc.AddListing(ctx, 1, 4, 11.49)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, l := range listings {
			if l.Item.ID == 4 && l.Price == 11.49 {
				found = true
			}
		}
		if !found {
			t.Fatalf("added listing missing from inventory: %+v", listings)
		}
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.AddListing(ctx, 1, 424242, 5)
		if !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestRemoveListing_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.RemoveListing(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemoveListing(ctx, 1, 2); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}

	listings, _ := svc.Inventory(ctx, 1)
	if len(listings) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(listings))
	}
}

func TestUpdatePrice_InvalidLeavesState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.UpdatePrice(ctx, 2, 5, -3); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	listings, _ := svc.Inventory(ctx, 2)
	for _, l := range listings {
		if l.Item.ID == 5 && l.Price != 8.49 {
			t.Fatalf("failed update mutated price: got %v", l.Price)
		}
	}
}

func TestBulkAdd(t *testing.T) {
	ctx := context.Background()

	clearStore := func(t *testing.T, svc *InventoryService, storeID int64) {
		t.Helper()
		listings, err := svc.Inventory(ctx, storeID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, l := range listings {
			if err := svc.RemoveListing(ctx, storeID, l.Item.ID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	t.Run("applies percent markup to every base price", func(t *testing.T) {
		svc := newTestService()
		clearStore(t, svc, 1)

		listings, err := svc.BulkAdd(ctx, 1, []int64{1, 2}, models.Markup{Type: models.MarkupPercent, Amount: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listings) != 2 {
			t.Fatalf("expected 2 listings, got %d", len(listings))
		}
		// 12.99 * 1.10 = 14.29, 8.99 * 1.10 = 9.89 (cent-rounded).
		if listings[0].Price != 14.29 {
			t.Fatalf("item 1: expected 14.29, got %v", listings[0].Price)
		}
		if listings[1].Price != 9.89 {
			t.Fatalf("item 2: expected 9.89, got %v", listings[1].Price)
		}
	})

	t.Run("invalid markup adds nothing", func(t *testing.T) {
		svc := newTestService()
		clearStore(t, svc, 1)

		_, err := svc.BulkAdd(ctx, 1, []int64{1, 2}, models.Markup{Type: "relative", Amount: 10})
		if !errors.Is(err, domain.ErrInvalidMarkup) {
			t.Fatalf("expected ErrInvalidMarkup, got %v", err)
		}
		listings, _ := svc.Inventory(ctx, 1)
		if len(listings) != 0 {
			t.Fatalf("failed bulk partially applied: %d listings", len(listings))
		}
	})

	t.Run("one disallowed candidate rejects the whole batch", func(t *testing.T) {
		svc := newTestService()
		clearStore(t, svc, 1)

		// Item 5 was never assigned to store 1.
		_, err := svc.BulkAdd(ctx, 1, []int64{2, 5}, models.Markup{Type: models.MarkupFixed, Amount: 1})
		if !errors.Is(err, domain.ErrItemNotAllowed) {
			t.Fatalf("expected ErrItemNotAllowed, got %v", err)
		}
		listings, _ := svc.Inventory(ctx, 1)
		if len(listings) != 0 {
			t.Fatalf("failed bulk partially applied: %d listings", len(listings))
		}
	})

	t.Run("unit-type collision inside the batch rejects it", func(t *testing.T) {
		svc := newTestService()
		clearStore(t, svc, 1)

		// Items 1 and 4 share a unit type.
		_, err := svc.BulkAdd(ctx, 1, []int64{1, 4}, models.Markup{Type: models.MarkupFixed, Amount: 0})
		if !errors.Is(err, domain.ErrUnitTypeTaken) {
			t.Fatalf("expected ErrUnitTypeTaken, got %v", err)
		}
		listings, _ := svc.Inventory(ctx, 1)
		if len(listings) != 0 {
			t.Fatalf("failed bulk partially applied: %d listings", len(listings))
		}
	})
}

func TestCreateCustomItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	draft := domainsvcs.CustomItemDraft{
		Name:        "Grail Reliquae",
		GameSystem:  "Warhammer Old World",
		Army:        "Bretonnia",
		UnitType:    "Reliquae",
		Description: "Pilgrims hauling a reliquary into battle.",
		Price:       11.99,
	}

	item, err := svc.CreateCustomItem(ctx, 1, draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.IsCustom() {
		t.Fatal("expected a custom item")
	}

	// Listed immediately at its own price.
	listings, _ := svc.Inventory(ctx, 1)
	found := false
	for _, l := range listings {
		if l.Item.ID == item.ID {
			found = true
			if l.Price != 11.99 {
				t.Fatalf("expected price 11.99, got %v", l.Price)
			}
		}
	}
	if !found {
		t.Fatal("custom item not listed after creation")
	}

	// The archive keeps the item after delisting so it can be re-added.
	if err := svc.RemoveListing(ctx, 1, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	archived, err := svc.CustomItems(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(archived) != 1 || archived[0].ID != item.ID {
		t.Fatalf("expected archived item after delisting, got %+v", archived)
	}

	// Re-adding resolves through the archive; the allow-list does not apply.
	if _, err := svc.AddListing(ctx, 1, item.ID, 10.99); err != nil {
		t.Fatalf("unexpected error re-adding custom item: %v", err)
	}

	t.Run("invalid draft creates nothing", func(t *testing.T) {
		bad := draft
		bad.Name = ""
		if _, err := svc.CreateCustomItem(ctx, 1, bad); !errors.Is(err, domain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})
}

func TestStoreProfile_OverrideFallback(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	profile, err := svc.StoreProfile(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Store 1" {
		t.Fatalf("expected catalogue record, got %+v", profile)
	}

	if err := svc.SaveStoreProfile(ctx, 1, catalogmodels.Store{Name: "Renamed Shop"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err = svc.StoreProfile(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Renamed Shop" {
		t.Fatalf("expected override, got %+v", profile)
	}
	if profile.ID != 1 {
		t.Fatalf("expected override pinned to store id 1, got %d", profile.ID)
	}

	if err := svc.SaveStoreProfile(ctx, 99, catalogmodels.Store{Name: "Ghost"}); !errors.Is(err, catalogdomain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
