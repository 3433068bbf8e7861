package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/forgemart/pkg/config"
	"github.com/ghuser/forgemart/pkg/logger"
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	invmodels "github.com/ghuser/forgemart/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/forgemart/services/market/domain/services"
)

type fakeCatalog struct{}

func (fakeCatalog) Items(context.Context) ([]catalogmodels.Item, error) {
	return []catalogmodels.Item{
		{ID: 1, Name: "Knight of the Realm", UnitType: "Knight of the realm", Army: "Bretonnia", GameSystem: "Warhammer Old World", ManufacturerID: 1, Price: 12.99, Downloads: 1247},
		{ID: 2, Name: "Man at Arms", UnitType: "Man at arms", Army: "Bretonnia", GameSystem: "Warhammer Old World", ManufacturerID: 1, Price: 8.99, Downloads: 892},
		{ID: 9, Name: "Bowmen Regiment", UnitType: "Bowmen", Army: "Bretonnia", GameSystem: "Warhammer Old World", ManufacturerID: 3, Price: 9.99, Downloads: 743},
	}, nil
}

func (fakeCatalog) Stores(context.Context) ([]catalogmodels.Store, error) {
	// Deliberately out of order: the snapshot must sort ascending.
	return []catalogmodels.Store{
		{ID: 2, Name: "Tabletop Treasures", Owner: "Sarah Johnson"},
		{ID: 1, Name: "Epic Prints Shop", Owner: "John Smith"},
	}, nil
}

func (fakeCatalog) Manufacturers(context.Context) ([]catalogmodels.Manufacturer, error) {
	return []catalogmodels.Manufacturer{
		{ID: 1, Name: "Highlands Miniatures"},
		{ID: 3, Name: "Monstrous Encounters"},
	}, nil
}

type fakeRegistry struct {
	inventories map[int64][]invmodels.Listing
	custom      map[int64][]catalogmodels.Item
	initialized map[int64]int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		inventories: map[int64][]invmodels.Listing{
			1: {{ItemID: 1, Price: 14.99}, {ItemID: 2, Price: 10.49}},
			2: {{ItemID: 1, Price: 13.49}, {ItemID: 1724932800000, Price: 11.99}},
		},
		custom: map[int64][]catalogmodels.Item{
			2: {{ID: 1724932800000, Name: "Grail Reliquae", UnitType: "Reliquae", Army: "Bretonnia", GameSystem: "Warhammer Old World", Price: 11.99}},
		},
		initialized: map[int64]int{},
	}
}

func (f *fakeRegistry) Inventory(_ context.Context, storeID int64) ([]invmodels.Listing, error) {
	return f.inventories[storeID], nil
}

func (f *fakeRegistry) CustomItems(_ context.Context, storeID int64) ([]catalogmodels.Item, error) {
	return f.custom[storeID], nil
}

func (f *fakeRegistry) InitializeDefault(_ context.Context, storeID int64) error {
	f.initialized[storeID]++
	return nil
}

func newTestService(registry *fakeRegistry) *MarketService {
	log := logger.New(&config.Config{LogLevel: "error"})
	return NewMarketService(fakeCatalog{}, registry, 3, log)
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	registry := newFakeRegistry()
	svc := newTestService(registry)

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("stores sorted ascending and default-seeded", func(t *testing.T) {
		if len(snap.Stores) != 2 || snap.Stores[0].StoreID != 1 || snap.Stores[1].StoreID != 2 {
			t.Fatalf("unexpected store order: %+v", snap.Stores)
		}
		for _, id := range []int64{1, 2} {
			if registry.initialized[id] == 0 {
				t.Fatalf("store %d was not default-seeded", id)
			}
		}
	})

	t.Run("listings join catalogue items at the store price", func(t *testing.T) {
		got := snap.Stores[0].Listings
		if len(got) != 2 {
			t.Fatalf("expected 2 listings, got %d", len(got))
		}
		if got[0].Item.ID != 1 || got[0].Price != 14.99 || got[0].Item.Price != 14.99 {
			t.Fatalf("unexpected first listing: %+v", got[0])
		}
	})

	t.Run("custom listings join through the archive", func(t *testing.T) {
		got := snap.Stores[1].Listings
		if len(got) != 2 {
			t.Fatalf("expected 2 listings, got %d", len(got))
		}
		if got[1].Item.Name != "Grail Reliquae" {
			t.Fatalf("custom listing did not join the archive: %+v", got[1])
		}
	})

	t.Run("unknown listings are dropped", func(t *testing.T) {
		reg := newFakeRegistry()
		reg.inventories[1] = append(reg.inventories[1], invmodels.Listing{ItemID: 777, Price: 5})
		snap, err := newTestService(reg).Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, l := range snap.Stores[0].Listings {
			if l.Item.ID == 777 {
				t.Fatal("listing for an unknown item survived the join")
			}
		}
	})
}

func TestItemPage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRegistry())

	t.Run("resolves the first selling store and names it", func(t *testing.T) {
		page, err := svc.ItemPage(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Resolution.StoreID != 1 || page.StoreName != "Epic Prints Shop" {
			t.Fatalf("unexpected resolution: %+v store %q", page.Resolution, page.StoreName)
		}
		if page.Resolution.Price != 14.99 {
			t.Fatalf("expected store price 14.99, got %v", page.Resolution.Price)
		}
	})

	t.Run("related items exclude the subject", func(t *testing.T) {
		page, err := svc.ItemPage(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Related) == 0 {
			t.Fatal("expected related items")
		}
		for _, l := range page.Related {
			if l.Item.ID == 1 {
				t.Fatal("subject returned as its own related item")
			}
		}
	})

	t.Run("unlisted catalogue item has no store name", func(t *testing.T) {
		page, err := svc.ItemPage(ctx, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.StoreName != "" || page.Resolution.StoreID != 0 {
			t.Fatalf("expected unassigned resolution, got %+v store %q", page.Resolution, page.StoreName)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if _, err := svc.ItemPage(ctx, 424242); !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRegistry())

	t.Run("pool carries store and manufacturer labels", func(t *testing.T) {
		res, err := svc.Search(ctx, domainsvcs.Criteria{Store: "Epic Prints Shop"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(res.Entries))
		}
		if res.Entries[0].ManufacturerName != "Highlands Miniatures" {
			t.Fatalf("unexpected manufacturer label: %q", res.Entries[0].ManufacturerName)
		}
	})

	t.Run("custom listings are searchable", func(t *testing.T) {
		res, err := svc.Search(ctx, domainsvcs.Criteria{Query: "reliquae"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Entries) != 1 || res.Entries[0].Item.Item.ID != 1724932800000 {
			t.Fatalf("expected the custom listing, got %+v", res.Entries)
		}
	})

	t.Run("options reflect the listing pool", func(t *testing.T) {
		res, err := svc.Search(ctx, domainsvcs.Criteria{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Options.GameSystems) != 1 || res.Options.GameSystems[0] != "Warhammer Old World" {
			t.Fatalf("unexpected game systems: %v", res.Options.GameSystems)
		}
	})
}
