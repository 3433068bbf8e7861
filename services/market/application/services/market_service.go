package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/ghuser/forgemart/pkg/logger"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	invmodels "github.com/ghuser/forgemart/services/inventory/domain/models"
	"github.com/ghuser/forgemart/services/market/domain/models"
	domainsvcs "github.com/ghuser/forgemart/services/market/domain/services"
)

// CatalogReader is the slice of the catalog context the market needs to
// compose a snapshot.
type CatalogReader interface {
	Items(ctx context.Context) ([]catalogmodels.Item, error)
	Stores(ctx context.Context) ([]catalogmodels.Store, error)
	Manufacturers(ctx context.Context) ([]catalogmodels.Manufacturer, error)
}

// RegistryReader is the read slice of the inventory registry.
type RegistryReader interface {
	Inventory(ctx context.Context, storeID int64) ([]invmodels.Listing, error)
	CustomItems(ctx context.Context, storeID int64) ([]catalogmodels.Item, error)
	InitializeDefault(ctx context.Context, storeID int64) error
}

// ItemPage is everything a product page needs: the resolved listing plus the
// ranked related items.
type ItemPage struct {
	Resolution models.Resolution
	StoreName  string
	Related    []models.PricedItem
}

// SearchResult is a filtered, sorted result set plus the cascading filter
// options for the applied criteria.
type SearchResult struct {
	Entries []domainsvcs.SearchEntry
	Options domainsvcs.Options
}

// MarketService is the composed read side: it snapshots the catalogue and
// every store's registry state, then delegates to the pure domain functions.
// Consumers always get a fresh snapshot per call; staleness between calls is
// bounded by the inventory.changed re-read contract, not by caching here.
type MarketService struct {
	catalog      CatalogReader
	registry     RegistryReader
	relatedLimit int
	log          logger.Logger
}

// NewMarketService returns a MarketService over the given catalog and
// registry readers. relatedLimit <= 0 falls back to the domain default.
func NewMarketService(catalog CatalogReader, registry RegistryReader, relatedLimit int, log logger.Logger) *MarketService {
	if relatedLimit <= 0 {
		relatedLimit = domainsvcs.DefaultRelatedLimit
	}
	return &MarketService{catalog: catalog, registry: registry, relatedLimit: relatedLimit, log: log}
}

// ItemPage resolves an item and ranks its related items.
func (s *MarketService) ItemPage(ctx context.Context, itemID int64) (*ItemPage, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	res, err := domainsvcs.Resolve(*snap, itemID)
	if err != nil {
		return nil, err
	}

	page := &ItemPage{
		Resolution: res,
		Related:    domainsvcs.Related(*snap, res.Item, res.StoreID, s.relatedLimit),
	}
	for _, store := range snap.Stores {
		if store.StoreID == res.StoreID {
			page.StoreName = store.Name
			break
		}
	}
	return page, nil
}

// Search filters and sorts the full listing pool and computes the cascading
// filter options for the applied criteria.
func (s *MarketService) Search(ctx context.Context, criteria domainsvcs.Criteria) (*SearchResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	storeNames := make(map[int64]string, len(snap.Stores))
	for _, st := range snap.Stores {
		storeNames[st.StoreID] = st.Name
	}

	pool := make([]domainsvcs.SearchEntry, 0)
	for _, l := range snap.AllListings() {
		pool = append(pool, domainsvcs.SearchEntry{
			Item:             l,
			StoreName:        storeNames[l.StoreID],
			ManufacturerName: snap.ManufacturerName(l.Item.ManufacturerID),
		})
	}

	return &SearchResult{
		Entries: domainsvcs.FilterSort(pool, criteria),
		Options: domainsvcs.FilterOptions(pool, criteria),
	}, nil
}

// Snapshot composes the point-in-time read view: catalogue, each store's
// inventory in ascending store-ID order, custom archives, and manufacturer
// names. Stores are default-seeded on first access, same as the inventory
// write side.
func (s *MarketService) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	stores, err := s.catalog.Stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stores: %w", err)
	}
	manufacturers, err := s.catalog.Manufacturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read manufacturers: %w", err)
	}

	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })

	byID := make(map[int64]catalogmodels.Item, len(items))
	for _, i := range items {
		byID[i.ID] = i
	}

	snap := &models.Snapshot{
		Catalogue:     items,
		CustomItems:   make(map[int64][]catalogmodels.Item, len(stores)),
		Manufacturers: make(map[int64]string, len(manufacturers)),
	}
	for _, m := range manufacturers {
		snap.Manufacturers[m.ID] = m.Name
	}

	for _, store := range stores {
		if err := s.registry.InitializeDefault(ctx, store.ID); err != nil {
			return nil, fmt.Errorf("initialize store %d: %w", store.ID, err)
		}
		custom, err := s.registry.CustomItems(ctx, store.ID)
		if err != nil {
			return nil, fmt.Errorf("read custom items for store %d: %w", store.ID, err)
		}
		snap.CustomItems[store.ID] = custom

		customByID := make(map[int64]catalogmodels.Item, len(custom))
		for _, c := range custom {
			customByID[c.ID] = c
		}

		inv, err := s.registry.Inventory(ctx, store.ID)
		if err != nil {
			return nil, fmt.Errorf("read inventory for store %d: %w", store.ID, err)
		}

		si := models.StoreInventory{StoreID: store.ID, Name: store.Name}
		for _, l := range inv {
			item, ok := byID[l.ItemID]
			if !ok {
				if item, ok = customByID[l.ItemID]; !ok {
					s.log.WarnContext(ctx, "listing references unknown item",
						"store_id", store.ID, "item_id", l.ItemID)
					continue
				}
			}
			si.Listings = append(si.Listings, models.PricedItem{
				Item:    item.WithPrice(l.Price),
				StoreID: store.ID,
				Price:   l.Price,
			})
		}
		snap.Stores = append(snap.Stores, si)
	}

	return snap, nil
}
