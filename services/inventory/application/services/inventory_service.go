package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/forgemart/pkg/events"
	"github.com/ghuser/forgemart/pkg/logger"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	domain "github.com/ghuser/forgemart/services/inventory/domain"
	domainevents "github.com/ghuser/forgemart/services/inventory/domain/events"
	"github.com/ghuser/forgemart/services/inventory/domain/models"
	"github.com/ghuser/forgemart/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/forgemart/services/inventory/domain/services"
)

// CatalogReader is the slice of the catalog context the inventory service
// needs: item and store lookups for validation and listing resolution.
type CatalogReader interface {
	ItemByID(ctx context.Context, id int64) (*catalogmodels.Item, error)
	StoreByID(ctx context.Context, id int64) (*catalogmodels.Store, error)
}

// StoreListing is a listing joined with its item, priced at the store's
// effective price.
type StoreListing struct {
	Item  catalogmodels.Item
	Price float64
}

// InventoryService orchestrates the per-store inventory registry: listing
// add/remove/reprice, bulk-priced batches, custom item creation, and store
// profile overrides. Every successful mutation publishes inventory.changed;
// consumers re-read the registry rather than trusting cached state.
type InventoryService struct {
	registry repositories.Registry
	catalog  CatalogReader
	bus      *events.EventBus
	ids      IDGenerator
	log      logger.Logger
}

// NewInventoryService returns an InventoryService wired with the given
// registry, catalog reader, and event bus. A nil bus disables publishing.
func NewInventoryService(
	registry repositories.Registry,
	catalog CatalogReader,
	bus *events.EventBus,
	ids IDGenerator,
	log logger.Logger,
) *InventoryService {
	return &InventoryService{registry: registry, catalog: catalog, bus: bus, ids: ids, log: log}
}

// Inventory returns the store's listings joined with their items, in listing
// order. The store is default-seeded on first access.
func (s *InventoryService) Inventory(ctx context.Context, storeID int64) ([]StoreListing, error) {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}

	inv, err := s.registry.Inventory(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	listings := make([]StoreListing, 0, len(inv))
	for _, l := range inv {
		item, err := s.resolveItem(ctx, storeID, l.ItemID)
		if err != nil {
			// A listing referencing a vanished item is skipped, not fatal —
			// the registry never deletes items, but stale state can occur
			// under last-write-wins.
			s.log.WarnContext(ctx, "listing references unknown item",
				"store_id", storeID, "item_id", l.ItemID)
			continue
		}
		listings = append(listings, StoreListing{Item: item.WithPrice(l.Price), Price: l.Price})
	}
	return listings, nil
}

// AddListing lists a catalogue or custom item in the store at the given
// price. Enforces the store allow-list and the one-listing-per-unit-type
// rule before delegating to the registry.
func (s *InventoryService) AddListing(ctx context.Context, storeID, itemID int64, price float64) ([]StoreListing, error) {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, storeID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAddRules(ctx, storeID, *item, nil); err != nil {
		return nil, err
	}

	if _, err := s.registry.AddListing(ctx, storeID, models.Listing{ItemID: itemID, Price: price}); err != nil {
		return nil, err
	}

	s.publish(ctx, storeID, domainevents.ActionListingAdded, itemID)
	return s.Inventory(ctx, storeID)
}

// RemoveListing delists an item. Idempotent: removing an absent item is a
// no-op. The item itself survives in the catalogue or the custom archive.
func (s *InventoryService) RemoveListing(ctx context.Context, storeID, itemID int64) error {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return err
	}
	if err := s.registry.RemoveListing(ctx, storeID, itemID); err != nil {
		return fmt.Errorf("remove listing: %w", err)
	}
	s.publish(ctx, storeID, domainevents.ActionListingRemoved, itemID)
	return nil
}

// UpdatePrice sets a new effective price on a single listing.
func (s *InventoryService) UpdatePrice(ctx context.Context, storeID, itemID int64, price float64) error {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return err
	}
	if err := s.registry.UpdatePrice(ctx, storeID, itemID, price); err != nil {
		return err
	}
	s.publish(ctx, storeID, domainevents.ActionPriceUpdated, itemID)
	return nil
}

// BulkAdd lists every candidate item with the markup applied to its base
// price, in one atomic batch: all candidates are validated (markup, allow-
// list, unit-type, duplicates) before a single registry write, so either
// every listing is added or none is.
func (s *InventoryService) BulkAdd(ctx context.Context, storeID int64, itemIDs []int64, markup models.Markup) ([]StoreListing, error) {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}
	if err := markup.Validate(); err != nil {
		return nil, err
	}

	batch := make([]models.Listing, 0, len(itemIDs))
	var batchItems []catalogmodels.Item
	for _, id := range itemIDs {
		item, err := s.resolveItem(ctx, storeID, id)
		if err != nil {
			return nil, err
		}
		if err := s.checkAddRules(ctx, storeID, *item, batchItems); err != nil {
			return nil, err
		}
		batchItems = append(batchItems, *item)
		batch = append(batch, models.Listing{ItemID: id, Price: markup.Apply(item.Price)})
	}

	if _, err := s.registry.AddListings(ctx, storeID, batch); err != nil {
		return nil, err
	}

	s.publish(ctx, storeID, domainevents.ActionBulkAdded, itemIDs...)
	return s.Inventory(ctx, storeID)
}

// CreateCustomItem validates and builds a store-authored item, archives it,
// and lists it at its own price. The archive entry persists after delisting
// so the item can be re-offered later.
func (s *InventoryService) CreateCustomItem(ctx context.Context, storeID int64, draft domainsvcs.CustomItemDraft) (*catalogmodels.Item, error) {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}

	item, err := domainsvcs.NewCustomItem(s.ids.NextID(), draft)
	if err != nil {
		return nil, err
	}

	if err := s.registry.ArchiveCustomItem(ctx, storeID, *item); err != nil {
		return nil, fmt.Errorf("archive custom item: %w", err)
	}
	if _, err := s.registry.AddListing(ctx, storeID, models.Listing{ItemID: item.ID, Price: item.Price}); err != nil {
		return nil, err
	}

	s.publish(ctx, storeID, domainevents.ActionCustomItemCreated, item.ID)
	return item, nil
}

// CustomItems returns the store's custom archive.
func (s *InventoryService) CustomItems(ctx context.Context, storeID int64) ([]catalogmodels.Item, error) {
	if err := s.ensureStore(ctx, storeID); err != nil {
		return nil, err
	}
	items, err := s.registry.CustomItems(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("read custom items: %w", err)
	}
	return items, nil
}

// StoreProfile returns the operator-saved profile override when present,
// falling back to the catalogue store record.
func (s *InventoryService) StoreProfile(ctx context.Context, storeID int64) (*catalogmodels.Store, error) {
	store, err := s.catalog.StoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	override, err := s.registry.StoreProfile(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("read store profile: %w", err)
	}
	if override != nil {
		return override, nil
	}
	return store, nil
}

// SaveStoreProfile stores a profile override for the store.
func (s *InventoryService) SaveStoreProfile(ctx context.Context, storeID int64, profile catalogmodels.Store) error {
	if _, err := s.catalog.StoreByID(ctx, storeID); err != nil {
		return err
	}
	profile.ID = storeID
	if err := s.registry.SaveStoreProfile(ctx, storeID, profile); err != nil {
		return fmt.Errorf("save store profile: %w", err)
	}
	s.publish(ctx, storeID, domainevents.ActionProfileUpdated)
	return nil
}

// ensureStore verifies the store exists and default-seeds its registry state.
func (s *InventoryService) ensureStore(ctx context.Context, storeID int64) error {
	if _, err := s.catalog.StoreByID(ctx, storeID); err != nil {
		return err
	}
	if err := s.registry.InitializeDefault(ctx, storeID); err != nil {
		return fmt.Errorf("initialize inventory: %w", err)
	}
	return nil
}

// resolveItem locates an item for this store: catalogue first, then the
// store's own custom archive.
func (s *InventoryService) resolveItem(ctx context.Context, storeID, itemID int64) (*catalogmodels.Item, error) {
	item, err := s.catalog.ItemByID(ctx, itemID)
	if err == nil {
		return item, nil
	}
	custom, cerr := s.registry.CustomItems(ctx, storeID)
	if cerr != nil {
		return nil, fmt.Errorf("read custom items: %w", cerr)
	}
	for i := range custom {
		if custom[i].ID == itemID {
			return &custom[i], nil
		}
	}
	return nil, err
}

// checkAddRules enforces the admin listing rules: catalogue items must be on
// the store's allow-list (custom items always pass), and the store may carry
// at most one listing per unit type. batchItems extends the rule across a
// pending bulk batch.
func (s *InventoryService) checkAddRules(ctx context.Context, storeID int64, item catalogmodels.Item, batchItems []catalogmodels.Item) error {
	if !item.IsCustom() {
		allowed, err := s.registry.AllowedItemIDs(ctx, storeID)
		if err != nil {
			return fmt.Errorf("read allow-list: %w", err)
		}
		found := false
		for _, id := range allowed {
			if id == item.ID {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrItemNotAllowed
		}
	}

	inv, err := s.registry.Inventory(ctx, storeID)
	if err != nil {
		return fmt.Errorf("read inventory: %w", err)
	}
	for _, l := range inv {
		listed, err := s.resolveItem(ctx, storeID, l.ItemID)
		if err != nil {
			continue
		}
		if equalUnitType(listed.UnitType, item.UnitType) {
			return domain.ErrUnitTypeTaken
		}
	}
	for _, b := range batchItems {
		if equalUnitType(b.UnitType, item.UnitType) {
			return domain.ErrUnitTypeTaken
		}
	}
	return nil
}

// publish emits an inventory.changed event. Failures are logged, never
// surfaced — the mutation already succeeded and consumers will converge on
// the next re-read.
func (s *InventoryService) publish(ctx context.Context, storeID int64, action string, itemIDs ...int64) {
	if s.bus == nil {
		return
	}
	event := domainevents.InventoryChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		StoreID:    storeID,
		Action:     action,
		ItemIDs:    itemIDs,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal inventory event", "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicInventoryChanged, msg); err != nil {
		s.log.ErrorContext(ctx, "publish inventory event",
			"store_id", storeID, "action", action, "error", err)
	}
}

func equalUnitType(a, b string) bool {
	return strings.EqualFold(a, b)
}
