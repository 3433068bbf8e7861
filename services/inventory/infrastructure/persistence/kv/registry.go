// Package kv implements the inventory registry against the whole-value
// key-value substrate. Key layout, one JSON document per key:
//
//	store_<id>_items        []Listing (ordered)
//	store_<id>_custom_items []Item    (store-authored archive)
//	store_<id>_allowed_ids  []int64   (catalogue allow-list)
//	store_<id>_info         Store     (profile override)
//
// Writes replace the whole value; there is no compare-and-swap. Two writers
// racing on the same store clobber each other last-write-wins — an accepted
// property of the substrate, surfaced to consumers through inventory.changed
// events that prompt a re-read.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghuser/forgemart/pkg/kvstore"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	"github.com/ghuser/forgemart/services/inventory/domain/models"
)

// Registry implements repositories.Registry on a kvstore.Store.
type Registry struct {
	store kvstore.Store
}

// NewRegistry returns a Registry backed by the given substrate.
func NewRegistry(store kvstore.Store) *Registry {
	return &Registry{store: store}
}

func itemsKey(storeID int64) string       { return fmt.Sprintf("store_%d_items", storeID) }
func customItemsKey(storeID int64) string { return fmt.Sprintf("store_%d_custom_items", storeID) }
func allowedIDsKey(storeID int64) string  { return fmt.Sprintf("store_%d_allowed_ids", storeID) }
func infoKey(storeID int64) string        { return fmt.Sprintf("store_%d_info", storeID) }

// Inventory returns the store's ordered listings, empty when uninitialized.
func (r *Registry) Inventory(ctx context.Context, storeID int64) ([]models.Listing, error) {
	var inv []models.Listing
	if err := r.read(ctx, itemsKey(storeID), &inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// InitializeDefault seeds inventory and allow-list from the default mapping.
// Idempotent: an existing inventory key makes this a no-op.
func (r *Registry) InitializeDefault(ctx context.Context, storeID int64) error {
	if _, err := r.store.Get(ctx, itemsKey(storeID)); err == nil {
		return nil
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("check inventory: %w", err)
	}

	defaults := models.DefaultInventories[storeID]
	if defaults == nil {
		defaults = []models.Listing{}
	}
	if err := r.write(ctx, itemsKey(storeID), defaults); err != nil {
		return err
	}
	return r.write(ctx, allowedIDsKey(storeID), models.DefaultAllowedItemIDs(storeID))
}

// AddListing appends a single listing via the domain Add rule.
func (r *Registry) AddListing(ctx context.Context, storeID int64, l models.Listing) ([]models.Listing, error) {
	inv, err := r.Inventory(ctx, storeID)
	if err != nil {
		return nil, err
	}
	updated, err := models.Add(inv, l)
	if err != nil {
		return nil, err
	}
	if err := r.write(ctx, itemsKey(storeID), updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AddListings appends a batch atomically: the whole batch is validated
// in memory first, then written in one Set. Any failure leaves the stored
// inventory exactly as it was.
func (r *Registry) AddListings(ctx context.Context, storeID int64, batch []models.Listing) ([]models.Listing, error) {
	inv, err := r.Inventory(ctx, storeID)
	if err != nil {
		return nil, err
	}
	updated := inv
	for _, l := range batch {
		if updated, err = models.Add(updated, l); err != nil {
			return nil, err
		}
	}
	if err := r.write(ctx, itemsKey(storeID), updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveListing deletes the listing if present; absent is a no-op.
func (r *Registry) RemoveListing(ctx context.Context, storeID, itemID int64) error {
	inv, err := r.Inventory(ctx, storeID)
	if err != nil {
		return err
	}
	if !models.Contains(inv, itemID) {
		return nil
	}
	return r.write(ctx, itemsKey(storeID), models.Remove(inv, itemID))
}

// UpdatePrice mutates a single listing's price in place.
func (r *Registry) UpdatePrice(ctx context.Context, storeID, itemID int64, price float64) error {
	inv, err := r.Inventory(ctx, storeID)
	if err != nil {
		return err
	}
	updated, err := models.Reprice(inv, itemID, price)
	if err != nil {
		return err
	}
	return r.write(ctx, itemsKey(storeID), updated)
}

// CustomItems returns the store's custom archive, empty when none exists.
func (r *Registry) CustomItems(ctx context.Context, storeID int64) ([]catalogmodels.Item, error) {
	var items []catalogmodels.Item
	if err := r.read(ctx, customItemsKey(storeID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ArchiveCustomItem appends to the custom archive.
func (r *Registry) ArchiveCustomItem(ctx context.Context, storeID int64, item catalogmodels.Item) error {
	items, err := r.CustomItems(ctx, storeID)
	if err != nil {
		return err
	}
	return r.write(ctx, customItemsKey(storeID), append(items, item))
}

// AllowedItemIDs returns the catalogue allow-list, empty when uninitialized.
func (r *Registry) AllowedItemIDs(ctx context.Context, storeID int64) ([]int64, error) {
	var ids []int64
	if err := r.read(ctx, allowedIDsKey(storeID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// StoreProfile returns the saved profile override, or nil when absent.
func (r *Registry) StoreProfile(ctx context.Context, storeID int64) (*catalogmodels.Store, error) {
	raw, err := r.store.Get(ctx, infoKey(storeID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store profile: %w", err)
	}
	var profile catalogmodels.Store
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("decode store profile: %w", err)
	}
	return &profile, nil
}

// SaveStoreProfile writes the profile override.
func (r *Registry) SaveStoreProfile(ctx context.Context, storeID int64, profile catalogmodels.Store) error {
	return r.write(ctx, infoKey(storeID), profile)
}

// read unmarshals the JSON document at key into v; a missing key leaves v
// at its zero value.
func (r *Registry) read(ctx context.Context, key string, v any) error {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Registry) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
