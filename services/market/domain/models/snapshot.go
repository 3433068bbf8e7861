// Package models holds the read-side view types for the market context.
// The market never mutates anything; it composes a point-in-time snapshot
// of the catalogue and every store's registry state, then answers questions
// about it with pure functions.
package models

import (
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
)

// UnassignedStoreID marks an item no store currently lists.
const UnassignedStoreID int64 = 0

// PricedItem is an item offered by a store at its effective price.
type PricedItem struct {
	Item    catalogmodels.Item
	StoreID int64
	Price   float64
}

// StoreInventory is one store's resolved inventory in listing order.
type StoreInventory struct {
	StoreID  int64
	Name     string
	Listings []PricedItem
}

// Snapshot is a point-in-time view of the marketplace read side. Stores are
// ordered by ascending store identifier; listings keep their insertion order.
// CustomItems maps a store to its full custom archive, listed or not.
type Snapshot struct {
	Catalogue     []catalogmodels.Item
	Stores        []StoreInventory
	CustomItems   map[int64][]catalogmodels.Item
	Manufacturers map[int64]string
}

// Resolution is the outcome of resolving an item identifier: the item itself
// and the store currently selling it, UnassignedStoreID when none does. Price
// is the selling store's price, or the item's base price when unassigned.
type Resolution struct {
	Item    catalogmodels.Item
	StoreID int64
	Price   float64
}

// AllListings flattens the snapshot into store-iteration order: stores by
// ascending identifier, listings in insertion order within each store.
func (s Snapshot) AllListings() []PricedItem {
	var out []PricedItem
	for _, store := range s.Stores {
		out = append(out, store.Listings...)
	}
	return out
}

// ManufacturerName returns the display name for a manufacturer identifier,
// empty for unknown or store-original (custom) items.
func (s Snapshot) ManufacturerName(id int64) string {
	return s.Manufacturers[id]
}
