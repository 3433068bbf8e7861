// Package services contains the pure read-side functions of the market
// context: listing resolution, related-item ranking, and filtering/sorting.
// Every function is deterministic over its snapshot input and touches no
// external state.
package services

import (
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	"github.com/ghuser/forgemart/services/market/domain/models"
)

// Resolve determines the item behind an identifier and the store, if any,
// currently selling it. Catalogue items are the common case and resolve
// first; store-authored items are found by scanning each store's custom
// archive, since a custom item only ever appears in its own store.
//
// Resolution order:
//  1. catalogue lookup by identifier
//  2. if found, first selling store in ascending store-ID order, else
//     UnassignedStoreID
//  3. otherwise, first store whose custom archive holds the identifier
//  4. otherwise ErrItemNotFound
func Resolve(snap models.Snapshot, itemID int64) (models.Resolution, error) {
	for _, item := range snap.Catalogue {
		if item.ID != itemID {
			continue
		}
		for _, store := range snap.Stores {
			for _, l := range store.Listings {
				if l.Item.ID == itemID {
					return models.Resolution{Item: l.Item, StoreID: store.StoreID, Price: l.Price}, nil
				}
			}
		}
		return models.Resolution{Item: item, StoreID: models.UnassignedStoreID, Price: item.Price}, nil
	}

	for _, store := range snap.Stores {
		for _, item := range snap.CustomItems[store.StoreID] {
			if item.ID != itemID {
				continue
			}
			price := item.Price
			for _, l := range store.Listings {
				if l.Item.ID == itemID {
					price = l.Price
					break
				}
			}
			return models.Resolution{Item: item.WithPrice(price), StoreID: store.StoreID, Price: price}, nil
		}
	}

	return models.Resolution{}, catalogdomain.ErrItemNotFound
}
