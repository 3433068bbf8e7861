package services

import (
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	"github.com/ghuser/forgemart/services/market/domain/models"
)

// DefaultRelatedLimit is the number of related items shown on a product page.
const DefaultRelatedLimit = 3

// Related ranks up to limit related items for a subject, using a strict
// tie-break cascade over the snapshot's listings:
//
//  1. same store, same manufacturer
//  2. same store, any manufacturer
//  3. other stores, same manufacturer
//  4. any remaining listing, in store-iteration order
//
// Tiers 1 and 3 are skipped entirely when the subject is store-authored
// (manufacturer id 0). Within a tier, candidates keep their inventory
// insertion order. The subject itself is never returned and no item appears
// twice; the result is truncated to limit.
func Related(snap models.Snapshot, subject catalogmodels.Item, subjectStoreID int64, limit int) []models.PricedItem {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	pool := snap.AllListings()
	sameMaker := subject.ManufacturerID != catalogmodels.StoreOriginalManufacturerID

	tiers := []func(models.PricedItem) bool{
		func(l models.PricedItem) bool {
			return sameMaker && l.StoreID == subjectStoreID && l.Item.ManufacturerID == subject.ManufacturerID
		},
		func(l models.PricedItem) bool {
			return l.StoreID == subjectStoreID
		},
		func(l models.PricedItem) bool {
			return sameMaker && l.StoreID != subjectStoreID && l.Item.ManufacturerID == subject.ManufacturerID
		},
		func(models.PricedItem) bool { return true },
	}

	selected := make([]models.PricedItem, 0, limit)
	seen := map[int64]bool{subject.ID: true}
	for _, match := range tiers {
		for _, l := range pool {
			if len(selected) == limit {
				return selected
			}
			if seen[l.Item.ID] || !match(l) {
				continue
			}
			seen[l.Item.ID] = true
			selected = append(selected, l)
		}
	}
	return selected
}
