package models

// DefaultInventories is the fixed mapping used to seed a store's inventory
// the first time it is accessed. Store 1 prices at a premium, store 2
// mid-range, store 3 below the manufacturer base price.
var DefaultInventories = map[int64][]Listing{
	1: {
		{ItemID: 1, Price: 14.99},
		{ItemID: 2, Price: 10.49},
		{ItemID: 4, Price: 12.99},
		{ItemID: 7, Price: 16.99},
	},
	2: {
		{ItemID: 1, Price: 13.49},
		{ItemID: 3, Price: 9.49},
		{ItemID: 5, Price: 8.49},
		{ItemID: 8, Price: 10.49},
	},
	3: {
		{ItemID: 2, Price: 7.99},
		{ItemID: 4, Price: 9.99},
		{ItemID: 6, Price: 6.99},
		{ItemID: 9, Price: 8.99},
	},
}

// DefaultAllowedItemIDs returns the catalogue items a store may list: the
// ones in its default inventory. Custom items are always allowed and are not
// tracked here.
func DefaultAllowedItemIDs(storeID int64) []int64 {
	listings := DefaultInventories[storeID]
	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ItemID)
	}
	return ids
}
