package models

import "math"

// StoreOriginalManufacturerID marks an item authored by a store itself
// rather than sourced from the shared catalogue.
const StoreOriginalManufacturerID int64 = 0

// Item is a miniature offered on the marketplace. Catalogue items are
// immutable reference data; the price here is the manufacturer base price —
// stores override it per listing.
type Item struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	GameSystem     string   `json:"game_system"`
	Army           string   `json:"army"`
	UnitType       string   `json:"unit_type"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Tags           []string `json:"tags"`
	Image          string   `json:"image"`
	Format         string   `json:"format"`
	Type           string   `json:"type"`
	ManufacturerID int64    `json:"manufacturer_id"`
	Downloads      int      `json:"downloads"`
	Link           string   `json:"link,omitempty"`
}

// IsCustom reports whether the item is store-original (manufacturer id 0).
func (i Item) IsCustom() bool {
	return i.ManufacturerID == StoreOriginalManufacturerID
}

// WithPrice returns a copy of the item carrying the given effective price.
// Used when projecting a store listing onto its catalogue item.
func (i Item) WithPrice(price float64) Item {
	i.Price = price
	return i
}

// RoundPrice normalizes a price to two-decimal (cent) precision.
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
