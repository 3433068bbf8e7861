package models

// Manufacturer is a creator of catalogue miniatures. Immutable reference data.
type Manufacturer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Since       string `json:"since"`
	Logo        string `json:"logo"`
	Website     string `json:"website,omitempty"`
}

// Store is a retailer that lists catalogue or custom items at its own prices.
// Immutable reference data — a store's sellable items live in the inventory
// registry, never on the store record itself.
type Store struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Since       string `json:"since"`
	Logo        string `json:"logo"`
	Owner       string `json:"owner,omitempty"`
}
