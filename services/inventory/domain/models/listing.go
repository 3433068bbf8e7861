package models

import (
	"math"

	domain "github.com/ghuser/forgemart/services/inventory/domain"
)

// Listing associates one item with one store at an effective price. The same
// item may be listed by several stores at different prices; within one store's
// inventory each item appears at most once.
type Listing struct {
	ItemID int64   `json:"item_id"`
	Price  float64 `json:"price"`
}

// ValidPrice reports whether p is a usable listing price: a finite,
// non-negative number.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// Add appends a listing to the inventory. Returns ErrDuplicateListing when
// the item is already listed and ErrInvalidPrice on a negative or
// non-numeric price. The input slice is never mutated.
func Add(inv []Listing, l Listing) ([]Listing, error) {
	if !ValidPrice(l.Price) {
		return nil, domain.ErrInvalidPrice
	}
	for _, existing := range inv {
		if existing.ItemID == l.ItemID {
			return nil, domain.ErrDuplicateListing
		}
	}
	out := make([]Listing, len(inv), len(inv)+1)
	copy(out, inv)
	return append(out, l), nil
}

// Remove deletes the listing for itemID, preserving the order of the rest.
// Removing an absent item is a no-op, not an error.
func Remove(inv []Listing, itemID int64) []Listing {
	out := make([]Listing, 0, len(inv))
	for _, l := range inv {
		if l.ItemID != itemID {
			out = append(out, l)
		}
	}
	return out
}

// Reprice sets a new price on the listing for itemID, leaving every other
// field and listing untouched. Returns ErrInvalidPrice for negative or
// non-numeric prices and ErrListingNotFound when the item is not listed.
func Reprice(inv []Listing, itemID int64, price float64) ([]Listing, error) {
	if !ValidPrice(price) {
		return nil, domain.ErrInvalidPrice
	}
	out := make([]Listing, len(inv))
	copy(out, inv)
	for i := range out {
		if out[i].ItemID == itemID {
			out[i].Price = price
			return out, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Contains reports whether the inventory holds a listing for itemID.
func Contains(inv []Listing, itemID int64) bool {
	for _, l := range inv {
		if l.ItemID == itemID {
			return true
		}
	}
	return false
}
