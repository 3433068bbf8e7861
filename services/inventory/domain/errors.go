package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrDuplicateListing indicates the item is already listed in the store's
	// inventory. The existing listing is left untouched.
	ErrDuplicateListing = errors.New("item already listed in store inventory")

	// ErrListingNotFound indicates the store has no listing for the item.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidPrice indicates a negative or non-numeric price. Prices are
	// non-negative with two-decimal precision.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidMarkup indicates a markup whose amount is not a finite number
	// or whose type is unknown.
	ErrInvalidMarkup = errors.New("invalid markup")

	// ErrUnitTypeTaken indicates the store already lists an item of the same
	// unit type. Each store carries at most one listing per unit type.
	ErrUnitTypeTaken = errors.New("unit type already in store")

	// ErrItemNotAllowed indicates a catalogue item outside the store's
	// allow-list. Stores may only list catalogue items originally assigned
	// to them, plus their own custom items.
	ErrItemNotAllowed = errors.New("item not available for this store")

	// ErrInvalidItem indicates a custom item draft violating domain constraints.
	ErrInvalidItem = errors.New("invalid item")
)
