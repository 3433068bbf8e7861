package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no item with the requested identifier exists
	// in the catalogue or in any store's custom archive.
	ErrItemNotFound = errors.New("item not found")

	// ErrStoreNotFound indicates an unknown store identifier.
	ErrStoreNotFound = errors.New("store not found")

	// ErrManufacturerNotFound indicates an unknown manufacturer identifier.
	ErrManufacturerNotFound = errors.New("manufacturer not found")
)
