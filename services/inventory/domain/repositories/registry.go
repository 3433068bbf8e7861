package repositories

import (
	"context"

	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	"github.com/ghuser/forgemart/services/inventory/domain/models"
)

// Registry is the persistence interface for per-store inventory state.
// The domain layer owns this interface; infrastructure implements it against
// the key-value substrate. All writes are whole-value replacements — the
// substrate offers no compare-and-swap, so concurrent writers are last-write-
// wins by design.
type Registry interface {
	// Inventory returns the store's ordered listings. A store that was never
	// initialized yields an empty sequence, never an error.
	Inventory(ctx context.Context, storeID int64) ([]models.Listing, error)

	// InitializeDefault seeds the store's inventory and allow-list from the
	// fixed default mapping on first access. Idempotent: a no-op when the
	// store already has state.
	InitializeDefault(ctx context.Context, storeID int64) error

	// AddListing appends a listing. Returns ErrDuplicateListing when the item
	// is already listed and ErrInvalidPrice on an unusable price.
	AddListing(ctx context.Context, storeID int64, l models.Listing) ([]models.Listing, error)

	// AddListings appends a batch of listings atomically: every listing is
	// validated against the current inventory (and against the rest of the
	// batch) before a single write. On any error no listing is added.
	AddListings(ctx context.Context, storeID int64, batch []models.Listing) ([]models.Listing, error)

	// RemoveListing deletes the listing if present. Removing an absent item
	// is a no-op, not an error. The underlying item survives in the catalogue
	// or the custom archive.
	RemoveListing(ctx context.Context, storeID, itemID int64) error

	// UpdatePrice mutates a single listing's price. Returns ErrInvalidPrice
	// on a negative or non-numeric price, ErrListingNotFound when absent.
	UpdatePrice(ctx context.Context, storeID, itemID int64, price float64) error

	// CustomItems returns the store's archive of store-authored items.
	CustomItems(ctx context.Context, storeID int64) ([]catalogmodels.Item, error)

	// ArchiveCustomItem appends an item to the store's custom archive so it
	// can be re-offered after removal from active inventory.
	ArchiveCustomItem(ctx context.Context, storeID int64, item catalogmodels.Item) error

	// AllowedItemIDs returns the catalogue items the store may list.
	AllowedItemIDs(ctx context.Context, storeID int64) ([]int64, error)

	// StoreProfile returns the store's profile override, or nil when the
	// store never saved one.
	StoreProfile(ctx context.Context, storeID int64) (*catalogmodels.Store, error)

	// SaveStoreProfile stores a profile override for the store.
	SaveStoreProfile(ctx context.Context, storeID int64, profile catalogmodels.Store) error
}
