package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicInventoryChanged is the Watermill topic published after any successful
// inventory mutation. Events carry no inventory payload; consumers re-read
// the registry on receipt (eventually consistent, last write wins).
const TopicInventoryChanged = "inventory.changed"

// Inventory mutation actions carried in InventoryChangedEvent.
const (
	ActionListingAdded      = "listing_added"
	ActionListingRemoved    = "listing_removed"
	ActionPriceUpdated      = "price_updated"
	ActionBulkAdded         = "bulk_added"
	ActionCustomItemCreated = "custom_item_created"
	ActionProfileUpdated    = "profile_updated"
)

// InventoryChangedEvent is published after a store's inventory state changed.
type InventoryChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	StoreID    int64     `json:"store_id"`
	Action     string    `json:"action"`
	ItemIDs    []int64   `json:"item_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
