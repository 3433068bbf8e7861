package repositories

import (
	"context"

	"github.com/ghuser/forgemart/services/catalog/domain/models"
)

// CatalogRepository is the read-only persistence interface for catalogue
// reference data. The domain layer owns this interface; infrastructure
// implements it against PostgreSQL.
type CatalogRepository interface {
	// ItemByID returns the catalogue item with the given id.
	// Returns domain.ErrItemNotFound when absent.
	ItemByID(ctx context.Context, id int64) (*models.Item, error)

	// Items returns every catalogue item ordered by id.
	Items(ctx context.Context) ([]models.Item, error)

	// ItemsByManufacturer returns catalogue items for one manufacturer, ordered by id.
	ItemsByManufacturer(ctx context.Context, manufacturerID int64) ([]models.Item, error)

	// ItemsByUnitType returns catalogue items whose unit type matches
	// case-insensitively, ordered by id.
	ItemsByUnitType(ctx context.Context, unitType string) ([]models.Item, error)

	// SearchItems returns catalogue items matching the query case-insensitively
	// against name, description, army, unit type, or any tag.
	SearchItems(ctx context.Context, query string) ([]models.Item, error)

	// Stores returns every store ordered by id.
	Stores(ctx context.Context) ([]models.Store, error)

	// StoreByID returns one store. Returns domain.ErrStoreNotFound when absent.
	StoreByID(ctx context.Context, id int64) (*models.Store, error)

	// Manufacturers returns every manufacturer ordered by id.
	Manufacturers(ctx context.Context) ([]models.Manufacturer, error)

	// ManufacturerByID returns one manufacturer.
	// Returns domain.ErrManufacturerNotFound when absent.
	ManufacturerByID(ctx context.Context, id int64) (*models.Manufacturer, error)
}
