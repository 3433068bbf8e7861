package services

import (
	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/pkg/kvstore"
	catalogsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
	catalogpg "github.com/ghuser/forgemart/services/catalog/infrastructure/persistence/postgres"
	"github.com/ghuser/forgemart/services/inventory/infrastructure/persistence/kv"
)

// Services is the application-layer service container for the inventory context.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory services with infrastructure from the Application
// container: the Redis-backed key-value substrate, the catalog read side,
// and the event bus.
func New(a *app.Application) *Services {
	registry := kv.NewRegistry(kvstore.NewRedisStore(a.Redis))
	catalog := catalogsvcs.NewCatalogService(
		catalogpg.NewCatalogRepository(a.Db),
		cache.NewCatalogItemCache(a.Redis),
	)
	return &Services{
		Inventory: NewInventoryService(registry, catalog, a.EventBus, NewTimestampIDGenerator(), a.Logger),
	}
}
