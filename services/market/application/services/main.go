package services

import (
	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/pkg/kvstore"
	catalogsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
	catalogpg "github.com/ghuser/forgemart/services/catalog/infrastructure/persistence/postgres"
	"github.com/ghuser/forgemart/services/inventory/infrastructure/persistence/kv"
)

// Services is the application-layer service container for the market context.
type Services struct {
	Market *MarketService
}

// New wires the market read side over the catalog context and the inventory
// registry substrate.
func New(a *app.Application) *Services {
	catalog := catalogsvcs.NewCatalogService(
		catalogpg.NewCatalogRepository(a.Db),
		cache.NewCatalogItemCache(a.Redis),
	)
	registry := kv.NewRegistry(kvstore.NewRedisStore(a.Redis))
	limit := 0
	if a.Cfg != nil {
		limit = a.Cfg.RelatedItemsLimit
	}
	return &Services{
		Market: NewMarketService(catalog, registry, limit, a.Logger),
	}
}
