package services

import (
	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalog services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewCatalogRepository(a.Db)
	itemCache := cache.NewCatalogItemCache(a.Redis)
	return &Services{
		Catalog: NewCatalogService(repo, itemCache),
	}
}
