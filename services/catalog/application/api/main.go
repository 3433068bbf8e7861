package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
)

// CatalogRoutes registers catalogue endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/items", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/items/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Get("/manufacturers", handlers.NewListManufacturersHandler(svcs).Execute)
		r.Get("/manufacturers/{id}", handlers.NewGetManufacturerHandler(svcs).Execute)
		r.Get("/stores", handlers.NewListStoresHandler(svcs).Execute)
	})
}
