package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// InventoryRoutes registers per-store inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/stores/{storeID}", func(r chi.Router) {
		r.Get("/inventory", handlers.NewGetInventoryHandler(svcs).Execute)
		r.Post("/inventory", handlers.NewAddListingHandler(svcs).Execute)
		r.Post("/inventory/bulk", handlers.NewBulkAddHandler(svcs).Execute)
		r.Delete("/inventory/{itemID}", handlers.NewRemoveListingHandler(svcs).Execute)
		r.Put("/inventory/{itemID}/price", handlers.NewUpdatePriceHandler(svcs).Execute)
		r.Get("/custom-items", handlers.NewListCustomItemsHandler(svcs).Execute)
		r.Post("/custom-items", handlers.NewCreateCustomItemHandler(svcs).Execute)
		r.Get("/profile", handlers.NewGetStoreProfileHandler(svcs).Execute)
		r.Put("/profile", handlers.NewSaveStoreProfileHandler(svcs).Execute)
	})
}
