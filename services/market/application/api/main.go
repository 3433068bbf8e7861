package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/services/market/application/handlers"
	appsvcs "github.com/ghuser/forgemart/services/market/application/services"
)

// MarketRoutes registers buyer-facing read endpoints on the provided chi router.
func MarketRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/market", func(r chi.Router) {
		r.Get("/items/{id}", handlers.NewGetItemPageHandler(svcs).Execute)
		r.Get("/search", handlers.NewSearchHandler(svcs).Execute)
	})
}
