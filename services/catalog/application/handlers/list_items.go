package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
	"github.com/ghuser/forgemart/services/catalog/domain/models"
)

// ListItemsHandler handles GET /catalog/items.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists catalogue items, optionally filtered by a free-text query or
// an exact unit type.
//
//	@Summary		List catalogue items
//	@Description	Returns the manufacturer catalogue, optionally matching a search query or a unit type
//	@Tags			catalog
//	@Produce		json
//	@Param			q			query	string	false	"Free-text search over name, description, army, unit type and tags"
//	@Param			unit_type	query	string	false	"Exact unit type, matched case-insensitively"
//	@Success		200	{array}		ItemResponse
//	@Router			/catalog/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []models.Item
		err   error
	)
	if unitType := q.Get("unit_type"); unitType != "" {
		items, err = h.svc.Catalog.ItemsByUnitType(r.Context(), unitType)
	} else {
		items, err = h.svc.Catalog.Search(r.Context(), q.Get("q"))
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ItemsToResponse(items))
}
