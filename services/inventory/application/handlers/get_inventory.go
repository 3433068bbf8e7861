package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// GetInventoryHandler handles GET /stores/{storeID}/inventory.
type GetInventoryHandler struct {
	svc *appsvcs.Services
}

// NewGetInventoryHandler returns a GetInventoryHandler backed by the given services.
func NewGetInventoryHandler(svc *appsvcs.Services) *GetInventoryHandler {
	return &GetInventoryHandler{svc: svc}
}

// Execute returns the store's current inventory in listing order.
//
//	@Summary		Get store inventory
//	@Description	Returns the store's listings joined with their items, seeding defaults on first access
//	@Tags			inventory
//	@Produce		json
//	@Param			storeID	path		int	true	"Store ID"
//	@Success		200		{array}		ListingResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/stores/{storeID}/inventory [get]
func (h *GetInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	listings, err := h.svc.Inventory.Inventory(r.Context(), storeID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, listingsToResponse(listings))
}
