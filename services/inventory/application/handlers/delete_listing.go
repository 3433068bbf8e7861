package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// RemoveListingHandler handles DELETE /stores/{storeID}/inventory/{itemID}.
type RemoveListingHandler struct {
	svc *appsvcs.Services
}

// NewRemoveListingHandler returns a RemoveListingHandler backed by the given services.
func NewRemoveListingHandler(svc *appsvcs.Services) *RemoveListingHandler {
	return &RemoveListingHandler{svc: svc}
}

// Execute delists an item. Removing an item that is not listed succeeds.
//
//	@Summary		Remove listing
//	@Description	Delists an item from the store. Idempotent; the item survives in the catalogue or custom archive
//	@Tags			inventory
//	@Produce		json
//	@Param			storeID	path	int	true	"Store ID"
//	@Param			itemID	path	int	true	"Item ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/stores/{storeID}/inventory/{itemID} [delete]
func (h *RemoveListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}
	itemID, ok := itemIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.Inventory.RemoveListing(r.Context(), storeID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
