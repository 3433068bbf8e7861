package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// ListCustomItemsHandler handles GET /stores/{storeID}/custom-items.
type ListCustomItemsHandler struct {
	svc *appsvcs.Services
}

// NewListCustomItemsHandler returns a ListCustomItemsHandler backed by the given services.
func NewListCustomItemsHandler(svc *appsvcs.Services) *ListCustomItemsHandler {
	return &ListCustomItemsHandler{svc: svc}
}

// Execute returns the store's custom archive, listed or not.
//
//	@Summary		List custom items
//	@Description	Returns every store-authored item in the store's archive, including delisted ones
//	@Tags			inventory
//	@Produce		json
//	@Param			storeID	path		int	true	"Store ID"
//	@Success		200		{array}		ItemPayload
//	@Failure		404		{object}	ErrorResponse
//	@Router			/stores/{storeID}/custom-items [get]
func (h *ListCustomItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	items, err := h.svc.Inventory.CustomItems(r.Context(), storeID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemPayload, 0, len(items))
	for _, i := range items {
		out = append(out, itemToPayload(i))
	}
	httpx.JSON(w, http.StatusOK, out)
}
