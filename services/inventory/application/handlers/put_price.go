package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/validator"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// UpdatePriceRequest is the payload for repricing a listing.
type UpdatePriceRequest struct {
	Price *float64 `json:"price" validate:"required" example:"11.49"`
} // @name UpdatePriceRequest

// UpdatePriceHandler handles PUT /stores/{storeID}/inventory/{itemID}/price.
type UpdatePriceHandler struct {
	svc *appsvcs.Services
}

// NewUpdatePriceHandler returns an UpdatePriceHandler backed by the given services.
func NewUpdatePriceHandler(svc *appsvcs.Services) *UpdatePriceHandler {
	return &UpdatePriceHandler{svc: svc}
}

// Execute sets a new effective price on a listing.
//
//	@Summary		Update listing price
//	@Description	Sets a new store price on an existing listing
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			storeID	path	int					true	"Store ID"
//	@Param			itemID	path	int					true	"Item ID"
//	@Param			request	body	UpdatePriceRequest	true	"New price"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/stores/{storeID}/inventory/{itemID}/price [put]
func (h *UpdatePriceHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := validator.ValidateRequest[UpdatePriceRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Inventory.UpdatePrice(r.Context(), storeID, itemID, *req.Price); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
