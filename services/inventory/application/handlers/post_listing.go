package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/validator"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// AddListingRequest is the payload for listing an item in a store.
type AddListingRequest struct {
	ItemID int64    `json:"item_id" validate:"required" example:"3"`
	Price  *float64 `json:"price"   validate:"required" example:"9.49"`
} // @name AddListingRequest

// AddListingHandler handles POST /stores/{storeID}/inventory.
type AddListingHandler struct {
	svc *appsvcs.Services
}

// NewAddListingHandler returns an AddListingHandler backed by the given services.
func NewAddListingHandler(svc *appsvcs.Services) *AddListingHandler {
	return &AddListingHandler{svc: svc}
}

// Execute lists an item in the store at the given price.
//
//	@Summary		Add listing
//	@Description	Lists a catalogue or custom item in the store, subject to the allow-list and unit-type rules
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			storeID	path		int					true	"Store ID"
//	@Param			request	body		AddListingRequest	true	"Listing to add"
//	@Success		201		{array}		ListingResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/stores/{storeID}/inventory [post]
func (h *AddListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	req, ok := validator.ValidateRequest[AddListingRequest](w, r)
	if !ok {
		return
	}

	listings, err := h.svc.Inventory.AddListing(r.Context(), storeID, req.ItemID, *req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, listingsToResponse(listings))
}
