package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/validator"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
	"github.com/ghuser/forgemart/services/inventory/domain/models"
)

// BulkAddRequest is the payload for listing several items with one markup.
type BulkAddRequest struct {
	ItemIDs []int64  `json:"item_ids" validate:"required,min=1"`
	Markup  MarkupDT `json:"markup"   validate:"required"`
} // @name BulkAddRequest

// MarkupDT is the markup rule applied to every base price in a bulk add.
type MarkupDT struct {
	Type   string   `json:"type"   validate:"required,oneof=percent fixed" example:"percent"`
	Amount *float64 `json:"amount" validate:"required"                     example:"10"`
} // @name Markup

// BulkAddHandler handles POST /stores/{storeID}/inventory/bulk.
type BulkAddHandler struct {
	svc *appsvcs.Services
}

// NewBulkAddHandler returns a BulkAddHandler backed by the given services.
func NewBulkAddHandler(svc *appsvcs.Services) *BulkAddHandler {
	return &BulkAddHandler{svc: svc}
}

// Execute lists every candidate with the markup applied, all or nothing.
//
//	@Summary		Bulk add listings
//	@Description	Lists a batch of items priced from their base price plus a percent or fixed markup. The batch is atomic
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			storeID	path		int				true	"Store ID"
//	@Param			request	body		BulkAddRequest	true	"Items and markup"
//	@Success		201		{array}		ListingResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/stores/{storeID}/inventory/bulk [post]
func (h *BulkAddHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	req, ok := validator.ValidateRequest[BulkAddRequest](w, r)
	if !ok {
		return
	}

	markup := models.Markup{Type: models.MarkupType(req.Markup.Type), Amount: *req.Markup.Amount}
	listings, err := h.svc.Inventory.BulkAdd(r.Context(), storeID, req.ItemIDs, markup)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, listingsToResponse(listings))
}
