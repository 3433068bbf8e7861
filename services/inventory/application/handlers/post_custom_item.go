package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/validator"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
	domainsvcs "github.com/ghuser/forgemart/services/inventory/domain/services"
)

// CreateCustomItemRequest is the payload for a store-authored item.
type CreateCustomItemRequest struct {
	Name        string   `json:"name"        validate:"required,max=200" example:"Grail Reliquae"`
	GameSystem  string   `json:"game_system" validate:"required"         example:"Warhammer Old World"`
	Army        string   `json:"army"        validate:"required"         example:"Bretonnia"`
	UnitType    string   `json:"unit_type"   validate:"required"         example:"Reliquae"`
	Price       *float64 `json:"price"       validate:"required"         example:"11.99"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Format      string   `json:"format"`
	Type        string   `json:"type"`
} // @name CreateCustomItemRequest

// CreateCustomItemHandler handles POST /stores/{storeID}/custom-items.
type CreateCustomItemHandler struct {
	svc *appsvcs.Services
}

// NewCreateCustomItemHandler returns a CreateCustomItemHandler backed by the given services.
func NewCreateCustomItemHandler(svc *appsvcs.Services) *CreateCustomItemHandler {
	return &CreateCustomItemHandler{svc: svc}
}

// Execute creates a custom item, archives it, and lists it immediately.
//
//	@Summary		Create custom item
//	@Description	Builds a store-authored item, adds it to the store's custom archive, and lists it at its own price
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			storeID	path		int						true	"Store ID"
//	@Param			request	body		CreateCustomItemRequest	true	"Custom item draft"
//	@Success		201		{object}	ItemPayload
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/stores/{storeID}/custom-items [post]
func (h *CreateCustomItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	req, ok := validator.ValidateRequest[CreateCustomItemRequest](w, r)
	if !ok {
		return
	}

	draft := domainsvcs.CustomItemDraft{
		Name:        req.Name,
		GameSystem:  req.GameSystem,
		Army:        req.Army,
		UnitType:    req.UnitType,
		Price:       *req.Price,
		Description: req.Description,
		Tags:        req.Tags,
		Image:       req.Image,
		Format:      req.Format,
		Type:        req.Type,
	}

	item, err := h.svc.Inventory.CreateCustomItem(r.Context(), storeID, draft)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, itemToPayload(*item))
}
