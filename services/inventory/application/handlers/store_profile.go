package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	"github.com/ghuser/forgemart/pkg/validator"
	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// StoreProfileResponse is the store profile returned by the API.
type StoreProfileResponse struct {
	ID          int64  `json:"id"          example:"1"`
	Name        string `json:"name"        example:"Epic Prints Shop"`
	Description string `json:"description"`
	Since       string `json:"since"       example:"2019"`
	Logo        string `json:"logo"`
	Owner       string `json:"owner,omitempty" example:"John Smith"`
} // @name StoreProfileResponse

// SaveStoreProfileRequest is the payload for an operator profile update.
type SaveStoreProfileRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Since       string `json:"since"`
	Logo        string `json:"logo"`
	Owner       string `json:"owner"`
} // @name SaveStoreProfileRequest

func storeToProfileResponse(s catalogmodels.Store) StoreProfileResponse {
	return StoreProfileResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Since:       s.Since,
		Logo:        s.Logo,
		Owner:       s.Owner,
	}
}

// GetStoreProfileHandler handles GET /stores/{storeID}/profile.
type GetStoreProfileHandler struct {
	svc *appsvcs.Services
}

// NewGetStoreProfileHandler returns a GetStoreProfileHandler backed by the given services.
func NewGetStoreProfileHandler(svc *appsvcs.Services) *GetStoreProfileHandler {
	return &GetStoreProfileHandler{svc: svc}
}

// Execute returns the operator override when present, the catalogue record otherwise.
//
//	@Summary		Get store profile
//	@Description	Returns the store's profile, preferring the operator-saved override
//	@Tags			inventory
//	@Produce		json
//	@Param			storeID	path		int	true	"Store ID"
//	@Success		200		{object}	StoreProfileResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/stores/{storeID}/profile [get]
func (h *GetStoreProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	profile, err := h.svc.Inventory.StoreProfile(r.Context(), storeID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, storeToProfileResponse(*profile))
}

// SaveStoreProfileHandler handles PUT /stores/{storeID}/profile.
type SaveStoreProfileHandler struct {
	svc *appsvcs.Services
}

// NewSaveStoreProfileHandler returns a SaveStoreProfileHandler backed by the given services.
func NewSaveStoreProfileHandler(svc *appsvcs.Services) *SaveStoreProfileHandler {
	return &SaveStoreProfileHandler{svc: svc}
}

// Execute stores an operator profile override for the store.
//
//	@Summary		Save store profile
//	@Description	Saves an operator-edited profile that overrides the catalogue store record
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			storeID	path		int						true	"Store ID"
//	@Param			request	body		SaveStoreProfileRequest	true	"Profile"
//	@Success		200		{object}	StoreProfileResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/stores/{storeID}/profile [put]
func (h *SaveStoreProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeIDParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	req, ok := validator.ValidateRequest[SaveStoreProfileRequest](w, r)
	if !ok {
		return
	}

	profile := catalogmodels.Store{
		ID:          storeID,
		Name:        req.Name,
		Description: req.Description,
		Since:       req.Since,
		Logo:        req.Logo,
		Owner:       req.Owner,
	}

	if err := h.svc.Inventory.SaveStoreProfile(r.Context(), storeID, profile); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, storeToProfileResponse(profile))
}
