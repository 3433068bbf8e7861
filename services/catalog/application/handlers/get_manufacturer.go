package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
)

// ManufacturerDetailResponse is a manufacturer together with its catalogue.
type ManufacturerDetailResponse struct {
	Manufacturer ManufacturerResponse `json:"manufacturer"`
	Items        []ItemResponse       `json:"items"`
} // @name ManufacturerDetailResponse

// GetManufacturerHandler handles GET /catalog/manufacturers/{id}.
type GetManufacturerHandler struct {
	svc *appsvcs.Services
}

// NewGetManufacturerHandler returns a handler backed by the given services.
func NewGetManufacturerHandler(svc *appsvcs.Services) *GetManufacturerHandler {
	return &GetManufacturerHandler{svc: svc}
}

// Execute returns one manufacturer and its catalogue items.
//
//	@Summary		Get manufacturer
//	@Description	Returns a single manufacturer together with every item it publishes
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"Manufacturer ID"
//	@Success		200	{object}	ManufacturerDetailResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/manufacturers/{id} [get]
func (h *GetManufacturerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid manufacturer id")
		return
	}

	maker, err := h.svc.Catalog.ManufacturerByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.Catalog.ItemsByManufacturer(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ManufacturerDetailResponse{
		Manufacturer: ManufacturerResponse{
			ID:          maker.ID,
			Name:        maker.Name,
			Description: maker.Description,
			Since:       maker.Since,
			Logo:        maker.Logo,
			Website:     maker.Website,
		},
		Items: ItemsToResponse(items),
	})
}
