package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
	"github.com/ghuser/forgemart/services/catalog/domain/models"
)

// ItemResponse is the catalogue item representation returned by the API.
type ItemResponse struct {
	ID             int64    `json:"id"              example:"1"`
	Name           string   `json:"name"            example:"Knight of the realm"`
	GameSystem     string   `json:"game_system"     example:"Warhammer Old World"`
	Army           string   `json:"army"            example:"Bretonnia"`
	UnitType       string   `json:"unit_type"       example:"Knight of the realm"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"           example:"12.99"`
	Tags           []string `json:"tags"`
	Image          string   `json:"image"`
	Format         string   `json:"format"          example:"3D"`
	Type           string   `json:"type"            example:"unit"`
	ManufacturerID int64    `json:"manufacturer_id" example:"1"`
	Downloads      int      `json:"downloads"       example:"1247"`
	Link           string   `json:"link,omitempty"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ItemToResponse maps a domain item to its API representation.
func ItemToResponse(i models.Item) ItemResponse {
	return ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		GameSystem:     i.GameSystem,
		Army:           i.Army,
		UnitType:       i.UnitType,
		Description:    i.Description,
		Price:          i.Price,
		Tags:           i.Tags,
		Image:          i.Image,
		Format:         i.Format,
		Type:           i.Type,
		ManufacturerID: i.ManufacturerID,
		Downloads:      i.Downloads,
		Link:           i.Link,
	}
}

// ItemsToResponse maps a slice of domain items, always returning a non-nil slice.
func ItemsToResponse(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ItemToResponse(i))
	}
	return out
}

// GetItemHandler handles GET /catalog/items/{id}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one catalogue item.
//
//	@Summary		Get catalogue item
//	@Description	Returns a single item from the manufacturer catalogue
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.svc.Catalog.ItemByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ItemToResponse(*item))
}
