package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/market/application/services"
	"github.com/ghuser/forgemart/services/market/domain/models"
)

// MarketItemResponse is the buyer-facing item representation: the item at
// its effective price, plus the store selling it (0 when unassigned).
type MarketItemResponse struct {
	ID             int64    `json:"id"              example:"1"`
	Name           string   `json:"name"            example:"Knight of the realm"`
	GameSystem     string   `json:"game_system"     example:"Warhammer Old World"`
	Army           string   `json:"army"            example:"Bretonnia"`
	UnitType       string   `json:"unit_type"       example:"Knight of the realm"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"           example:"14.99"`
	Tags           []string `json:"tags"`
	Image          string   `json:"image"`
	Format         string   `json:"format"          example:"3D"`
	Type           string   `json:"type"            example:"unit"`
	ManufacturerID int64    `json:"manufacturer_id" example:"1"`
	Downloads      int      `json:"downloads"       example:"1247"`
	StoreID        int64    `json:"store_id"        example:"1"`
} // @name MarketItemResponse

// ItemPageResponse is the full product page payload.
type ItemPageResponse struct {
	Item      MarketItemResponse   `json:"item"`
	StoreName string               `json:"store_name,omitempty" example:"Epic Prints Shop"`
	Related   []MarketItemResponse `json:"related"`
} // @name ItemPageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name MarketErrorResponse

func pricedToResponse(p models.PricedItem) MarketItemResponse {
	i := p.Item
	return MarketItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		GameSystem:     i.GameSystem,
		Army:           i.Army,
		UnitType:       i.UnitType,
		Description:    i.Description,
		Price:          p.Price,
		Tags:           i.Tags,
		Image:          i.Image,
		Format:         i.Format,
		Type:           i.Type,
		ManufacturerID: i.ManufacturerID,
		Downloads:      i.Downloads,
		StoreID:        p.StoreID,
	}
}

// GetItemPageHandler handles GET /market/items/{id}.
type GetItemPageHandler struct {
	svc *appsvcs.Services
}

// NewGetItemPageHandler returns a GetItemPageHandler backed by the given services.
func NewGetItemPageHandler(svc *appsvcs.Services) *GetItemPageHandler {
	return &GetItemPageHandler{svc: svc}
}

// Execute resolves an item and returns it with its related items.
//
//	@Summary		Get product page
//	@Description	Resolves the item and the store selling it, and ranks up to three related items
//	@Tags			market
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ItemPageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/market/items/{id} [get]
func (h *GetItemPageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	page, err := h.svc.Market.ItemPage(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ItemPageResponse{
		Item: pricedToResponse(models.PricedItem{
			Item:    page.Resolution.Item,
			StoreID: page.Resolution.StoreID,
			Price:   page.Resolution.Price,
		}),
		StoreName: page.StoreName,
		Related:   make([]MarketItemResponse, 0, len(page.Related)),
	}
	for _, rel := range page.Related {
		resp.Related = append(resp.Related, pricedToResponse(rel))
	}

	httpx.JSON(w, http.StatusOK, resp)
}
