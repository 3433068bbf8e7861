package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	appsvcs "github.com/ghuser/forgemart/services/inventory/application/services"
)

// ItemPayload is the item representation embedded in inventory responses.
type ItemPayload struct {
	ID             int64    `json:"id"              example:"1"`
	Name           string   `json:"name"            example:"Knight of the realm"`
	GameSystem     string   `json:"game_system"     example:"Warhammer Old World"`
	Army           string   `json:"army"            example:"Bretonnia"`
	UnitType       string   `json:"unit_type"       example:"Knight of the realm"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	Image          string   `json:"image"`
	Format         string   `json:"format"          example:"3D"`
	Type           string   `json:"type"            example:"unit"`
	ManufacturerID int64    `json:"manufacturer_id" example:"1"`
	Downloads      int      `json:"downloads"       example:"1247"`
} // @name InventoryItemPayload

// ListingResponse is one store listing: the item plus the store's price.
type ListingResponse struct {
	Item  ItemPayload `json:"item"`
	Price float64     `json:"price" example:"14.99"`
} // @name ListingResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item already listed in store inventory"`
} // @name InventoryErrorResponse

func itemToPayload(i catalogmodels.Item) ItemPayload {
	return ItemPayload{
		ID:             i.ID,
		Name:           i.Name,
		GameSystem:     i.GameSystem,
		Army:           i.Army,
		UnitType:       i.UnitType,
		Description:    i.Description,
		Tags:           i.Tags,
		Image:          i.Image,
		Format:         i.Format,
		Type:           i.Type,
		ManufacturerID: i.ManufacturerID,
		Downloads:      i.Downloads,
	}
}

func listingsToResponse(listings []appsvcs.StoreListing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ListingResponse{Item: itemToPayload(l.Item), Price: l.Price})
	}
	return out
}

// storeIDParam parses the {storeID} route parameter.
func storeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	return id, err == nil
}

// itemIDParam parses the {itemID} route parameter.
func itemIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	return id, err == nil
}
