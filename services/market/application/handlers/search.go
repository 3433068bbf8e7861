package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/market/application/services"
	domainsvcs "github.com/ghuser/forgemart/services/market/domain/services"
)

// SearchEntryResponse is one search hit: the priced item plus its labels.
type SearchEntryResponse struct {
	Item         MarketItemResponse `json:"item"`
	StoreName    string             `json:"store_name"   example:"Epic Prints Shop"`
	Manufacturer string             `json:"manufacturer" example:"Highlands Miniatures"`
} // @name SearchEntryResponse

// FilterOptionsResponse is the cascading option set for the applied filters.
type FilterOptionsResponse struct {
	GameSystems   []string `json:"game_systems"`
	Armies        []string `json:"armies"`
	UnitTypes     []string `json:"unit_types"`
	Manufacturers []string `json:"manufacturers"`
} // @name FilterOptionsResponse

// SearchResponse is the full search payload.
type SearchResponse struct {
	Results []SearchEntryResponse `json:"results"`
	Options FilterOptionsResponse `json:"options"`
} // @name SearchResponse

// SearchHandler handles GET /market/search.
type SearchHandler struct {
	svc *appsvcs.Services
}

// NewSearchHandler returns a SearchHandler backed by the given services.
func NewSearchHandler(svc *appsvcs.Services) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Execute filters and sorts the marketplace listing pool.
//
//	@Summary		Search marketplace
//	@Description	Filters the full listing pool by free text, category selections, and price bucket, sorted stably by the requested key. Also returns the cascading filter options
//	@Tags			market
//	@Produce		json
//	@Param			q				query		string	false	"Free-text query"
//	@Param			game_system		query		string	false	"Game system, or all"
//	@Param			army			query		string	false	"Army, or all"
//	@Param			unit_type		query		string	false	"Unit type, or all"
//	@Param			manufacturer	query		string	false	"Manufacturer name, or all"
//	@Param			store			query		string	false	"Store name, or all"
//	@Param			format			query		string	false	"Format, or all"
//	@Param			type			query		string	false	"Item type, or all"
//	@Param			price			query		string	false	"Price bucket: all, free, premium"
//	@Param			sort			query		string	false	"Sort key: default, popular, price_asc, price_desc"
//	@Param			prev_game_system	query	string	false	"Previously applied game system; triggers a downstream reset on change"
//	@Param			prev_army			query	string	false	"Previously applied army; triggers a downstream reset on change"
//	@Param			prev_unit_type		query	string	false	"Previously applied unit type; triggers a downstream reset on change"
//	@Success		200				{object}	SearchResponse
//	@Router			/market/search [get]
func (h *SearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := domainsvcs.Criteria{
		Query:        q.Get("q"),
		GameSystem:   q.Get("game_system"),
		Army:         q.Get("army"),
		UnitType:     q.Get("unit_type"),
		Manufacturer: q.Get("manufacturer"),
		Store:        q.Get("store"),
		Format:       q.Get("format"),
		Type:         q.Get("type"),
		PriceBucket:  q.Get("price"),
		Sort:         q.Get("sort"),
	}

	// Clients that echo their previously applied selections get the
	// upstream-reset rule applied server-side: changing a category resets
	// every category downstream of it.
	if q.Has("prev_game_system") || q.Has("prev_army") || q.Has("prev_unit_type") {
		prev := criteria
		prev.GameSystem = q.Get("prev_game_system")
		prev.Army = q.Get("prev_army")
		prev.UnitType = q.Get("prev_unit_type")
		criteria = domainsvcs.CascadeReset(prev, criteria)
	}

	result, err := h.svc.Market.Search(r.Context(), criteria)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := SearchResponse{
		Results: make([]SearchEntryResponse, 0, len(result.Entries)),
		Options: FilterOptionsResponse{
			GameSystems:   result.Options.GameSystems,
			Armies:        result.Options.Armies,
			UnitTypes:     result.Options.UnitTypes,
			Manufacturers: result.Options.Manufacturers,
		},
	}
	for _, e := range result.Entries {
		resp.Results = append(resp.Results, SearchEntryResponse{
			Item:         pricedToResponse(e.Item),
			StoreName:    e.StoreName,
			Manufacturer: e.ManufacturerName,
		})
	}

	httpx.JSON(w, http.StatusOK, resp)
}
