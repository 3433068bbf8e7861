package handlers

import (
	"net/http"

	"github.com/ghuser/forgemart/pkg/errhttp"
	"github.com/ghuser/forgemart/pkg/httpx"
	appsvcs "github.com/ghuser/forgemart/services/catalog/application/services"
	"github.com/ghuser/forgemart/services/catalog/domain/models"
)

// ManufacturerResponse is the manufacturer representation returned by the API.
type ManufacturerResponse struct {
	ID          int64  `json:"id"      example:"1"`
	Name        string `json:"name"    example:"Highlands Miniatures"`
	Description string `json:"description"`
	Since       string `json:"since"   example:"January 2018"`
	Logo        string `json:"logo"`
	Website     string `json:"website,omitempty"`
} // @name ManufacturerResponse

// StoreResponse is the store representation returned by the API.
type StoreResponse struct {
	ID          int64  `json:"id"    example:"1"`
	Name        string `json:"name"  example:"Epic Prints Shop"`
	Description string `json:"description"`
	Since       string `json:"since" example:"March 2023"`
	Logo        string `json:"logo"`
	Owner       string `json:"owner,omitempty"`
} // @name StoreResponse

// StoreToResponse maps a domain store to its API representation.
func StoreToResponse(s models.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Since:       s.Since,
		Logo:        s.Logo,
		Owner:       s.Owner,
	}
}

// ListManufacturersHandler handles GET /catalog/manufacturers.
type ListManufacturersHandler struct {
	svc *appsvcs.Services
}

// NewListManufacturersHandler returns a handler backed by the given services.
func NewListManufacturersHandler(svc *appsvcs.Services) *ListManufacturersHandler {
	return &ListManufacturersHandler{svc: svc}
}

// Execute lists all manufacturers.
//
//	@Summary		List manufacturers
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	ManufacturerResponse
//	@Router			/catalog/manufacturers [get]
func (h *ListManufacturersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	makers, err := h.svc.Catalog.Manufacturers(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ManufacturerResponse, 0, len(makers))
	for _, m := range makers {
		out = append(out, ManufacturerResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Since:       m.Since,
			Logo:        m.Logo,
			Website:     m.Website,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ListStoresHandler handles GET /catalog/stores.
type ListStoresHandler struct {
	svc *appsvcs.Services
}

// NewListStoresHandler returns a handler backed by the given services.
func NewListStoresHandler(svc *appsvcs.Services) *ListStoresHandler {
	return &ListStoresHandler{svc: svc}
}

// Execute lists all stores.
//
//	@Summary		List stores
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	StoreResponse
//	@Router			/catalog/stores [get]
func (h *ListStoresHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stores, err := h.svc.Catalog.Stores(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreToResponse(s))
	}
	httpx.JSON(w, http.StatusOK, out)
}
