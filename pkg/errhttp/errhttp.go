// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/forgemart/pkg/httpx"
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	inventorydomain "github.com/ghuser/forgemart/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrStoreNotFound),
		errors.Is(err, catalogdomain.ErrManufacturerNotFound),
		errors.Is(err, inventorydomain.ErrListingNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inventorydomain.ErrDuplicateListing),
		errors.Is(err, inventorydomain.ErrUnitTypeTaken):
		return http.StatusConflict // 409
	case errors.Is(err, inventorydomain.ErrItemNotAllowed):
		return http.StatusForbidden // 403
	case errors.Is(err, inventorydomain.ErrInvalidPrice),
		errors.Is(err, inventorydomain.ErrInvalidMarkup),
		errors.Is(err, inventorydomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
