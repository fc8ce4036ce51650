// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/deal-finder-service/internal/catalog"
	"github.com/fairyhunter13/deal-finder-service/internal/obs"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// writeLookupError maps aggregator errors to responses.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrAreaNotFound):
		WriteJSONError(w, http.StatusNotFound, "area_not_found", err.Error())
	case errors.Is(err, catalog.ErrEmptyPriceList):
		obs.Logger.Error().Err(err).Str("path", r.URL.Path).Str("request_id", RequestIDFromContext(r.Context())).Msg("catalog_integrity_error")
		WriteJSONError(w, http.StatusInternalServerError, "catalog_integrity_error", "")
	default:
		obs.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("lookup_error")
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
