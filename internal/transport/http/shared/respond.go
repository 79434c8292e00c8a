// Package shared holds the JSON response helpers used by every handler so the
// error envelope stays identical across the API surface.
package shared

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	derrors "rosterhub/pkg/domain-errors"
)

// ParseID reads a positive integer path parameter. Non-numeric and
// non-positive values fail before any store access.
func ParseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, derrors.New(derrors.CodeInvalidInput, "invalid id")
	}
	return id, nil
}

// WriteJSON writes v with the given status and a JSON content type.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError translates a domain error to its HTTP status and envelope.
// Non-domain errors become a generic 500; their detail never reaches clients.
func WriteError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	WriteJSON(w, derrors.ToHTTPStatus(code), ErrorResponse{
		Error:   string(code),
		Message: derrors.MessageOf(err),
	})
}
