package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondNotFound writes a 404 with the standard error body.
// The caller supplies the human-readable message (e.g. "location not found")
// because the handler is the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: message}})
}

// respondValidation writes a 422 with the standard error body.
func respondValidation(w http.ResponseWriter, err error) {
	msg := strings.TrimPrefix(err.Error(), "validation error: ")
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: msg}})
}

// decodeJSON parses the request body into dst, rejecting unknown fields so a
// typo in a field name fails loudly instead of silently doing nothing.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
