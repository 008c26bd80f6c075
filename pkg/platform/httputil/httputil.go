// Package httputil centralizes JSON encoding/decoding for HTTP handlers so
// every endpoint shares one wire envelope. Error responses always look like
// {"success": false, "error": "..."} regardless of which handler failed.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "trustlynk/pkg/domain-errors"
	"trustlynk/pkg/requestcontext"
)

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Validatable is implemented by request structs that can check their own
// invariants after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON encodes v with the given status. Encoding failures are ignored;
// by that point the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the failure envelope. Internal
// and untyped errors get a generic message so no detail leaks.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		Success: false,
		Error:   dErrors.MessageOf(err),
	})
}

// DecodeAndPrepare decodes the request body into T and runs its validation.
// On failure it writes the error response and returns ok=false so handlers
// can bail with a single if.
//
// A body that does not parse as JSON is an internal failure (500), matching
// the adjudication API contract; validation failures are 400s.
func DecodeAndPrepare[T any, PT interface {
	Validatable
	*T
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to decode request body",
				"request_id", requestID,
				"path", r.URL.Path,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeInternal, "malformed request body"))
		return nil, false
	}

	if err := PT(&req).Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"path", r.URL.Path,
				"error", err,
			)
		}
		WriteError(w, err)
		return nil, false
	}

	return &req, true
}
