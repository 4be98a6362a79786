package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human-readable
// message. Internal error detail is never leaked through Message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError sends an ErrorResponse with the given status, code, and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service-layer error onto the HTTP taxonomy:
//
//	ErrNotFound         → 404 not_found
//	ErrValidation       → 422 validation_error
//	ErrInvalidReference → 422 invalid_reference
//	ErrDecode, other    → 500 internal_error (generic message, detail logged)
//
// notFoundMessage is supplied by the caller because the handler is the layer
// that knows what was being looked up.
func writeDomainError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrInvalidReference):
		writeError(w, http.StatusUnprocessableEntity, "invalid_reference", domain.ErrInvalidReference.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "an internal error occurred")
	}
}

// writeBadBody rejects a request whose JSON body could not be decoded.
// The generic message deliberately hides decoder internals.
func writeBadBody(w http.ResponseWriter) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ReadingService.Create: validation error: unknown layer" →
// "unknown layer". Falls back to the bare sentinel text rather than exposing
// the full wrapped chain.
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return domain.ErrValidation.Error()
}
