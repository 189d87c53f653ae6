package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ItachiRD26/hotelgil/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human-readable
// message suited for direct display at the front desk.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — the connection is gone if this fails, nothing to do.
	json.NewEncoder(w).Encode(v)
}

// respondError writes an ErrorResponse with the given status, code, and message.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondServiceError maps a service-layer error to the HTTP status its
// sentinel prescribes. Anything unrecognized is logged and becomes a 500 with
// a generic body — internal details never leak to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "reservation not found")
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrConflict):
		respondError(w, http.StatusConflict, "availability_conflict", unwrapMessage(err))
	case errors.Is(err, domain.ErrStaleWrite):
		respondError(w, http.StatusPreconditionFailed, "stale_write", "reservation was modified by someone else, reload and retry")
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// requestError writes a 422 for a request rejected before reaching the
// service layer (e.g. missing or malformed body).
func requestError(w http.ResponseWriter, message string) {
	respondError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.ReservationService.Create: validation error: guest
// name is required" → "guest name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrConflict.Error() + ": ",
	} {
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
