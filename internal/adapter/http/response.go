package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"phish-analytics/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps usecase errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInvalidRange),
		errors.Is(err, port.ErrInvalidEvent),
		errors.Is(err, port.ErrInvalidCampaign),
		errors.Is(err, port.ErrNoRecipients):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" error", slog.Any("error", err))
		writeJSON(w, status, errorBody{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
