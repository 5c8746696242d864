package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adperf/internal/core/analytics"
	"adperf/internal/core/port"
)

// Error bodies use "message" on the campaign routes and "error" on the
// performance routes.
const (
	keyMessage = "message"
	keyError   = "error"
)

const (
	msgStoreFailure  = "Database error occurred."
	msgUnexpected    = "An unexpected error occurred."
	msgPreviousMonth = "Error calculating previous month dates."
	msgInvalid       = "Invalid request."
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// reject answers a client input error with a 400.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, key, msg string) {
	h.logger.Warn("rejected request",
		slog.String("request_id", requestIDFrom(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("reason", msg),
	)
	h.writeJSON(w, http.StatusBadRequest, map[string]string{key: msg})
}

// fail maps a use case error to a response. Input errors are answered with
// the route's fixed invalid message; unclassified errors are treated as
// store failures and never exposed.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, key, invalid string, err error) {
	switch {
	case errors.Is(err, analytics.ErrPreviousMonthDate):
		h.reject(w, r, key, msgPreviousMonth)
	case errors.Is(err, port.ErrInvalidInput):
		h.reject(w, r, key, invalid)
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{key: "Campaign not found."})
	case errors.Is(err, port.ErrNoCampaigns):
		h.writeJSON(w, http.StatusNotFound, map[string]string{key: "No campaigns found."})
	default:
		h.logger.Error("store error",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		if h.metrics != nil {
			h.metrics.RecordStoreError(r)
		}
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{keyError: msgStoreFailure})
	}
}
