package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ticket-tracker/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError renders the stable error envelope. Server-side failures
// are logged with their wrapped cause; clients only see the envelope.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, body := models.NewErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, body)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.NewValidationError("invalid request body")
	}
	return nil
}
