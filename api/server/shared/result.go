package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/contoso/sre-demo-agent/internal/logger"
	"gorm.io/gorm"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteResult serializes res as the JSON response body.
func WriteResult(w http.ResponseWriter, res interface{}) {
	json.NewEncoder(w).Encode(res)
}

// WriteError logs the error and writes a JSON error body. Database misses
// map to 404 so handlers do not have to repeat the gorm check.
func WriteError(l *logger.Logger, w http.ResponseWriter, status int, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = http.StatusNotFound
	}

	l.Error().Caller().Msgf("API error: %v", err)

	w.WriteHeader(status)

	json.NewEncoder(w).Encode(&errorResponse{Error: err.Error()})
}
