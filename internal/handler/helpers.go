package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/middleware"
	"github.com/yusufkecer/fitness-crm-backend/internal/repository"
)

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to encode response: %s", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Errorf("failed to write response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// trainerID reads the authenticated trainer; it answers 401 itself when absent.
func trainerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.TrainerIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return id, true
}

// writeRepoError maps repository sentinels to 404/409 and logs anything else as a 500.
func writeRepoError(w http.ResponseWriter, err error, what, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, what+" already exists")
	default:
		log.Errorf("failed to %s: %s", action, err)
		writeError(w, http.StatusInternalServerError, "failed to "+action)
	}
}
