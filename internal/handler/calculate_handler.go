package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

// CalculateHandler runs the calculator on an ad-hoc input without storing anything.
type CalculateHandler struct {
	metricsManager *metrics.Manager
}

func NewCalculateHandler(metricsManager *metrics.Manager) *CalculateHandler {
	return &CalculateHandler{metricsManager: metricsManager}
}

func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	result := fitness.Calculate(fitness.ParseInput(raw))
	if h.metricsManager != nil {
		h.metricsManager.CounterCalculations.Inc()
	}
	writeJSON(w, http.StatusOK, result)
}
