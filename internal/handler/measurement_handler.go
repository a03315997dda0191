package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=measurement_handler_mocks_test.go -package=handler_test

type ClientGetter interface {
	Get(ctx context.Context, trainerID int64, id string) (*domain.Client, error)
}

type MeasurementStore interface {
	Create(ctx context.Context, measurement *domain.Measurement) error
	List(ctx context.Context, clientID string) ([]domain.Measurement, error)
}

type MeasurementHandler struct {
	clients        ClientGetter
	measurements   MeasurementStore
	reports        ReportInvalidator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewMeasurementHandler(
	clients ClientGetter,
	measurements MeasurementStore,
	reports ReportInvalidator,
	metricsManager *metrics.Manager,
) *MeasurementHandler {
	return &MeasurementHandler{
		clients:        clients,
		measurements:   measurements,
		reports:        reports,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (h *MeasurementHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	clientID := mux.Vars(r)["id"]

	var req domain.CreateMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.clients.Get(r.Context(), tid, clientID); err != nil {
		writeRepoError(w, err, "client", "get client")
		return
	}

	m := req.ToMeasurement(clientID, h.now().UTC().Truncate(time.Second))
	if err := h.measurements.Create(r.Context(), m); err != nil {
		writeRepoError(w, err, "measurement", "create measurement")
		return
	}
	h.reports.Invalidate(tid, clientID)

	if h.metricsManager != nil {
		h.metricsManager.CounterMeasurements.Inc()
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MeasurementHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	clientID := mux.Vars(r)["id"]

	if _, err := h.clients.Get(r.Context(), tid, clientID); err != nil {
		writeRepoError(w, err, "client", "get client")
		return
	}

	measurements, err := h.measurements.List(r.Context(), clientID)
	if err != nil {
		writeRepoError(w, err, "measurement", "list measurements")
		return
	}
	if measurements == nil {
		measurements = []domain.Measurement{}
	}
	writeJSON(w, http.StatusOK, measurements)
}
