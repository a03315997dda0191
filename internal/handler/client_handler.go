package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=client_handler_mocks_test.go -package=handler_test

type ClientStore interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, trainerID int64, id string) (*domain.Client, error)
	List(ctx context.Context, trainerID int64, activeOnly bool) ([]domain.Client, error)
	Search(ctx context.Context, trainerID int64, q string) ([]domain.Client, error)
	Update(ctx context.Context, trainerID int64, id string, fields map[string]any) error
	SoftDelete(ctx context.Context, trainerID int64, id string) error
	ListTrash(ctx context.Context, trainerID int64) ([]domain.Client, error)
	Restore(ctx context.Context, trainerID int64, id string) error
	Purge(ctx context.Context, trainerID int64, id string) error
	EmptyTrash(ctx context.Context, trainerID int64) (int64, error)
	Recent(ctx context.Context, trainerID int64, limit int) ([]domain.Client, error)
	TouchVisit(ctx context.Context, trainerID int64, id string) error
	Statistics(ctx context.Context, trainerID int64, now time.Time) (*domain.ClientStats, error)
}

type ReportInvalidator interface {
	Invalidate(trainerID int64, clientID string)
}

type ClientHandler struct {
	clients        ClientStore
	reports        ReportInvalidator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewClientHandler(clients ClientStore, reports ReportInvalidator, metricsManager *metrics.Manager) *ClientHandler {
	return &ClientHandler{
		clients:        clients,
		reports:        reports,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// List handles GET /clients. q searches active clients; active=false lists
// trashed clients too.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	if q := query.Get("q"); q != "" {
		clients, err := h.clients.Search(r.Context(), tid, q)
		if err != nil {
			writeRepoError(w, err, "client", "search clients")
			return
		}
		writeJSON(w, http.StatusOK, clients)
		return
	}

	activeOnly := true
	if v := query.Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "active must be true or false")
			return
		}
		activeOnly = parsed
	}

	clients, err := h.clients.List(r.Context(), tid, activeOnly)
	if err != nil {
		writeRepoError(w, err, "client", "list clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	client := req.ToClient(tid)
	if err := h.clients.Create(r.Context(), client); err != nil {
		writeRepoError(w, err, "client with this phone", "create client")
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterClientsCreated.Inc()
	}
	log.Infof("trainer %d created client %s", tid, client.ID)
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	client, err := h.clients.Get(r.Context(), tid, mux.Vars(r)["id"])
	if err != nil {
		writeRepoError(w, err, "client", "get client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := domain.NormalizeClientUpdate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no updatable fields")
		return
	}

	if err := h.clients.Update(r.Context(), tid, id, fields); err != nil {
		writeRepoError(w, err, "client", "update client")
		return
	}
	h.reports.Invalidate(tid, id)

	client, err := h.clients.Get(r.Context(), tid, id)
	if err != nil {
		writeRepoError(w, err, "client", "get client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Delete moves the client to the trash.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.trashAction(w, r, h.clients.SoftDelete, "move client to trash")
}

func (h *ClientHandler) Restore(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	if err := h.clients.Restore(r.Context(), tid, id); err != nil {
		writeRepoError(w, err, "client", "restore client")
		return
	}
	h.reports.Invalidate(tid, id)

	client, err := h.clients.Get(r.Context(), tid, id)
	if err != nil {
		writeRepoError(w, err, "client", "get client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Purge deletes a trashed client permanently.
func (h *ClientHandler) Purge(w http.ResponseWriter, r *http.Request) {
	h.trashAction(w, r, h.clients.Purge, "purge client")
}

func (h *ClientHandler) Trash(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	clients, err := h.clients.ListTrash(r.Context(), tid)
	if err != nil {
		writeRepoError(w, err, "client", "list trash")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	trashed, err := h.clients.ListTrash(r.Context(), tid)
	if err != nil {
		writeRepoError(w, err, "client", "list trash")
		return
	}

	deleted, err := h.clients.EmptyTrash(r.Context(), tid)
	if err != nil {
		writeRepoError(w, err, "client", "empty trash")
		return
	}
	for _, c := range trashed {
		h.reports.Invalidate(tid, c.ID)
	}
	log.Infof("trainer %d emptied trash, %d clients deleted", tid, deleted)
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (h *ClientHandler) Recent(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	clients, err := h.clients.Recent(r.Context(), tid, limit)
	if err != nil {
		writeRepoError(w, err, "client", "list recent clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// Visit records that the client came in now.
func (h *ClientHandler) Visit(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	if err := h.clients.TouchVisit(r.Context(), tid, mux.Vars(r)["id"]); err != nil {
		writeRepoError(w, err, "client", "record visit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	stats, err := h.clients.Statistics(r.Context(), tid, h.now())
	if err != nil {
		writeRepoError(w, err, "client", "get client statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ClientHandler) trashAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, trainerID int64, id string) error,
	what string,
) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	if err := action(r.Context(), tid, id); err != nil {
		writeRepoError(w, err, "client", what)
		return
	}
	h.reports.Invalidate(tid, id)
	w.WriteHeader(http.StatusNoContent)
}
