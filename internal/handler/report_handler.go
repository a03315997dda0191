package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=report_handler_mocks_test.go -package=handler_test

type MetricsReporter interface {
	Report(ctx context.Context, trainerID int64, clientID string, now time.Time) (*domain.MetricsReport, error)
}

type ReportHandler struct {
	reporter MetricsReporter
	now      func() time.Time
}

func NewReportHandler(reporter MetricsReporter) *ReportHandler {
	return &ReportHandler{reporter: reporter, now: time.Now}
}

// Get handles GET /clients/{id}/metrics.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	tid, ok := trainerID(w, r)
	if !ok {
		return
	}

	report, err := h.reporter.Report(r.Context(), tid, mux.Vars(r)["id"], h.now())
	if err != nil {
		writeRepoError(w, err, "client", "build metrics report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
