package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				if p := recover(); p != nil {
					log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, p, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					if !rec.wroteHeader {
						writeError(w, http.StatusInternalServerError, "internal server error")
					}
				}
			}()

			// handler call
			next.ServeHTTP(rec, r)
		})
	}
}
