package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/fitness-crm-backend/internal/middleware"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

const maxBodyBytes = 1 << 20

type RouterConfig struct {
	JWTSecret      string
	APIKey         string
	AllowedOrigins string

	// nil skips the /metrics endpoint
	MetricsHandler http.Handler
	MetricsManager *metrics.Manager

	Health      *HealthHandler
	Auth        *AuthHandler
	Calculate   *CalculateHandler
	Clients     *ClientHandler
	Measurement *MeasurementHandler
	Reports     *ReportHandler
}

func NewRouter(cfg RouterConfig) *mux.Router {
	loginRL := middleware.NewRateLimiter(5, 15*time.Minute)
	forgotPasswordRL := middleware.NewRateLimiter(3, 60*time.Minute)

	r := mux.NewRouter()

	// global: metrics -> panic recovery -> logging -> CORS -> security headers -> body limit
	if cfg.MetricsManager != nil {
		r.Use(middleware.RequestMetrics(cfg.MetricsManager))
	}
	r.Use(middleware.PanicRecovery(cfg.MetricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(http.MethodGet)
	}
	r.HandleFunc("/api/v1/health", cfg.Health.Health).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.Handle("/auth/register", http.HandlerFunc(cfg.Auth.Register)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/login", loginRL.Middleware(http.HandlerFunc(cfg.Auth.Login))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/forgot-password", forgotPasswordRL.Middleware(http.HandlerFunc(cfg.Auth.ForgotPassword))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/reset-password", http.HandlerFunc(cfg.Auth.ResetPassword)).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/calculate", cfg.Calculate.Calculate).Methods(http.MethodPost, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	// fixed paths before /clients/{id}
	protected.HandleFunc("/clients", cfg.Clients.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients", cfg.Clients.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/clients/recent", cfg.Clients.Recent).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients/stats", cfg.Clients.Stats).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients/trash", cfg.Clients.Trash).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients/trash", cfg.Clients.EmptyTrash).Methods(http.MethodDelete, http.MethodOptions)

	protected.HandleFunc("/clients/{id}", cfg.Clients.Get).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients/{id}", cfg.Clients.Update).Methods(http.MethodPatch, http.MethodOptions)
	protected.HandleFunc("/clients/{id}", cfg.Clients.Delete).Methods(http.MethodDelete, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/restore", cfg.Clients.Restore).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/purge", cfg.Clients.Purge).Methods(http.MethodDelete, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/visit", cfg.Clients.Visit).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/measurements", cfg.Measurement.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/measurements", cfg.Measurement.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/clients/{id}/metrics", cfg.Reports.Get).Methods(http.MethodGet, http.MethodOptions)

	return r
}
