package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/cache"
	"github.com/yusufkecer/fitness-crm-backend/internal/config"
	"github.com/yusufkecer/fitness-crm-backend/internal/db"
	"github.com/yusufkecer/fitness-crm-backend/internal/handler"
	"github.com/yusufkecer/fitness-crm-backend/internal/logging"
	"github.com/yusufkecer/fitness-crm-backend/internal/repository"
	"github.com/yusufkecer/fitness-crm-backend/internal/service"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

func main() {
	fmt.Println("starting ...")

	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "fitness-crm",
	})
	defer sentry.Flush(2 * time.Second)

	log.Warnf("---->> running in [%s] environment", cfg.Environment)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable must be set")
	}
	if cfg.APIKey == "" {
		log.Warnln("API_KEY not set, public endpoints are open")
	}
	if cfg.ResendAPIKey == "" {
		log.Errorf("resend api key not set, use RESEND_API_KEY env var to set it")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("database connection failed: %s", err)
	}

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatalf("migrations failed: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitnesscrm", "server", promRegistry)

	trainerRepo := repository.NewTrainerRepository(database)
	clientRepo := repository.NewClientRepository(database)
	measurementRepo := repository.NewMeasurementRepository(database)
	resetTokenRepo := repository.NewResetTokenRepository(database)

	reportCache := cache.NewReportCache(cfg.CacheSizeMB)
	metricsService := service.NewMetricsService(clientRepo, measurementRepo, reportCache, metricsManager)
	emailService := service.NewEmailService(cfg.ResendAPIKey, cfg.MailFrom)

	authHandler := handler.NewAuthHandler(cfg.JWTSecret, trainerRepo, resetTokenRepo, emailService)

	router := handler.NewRouter(handler.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		MetricsHandler: promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
		MetricsManager: metricsManager,
		Health:         handler.NewHealthHandler(database),
		Auth:           authHandler,
		Calculate:      handler.NewCalculateHandler(metricsManager),
		Clients:        handler.NewClientHandler(clientRepo, metricsService, metricsManager),
		Measurement:    handler.NewMeasurementHandler(clientRepo, measurementRepo, metricsService, metricsManager),
		Reports:        handler.NewReportHandler(metricsService),
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("server starting on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %s", err)
		}
	}()

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %s", err)
	}

	// let in-flight reset e-mails finish before the pool goes away
	authHandler.Wait()

	if err := database.Close(); err != nil {
		log.Errorf("close database: %s", err)
	}
	log.Infoln("bye")
}
