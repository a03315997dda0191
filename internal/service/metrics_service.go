package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-crm-backend/internal/cache"
	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
	"github.com/yusufkecer/fitness-crm-backend/internal/repository"
	"github.com/yusufkecer/fitness-crm-backend/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=metrics_service_mocks_test.go -package=service_test

type ClientReader interface {
	Get(ctx context.Context, trainerID int64, id string) (*domain.Client, error)
}

type MeasurementReader interface {
	Latest(ctx context.Context, clientID string) (*domain.Measurement, error)
}

// MetricsService builds calculator reports for stored clients.
type MetricsService struct {
	clients        ClientReader
	measurements   MeasurementReader
	reportCache    *cache.ReportCache
	metricsManager *metrics.Manager
}

func NewMetricsService(
	clients ClientReader,
	measurements MeasurementReader,
	reportCache *cache.ReportCache,
	metricsManager *metrics.Manager,
) *MetricsService {
	return &MetricsService{
		clients:        clients,
		measurements:   measurements,
		reportCache:    reportCache,
		metricsManager: metricsManager,
	}
}

// Report returns the metrics of the client's latest measurement. A client
// without measurements still gets a report; only metrics that need body
// measurements are null then. Cached reports are reused within the calendar
// day of now only, since age depends on it.
func (s *MetricsService) Report(ctx context.Context, trainerID int64, clientID string, now time.Time) (*domain.MetricsReport, error) {
	var generation uint64
	if s.reportCache != nil {
		generation = s.reportCache.Generation(trainerID, clientID)
		if report, ok := s.reportCache.Get(trainerID, clientID, now); ok {
			s.countCache(true)
			log.Tracef("metrics report for client %s served from cache", clientID)
			report.GeneratedAt = now
			return report, nil
		}
		s.countCache(false)
	}

	client, err := s.clients.Get(ctx, trainerID, clientID)
	if err != nil {
		return nil, err
	}

	latest, err := s.measurements.Latest(ctx, clientID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("latest measurement: %w", err)
	}

	in := BuildInput(client, latest, now)
	report := &domain.MetricsReport{
		ClientID:    client.ID,
		ClientName:  client.FullName(),
		Input:       in,
		Metrics:     fitness.Calculate(in),
		GeneratedAt: now,
	}
	if latest != nil {
		id, takenAt := latest.ID, latest.TakenAt
		report.MeasurementID = &id
		report.MeasuredAt = &takenAt
	}

	if s.reportCache != nil {
		s.reportCache.Set(trainerID, generation, now, report)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterCalculations.Inc()
	}
	return report, nil
}

// Invalidate drops the cached report after the client or its measurements change.
func (s *MetricsService) Invalidate(trainerID int64, clientID string) {
	if s.reportCache != nil {
		s.reportCache.Invalidate(trainerID, clientID)
	}
}

// BuildInput assembles calculator input from a client profile and an
// optional measurement. Age is taken at now.
func BuildInput(client *domain.Client, m *domain.Measurement, now time.Time) fitness.Input {
	in := fitness.Input{
		Gender: fitness.ParseGender(client.Gender),
	}
	if age, ok := client.Age(now); ok && age > 0 {
		in.Age = age
	}
	if m == nil {
		return in
	}

	if m.WeightKg != nil {
		in.Weight = *m.WeightKg
	}
	if m.HeightCm != nil {
		in.Height = *m.HeightCm
	}
	if m.RestingHeartRate != nil {
		in.RestingHeartRate = *m.RestingHeartRate
	}
	if m.ActivityLevel != "" {
		in.ActivityLevel = fitness.ParseActivityLevel(m.ActivityLevel)
	}
	return in
}

func (s *MetricsService) countCache(hit bool) {
	if s.metricsManager == nil {
		return
	}
	if hit {
		s.metricsManager.CounterReportCacheHits.Inc()
	} else {
		s.metricsManager.CounterReportCacheMisses.Inc()
	}
}
