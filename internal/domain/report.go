package domain

import (
	"time"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
)

// MetricsReport is the calculator output for a client's latest measurement.
type MetricsReport struct {
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	MeasurementID *int64          `json:"measurement_id"`
	MeasuredAt    *time.Time      `json:"measured_at"`
	Input         fitness.Input   `json:"input"`
	Metrics       fitness.Metrics `json:"metrics"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
