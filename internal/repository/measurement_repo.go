package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
)

const measurementColumns = `id, client_id, taken_at, weight_kg, height_cm, resting_heart_rate,
	activity_level, body_fat, bmi, ` + circumferenceColumns + `,
	bp_systolic, bp_diastolic, notes, created_at`

const circumferenceColumns = `shoulders_cm, chest_cm, waist_cm, hips_cm, left_arm_cm, right_arm_cm,
	left_thigh_cm, right_thigh_cm, left_calf_cm, right_calf_cm`

type MeasurementRepository struct {
	db *sql.DB
}

func NewMeasurementRepository(db *sql.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

func (r *MeasurementRepository) Create(ctx context.Context, m *domain.Measurement) error {
	m.CreatedAt = time.Now().UTC().Truncate(time.Second)
	args := []any{
		m.ClientID, m.TakenAt, m.WeightKg, m.HeightCm, m.RestingHeartRate,
		m.ActivityLevel, m.BodyFat, m.BMI,
	}
	for _, v := range m.Circumferences.Values() {
		args = append(args, v)
	}
	args = append(args, m.Systolic, m.Diastolic, m.Notes, m.CreatedAt)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO measurements (client_id, taken_at, weight_kg, height_cm, resting_heart_rate,
			activity_level, body_fat, bmi, `+circumferenceColumns+`,
			bp_systolic, bp_diastolic, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}
	m.ID = id
	return nil
}

// List returns the client's measurement history, oldest first.
func (r *MeasurementRepository) List(ctx context.Context, clientID string) ([]domain.Measurement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+measurementColumns+` FROM measurements
		 WHERE client_id = ?
		 ORDER BY taken_at ASC, id ASC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	measurements := []domain.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		measurements = append(measurements, *m)
	}
	return measurements, rows.Err()
}

func (r *MeasurementRepository) Latest(ctx context.Context, clientID string) (*domain.Measurement, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+measurementColumns+` FROM measurements
		 WHERE client_id = ?
		 ORDER BY taken_at DESC, id DESC
		 LIMIT 1`,
		clientID,
	)
	m, err := scanMeasurement(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest measurement: %w", err)
	}
	return m, nil
}

func scanMeasurement(s rowScanner) (*domain.Measurement, error) {
	var (
		m         domain.Measurement
		weight    sql.NullFloat64
		height    sql.NullFloat64
		hr        sql.NullInt64
		bodyFat   sql.NullFloat64
		bmi       sql.NullFloat64
		girths    [10]sql.NullFloat64
		systolic  sql.NullInt64
		diastolic sql.NullInt64
		notes     sql.NullString
	)
	dest := []any{&m.ID, &m.ClientID, &m.TakenAt, &weight, &height, &hr, &m.ActivityLevel, &bodyFat, &bmi}
	for i := range girths {
		dest = append(dest, &girths[i])
	}
	dest = append(dest, &systolic, &diastolic, &notes, &m.CreatedAt)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	for i, field := range m.Circumferences.Fields() {
		*field = nullFloat(girths[i])
	}
	m.Systolic = nullInt(systolic)
	m.Diastolic = nullInt(diastolic)

	m.WeightKg = nullFloat(weight)
	m.HeightCm = nullFloat(height)
	m.RestingHeartRate = nullInt(hr)
	m.BodyFat = nullFloat(bodyFat)
	m.BMI = nullFloat(bmi)
	m.Notes = notes.String
	return &m, nil
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
