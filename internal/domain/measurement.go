package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
)

var (
	ErrEmptyMeasurement     = errors.New("at least one measured value is required")
	ErrNonPositive          = errors.New("measurement values must be positive")
	ErrOutOfRange           = errors.New("measurement value out of range")
	ErrBloodPressure        = errors.New("blood_pressure_systolic must be above blood_pressure_diastolic")
	ErrUnknownActivityLevel = errors.New("activity_level must be one of sedentary, lightly_active, moderately_active, very_active, extra_active")
)

const (
	maxCircumferenceCm = 300
	maxSystolic        = 300
	maxDiastolic       = 250
)

// Circumferences are body girths in centimeters.
type Circumferences struct {
	ShouldersCm  *float64 `json:"shoulders_cm"`
	ChestCm      *float64 `json:"chest_cm"`
	WaistCm      *float64 `json:"waist_cm"`
	HipsCm       *float64 `json:"hips_cm"`
	LeftArmCm    *float64 `json:"left_arm_cm"`
	RightArmCm   *float64 `json:"right_arm_cm"`
	LeftThighCm  *float64 `json:"left_thigh_cm"`
	RightThighCm *float64 `json:"right_thigh_cm"`
	LeftCalfCm   *float64 `json:"left_calf_cm"`
	RightCalfCm  *float64 `json:"right_calf_cm"`
}

// Values lists the girths in column order.
func (c *Circumferences) Values() []*float64 {
	return []*float64{
		c.ShouldersCm, c.ChestCm, c.WaistCm, c.HipsCm, c.LeftArmCm,
		c.RightArmCm, c.LeftThighCm, c.RightThighCm, c.LeftCalfCm, c.RightCalfCm,
	}
}

// Fields returns pointers to the girths in column order, for scanning.
func (c *Circumferences) Fields() []**float64 {
	return []**float64{
		&c.ShouldersCm, &c.ChestCm, &c.WaistCm, &c.HipsCm, &c.LeftArmCm,
		&c.RightArmCm, &c.LeftThighCm, &c.RightThighCm, &c.LeftCalfCm, &c.RightCalfCm,
	}
}

// BloodPressure is in mmHg.
type BloodPressure struct {
	Systolic  *int `json:"blood_pressure_systolic"`
	Diastolic *int `json:"blood_pressure_diastolic"`
}

type Measurement struct {
	ID               int64     `json:"id"`
	ClientID         string    `json:"client_id"`
	TakenAt          time.Time `json:"taken_at"`
	WeightKg         *float64  `json:"weight_kg"`
	HeightCm         *float64  `json:"height_cm"`
	RestingHeartRate *int      `json:"resting_heart_rate"`
	ActivityLevel    string    `json:"activity_level"`
	BodyFat          *float64  `json:"body_fat"`
	BMI              *float64  `json:"bmi"`
	Circumferences
	BloodPressure
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateMeasurementRequest struct {
	TakenAt          *time.Time `json:"taken_at"`
	WeightKg         *float64   `json:"weight_kg"`
	HeightCm         *float64   `json:"height_cm"`
	RestingHeartRate *int       `json:"resting_heart_rate"`
	ActivityLevel    string     `json:"activity_level"`
	BodyFat          *float64   `json:"body_fat"`
	Circumferences
	BloodPressure
	Notes string `json:"notes"`
}

func (r *CreateMeasurementRequest) Validate() error {
	if r.empty() {
		return ErrEmptyMeasurement
	}
	for _, v := range append([]*float64{r.WeightKg, r.HeightCm, r.BodyFat}, r.Circumferences.Values()...) {
		if v != nil && (*v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return ErrNonPositive
		}
	}
	for _, v := range []*int{r.RestingHeartRate, r.Systolic, r.Diastolic} {
		if v != nil && *v <= 0 {
			return ErrNonPositive
		}
	}

	for _, v := range r.Circumferences.Values() {
		if v != nil && *v > maxCircumferenceCm {
			return ErrOutOfRange
		}
	}
	if (r.Systolic != nil && *r.Systolic > maxSystolic) || (r.Diastolic != nil && *r.Diastolic > maxDiastolic) {
		return ErrOutOfRange
	}
	if r.Systolic != nil && r.Diastolic != nil && *r.Systolic <= *r.Diastolic {
		return ErrBloodPressure
	}

	if lvl := strings.TrimSpace(r.ActivityLevel); lvl != "" && !fitness.ParseActivityLevel(lvl).Known() {
		return ErrUnknownActivityLevel
	}
	return checkBytes("notes", r.Notes, MaxTextBytes)
}

func (r *CreateMeasurementRequest) empty() bool {
	if r.WeightKg != nil || r.HeightCm != nil || r.RestingHeartRate != nil || r.BodyFat != nil ||
		r.Systolic != nil || r.Diastolic != nil {
		return false
	}
	for _, v := range r.Circumferences.Values() {
		if v != nil {
			return false
		}
	}
	return true
}

// ToMeasurement builds the stored record; BMI is computed when both weight
// and height are present. taken_at defaults to now.
func (r *CreateMeasurementRequest) ToMeasurement(clientID string, now time.Time) *Measurement {
	m := &Measurement{
		ClientID:         clientID,
		TakenAt:          now,
		WeightKg:         r.WeightKg,
		HeightCm:         r.HeightCm,
		RestingHeartRate: r.RestingHeartRate,
		BodyFat:          r.BodyFat,
		Circumferences:   r.Circumferences,
		BloodPressure:    r.BloodPressure,
		Notes:            strings.TrimSpace(r.Notes),
	}
	if r.TakenAt != nil {
		m.TakenAt = *r.TakenAt
	}
	if lvl := strings.TrimSpace(r.ActivityLevel); lvl != "" {
		m.ActivityLevel = string(fitness.ParseActivityLevel(lvl))
	}
	if m.WeightKg != nil && m.HeightCm != nil {
		if bmi, ok := fitness.BMI(*m.WeightKg, *m.HeightCm); ok {
			m.BMI = &bmi
		}
	}
	return m
}
