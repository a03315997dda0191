package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidProfile = errors.New("profile is invalid")

// ClientProfile is the intake questionnaire a trainer fills in for a client.
// It is stored as one JSON document next to the client row.
type ClientProfile struct {
	Health    HealthProfile    `json:"health"`
	Goals     GoalsProfile     `json:"goals"`
	Lifestyle LifestyleProfile `json:"lifestyle"`
}

type HealthProfile struct {
	Medications       string  `json:"medications"`
	Supplements       string  `json:"supplements"`
	Allergies         string  `json:"allergies"`
	BadHabits         string  `json:"bad_habits"`
	CoffeePerDay      string  `json:"coffee_per_day"`
	PastInjuries      string  `json:"past_injuries"`
	CurrentInjuries   string  `json:"current_injuries"`
	Diseases          string  `json:"diseases"`
	Contraindications string  `json:"contraindications"`
	Complaints        string  `json:"complaints"`
	MedicalExamDate   *string `json:"medical_exam_date"`
	MedicalClearance  string  `json:"medical_clearance"`
	MenstrualCycle    string  `json:"menstrual_cycle"`
}

type GoalsProfile struct {
	Goals             string `json:"goals"`
	WorkoutsPerWeek   int    `json:"workouts_per_week"`
	PreferredTraining string `json:"preferred_training"`
	TrainerNotes      string `json:"trainer_notes"`
}

type LifestyleProfile struct {
	FoodPreferences string `json:"food_preferences"`
	WakeTime        string `json:"wake_time"`
	SleepTime       string `json:"sleep_time"`
	SleepHours      int    `json:"sleep_duration"`
	SleepQuality    string `json:"sleep_quality"`
	NightAwakenings int    `json:"night_awakenings"`
	OtherSports     string `json:"other_sports"`
	PastExperience  string `json:"past_experience"`
	FitnessLevel    string `json:"fitness_level"`
	MotivationLevel string `json:"motivation_level"`
}

const clockLayout = "15:04"

func (p *ClientProfile) Normalize() {
	h, g, l := &p.Health, &p.Goals, &p.Lifestyle
	for _, s := range []*string{
		&h.Medications, &h.Supplements, &h.Allergies, &h.BadHabits, &h.CoffeePerDay,
		&h.PastInjuries, &h.CurrentInjuries, &h.Diseases, &h.Contraindications, &h.Complaints,
		&h.MedicalClearance, &h.MenstrualCycle,
		&g.Goals, &g.PreferredTraining, &g.TrainerNotes,
		&l.FoodPreferences, &l.WakeTime, &l.SleepTime, &l.SleepQuality, &l.OtherSports,
		&l.PastExperience, &l.FitnessLevel, &l.MotivationLevel,
	} {
		*s = strings.TrimSpace(*s)
	}
	if h.MedicalExamDate != nil {
		if d := strings.TrimSpace(*h.MedicalExamDate); d == "" {
			h.MedicalExamDate = nil
		} else {
			h.MedicalExamDate = &d
		}
	}
}

// Validate expects a normalized profile. Zero numbers mean "not answered".
func (p *ClientProfile) Validate() error {
	h, g, l := p.Health, p.Goals, p.Lifestyle

	short := map[string]string{
		"health.coffee_per_day":      h.CoffeePerDay,
		"health.medical_clearance":   h.MedicalClearance,
		"health.menstrual_cycle":     h.MenstrualCycle,
		"goals.preferred_training":   g.PreferredTraining,
		"lifestyle.sleep_quality":    l.SleepQuality,
		"lifestyle.fitness_level":    l.FitnessLevel,
		"lifestyle.motivation_level": l.MotivationLevel,
	}
	for field, v := range short {
		if err := checkChars(field, v, MaxAnswerLen); err != nil {
			return err
		}
	}

	long := map[string]string{
		"health.medications":         h.Medications,
		"health.supplements":         h.Supplements,
		"health.allergies":           h.Allergies,
		"health.bad_habits":          h.BadHabits,
		"health.past_injuries":       h.PastInjuries,
		"health.current_injuries":    h.CurrentInjuries,
		"health.diseases":            h.Diseases,
		"health.contraindications":   h.Contraindications,
		"health.complaints":          h.Complaints,
		"goals.goals":                g.Goals,
		"goals.trainer_notes":        g.TrainerNotes,
		"lifestyle.food_preferences": l.FoodPreferences,
		"lifestyle.other_sports":     l.OtherSports,
		"lifestyle.past_experience":  l.PastExperience,
	}
	for field, v := range long {
		if err := checkChars(field, v, MaxAnswerText); err != nil {
			return err
		}
	}

	if h.MedicalExamDate != nil && !validDate(*h.MedicalExamDate) {
		return fmt.Errorf("%w: health.medical_exam_date must be YYYY-MM-DD", ErrInvalidProfile)
	}
	for field, v := range map[string]string{"lifestyle.wake_time": l.WakeTime, "lifestyle.sleep_time": l.SleepTime} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(clockLayout, v); err != nil {
			return fmt.Errorf("%w: %s must be HH:MM", ErrInvalidProfile, field)
		}
	}
	if g.WorkoutsPerWeek < 0 || g.WorkoutsPerWeek > 7 {
		return fmt.Errorf("%w: goals.workouts_per_week must be at most 7", ErrInvalidProfile)
	}
	if l.SleepHours < 0 || l.SleepHours > 24 {
		return fmt.Errorf("%w: lifestyle.sleep_duration must be between 0 and 24", ErrInvalidProfile)
	}
	if l.NightAwakenings < 0 || l.NightAwakenings > 20 {
		return fmt.Errorf("%w: lifestyle.night_awakenings must be between 0 and 20", ErrInvalidProfile)
	}
	return nil
}

// DecodeProfile reads a profile from a decoded JSON value, rejecting unknown
// keys, then normalizes and validates it.
func DecodeProfile(v any) (*ClientProfile, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var p ClientProfile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
