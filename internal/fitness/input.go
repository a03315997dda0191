package fitness

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Gender string

const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
)

// female patterns go first: "female" contains "male".
var (
	femaleExact    = []string{"f", "ж"}
	femalePatterns = []string{"female", "woman", "жін"}
	maleExact      = []string{"m", "м"}
	malePatterns   = []string{"male", "man", "чолов"}
)

// ParseGender normalizes free text into a Gender. Anything it cannot
// recognize is GenderUnknown.
func ParseGender(s string) Gender {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return GenderUnknown
	}

	for _, e := range femaleExact {
		if v == e {
			return GenderFemale
		}
	}
	for _, p := range femalePatterns {
		if strings.Contains(v, p) {
			return GenderFemale
		}
	}
	for _, e := range maleExact {
		if v == e {
			return GenderMale
		}
	}
	for _, p := range malePatterns {
		if strings.Contains(v, p) {
			return GenderMale
		}
	}

	return GenderUnknown
}

func (g Gender) Known() bool {
	return g == GenderMale || g == GenderFemale
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtraActive:      1.9,
}

var activityAliases = map[string]ActivityLevel{
	"light":      ActivityLightlyActive,
	"lightly":    ActivityLightlyActive,
	"moderate":   ActivityModeratelyActive,
	"moderately": ActivityModeratelyActive,
	"active":     ActivityVeryActive,
	"very":       ActivityVeryActive,
	"extra":      ActivityExtraActive,
	"extremely":  ActivityExtraActive,
}

// ParseActivityLevel normalizes case and separators. Unrecognized text is
// kept as is so callers can echo it back; Multiplier falls back to sedentary.
func ParseActivityLevel(s string) ActivityLevel {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	if _, ok := activityMultipliers[ActivityLevel(v)]; ok {
		return ActivityLevel(v)
	}
	if a, ok := activityAliases[v]; ok {
		return a
	}
	return ActivityLevel(v)
}

func (a ActivityLevel) Known() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Multiplier returns the TDEE factor for the level, 1.2 when the level is
// empty or unrecognized.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// Input is a snapshot of a person's physical parameters. A zero field means
// the value is absent.
type Input struct {
	Weight           float64       `json:"weight,omitempty"`
	Height           float64       `json:"height,omitempty"`
	Age              int           `json:"age,omitempty"`
	Gender           Gender        `json:"gender,omitempty"`
	ActivityLevel    ActivityLevel `json:"activity_level,omitempty"`
	RestingHeartRate int           `json:"resting_heart_rate,omitempty"`
}

// ParseInput coerces a loosely typed record (decoded JSON, form values)
// into an Input. A field that cannot be coerced is left absent; the other
// fields are unaffected.
func ParseInput(raw map[string]any) Input {
	in := Input{
		Weight: toFloat(raw["weight"]),
		Height: toFloat(raw["height"]),
		Age:    toInt(raw["age"]),
	}

	if s, ok := raw["gender"].(string); ok {
		in.Gender = ParseGender(s)
	}
	if s, ok := raw["activity_level"].(string); ok {
		in.ActivityLevel = ParseActivityLevel(s)
	}

	hr, ok := raw["resting_heart_rate"]
	if !ok {
		hr = raw["hr_rest"]
	}
	in.RestingHeartRate = toInt(hr)

	return in
}

func toFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if !positive(f) {
		return 0
	}
	return f
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		if t > 0 {
			return t
		}
		return 0
	case int64:
		if t > 0 && t <= math.MaxInt32 {
			return int(t)
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || n <= 0 {
			return 0
		}
		return n
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return toInt(n)
		}
	}

	// whole part of fractional numbers, as when a form sends 30.0
	f := toFloat(v)
	if f < 1 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
