package fitness

import "math"

type BMICategory string

const (
	BMIUndetermined BMICategory = "undetermined"
	BMIUnderweight  BMICategory = "underweight"
	BMINormal       BMICategory = "normal weight"
	BMIOverweight   BMICategory = "overweight"
	BMIObese        BMICategory = "obese"
)

// BMI returns weight / height² with height in meters, rounded to one decimal.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if !positive(weightKg) || !positive(heightCm) {
		return 0, false
	}
	heightM := heightCm / 100
	return positive1(weightKg / (heightM * heightM))
}

func CategorizeBMI(bmi float64, ok bool) BMICategory {
	if !ok || !positive(bmi) {
		return BMIUndetermined
	}
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BodyFatPercentage estimates body fat with the Deurenberg formula. The
// result is clamped at zero.
func BodyFatPercentage(weightKg, heightCm float64, age int, gender Gender) (float64, bool) {
	if age <= 0 || !gender.Known() {
		return 0, false
	}
	bmi, ok := BMI(weightKg, heightCm)
	if !ok {
		return 0, false
	}

	fat := 1.20*bmi + 0.23*float64(age)
	if gender == GenderMale {
		fat -= 16.2
	} else {
		fat -= 5.4
	}

	fat = round1(fat)
	if !finite(fat) {
		return 0, false
	}
	return math.Max(0, fat), true
}

// IdealWeight uses the Devine formula: a base weight plus 2.3 kg for each
// inch above five feet.
func IdealWeight(heightCm float64, gender Gender) (float64, bool) {
	if !positive(heightCm) || !gender.Known() {
		return 0, false
	}

	inchesOver := math.Max(0, heightCm/2.54-60)
	base := 45.5
	if gender == GenderMale {
		base = 50
	}

	return positive1(base + 2.3*inchesOver)
}

// BMR is the Harris-Benedict basal metabolic rate in kcal/day, rounded to an
// integer.
func BMR(weightKg, heightCm float64, age int, gender Gender) (int, bool) {
	if !positive(weightKg) || !positive(heightCm) || age <= 0 || !gender.Known() {
		return 0, false
	}

	a := float64(age)
	var bmr float64
	if gender == GenderMale {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*a
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*a
	}
	return kcal(bmr)
}

func DailyCalories(bmr int, level ActivityLevel) (int, bool) {
	if bmr <= 0 {
		return 0, false
	}
	return kcal(float64(bmr) * level.Multiplier())
}

type CalorieTargets struct {
	Maintenance   int           `json:"maintenance"`
	WeightLoss    int           `json:"weight_loss"`
	WeightGain    int           `json:"weight_gain"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	BMR           int           `json:"bmr"`
}

// DailyCaloriesDetailed adds a 20% deficit and a 20% surplus to the
// maintenance intake.
func DailyCaloriesDetailed(bmr int, level ActivityLevel) (CalorieTargets, bool) {
	maintenance, ok := DailyCalories(bmr, level)
	if !ok {
		return CalorieTargets{}, false
	}

	if !level.Known() {
		level = ActivitySedentary
	}

	return CalorieTargets{
		Maintenance:   maintenance,
		WeightLoss:    int(math.Round(float64(maintenance) * 0.8)),
		WeightGain:    int(math.Round(float64(maintenance) * 1.2)),
		ActivityLevel: level,
		BMR:           bmr,
	}, true
}

// WaterIntake is 35 ml per kg of body weight, in liters.
func WaterIntake(weightKg float64) (float64, bool) {
	if !positive(weightKg) {
		return 0, false
	}
	return positive1(weightKg * 35 / 1000)
}

type MuscleCategory string

const (
	MuscleLow    MuscleCategory = "low"
	MuscleNormal MuscleCategory = "normal"
	MuscleHigh   MuscleCategory = "high"
)

type MuscleMass struct {
	MassKg     float64        `json:"mass_kg"`
	Percentage float64        `json:"percentage"`
	Category   MuscleCategory `json:"category"`
}

// muscle percentage bands: below low is MuscleLow, below high is MuscleNormal.
var muscleBands = map[Gender][2]float64{
	GenderMale:   {38, 44},
	GenderFemale: {31, 36},
}

// EstimateMuscleMass applies the Janssen regression and grades the share of
// body weight against gender specific bands.
func EstimateMuscleMass(weightKg, heightCm float64, age int, gender Gender) (MuscleMass, bool) {
	if !positive(weightKg) || !positive(heightCm) || age <= 0 || !gender.Known() {
		return MuscleMass{}, false
	}

	a := float64(age)
	var mass float64
	if gender == GenderMale {
		mass = 0.407*weightKg + 0.267*heightCm - 0.049*a + 2.513
	} else {
		mass = 0.252*weightKg + 0.473*heightCm - 0.048*a + 2.513
	}
	mass = math.Max(0, round1(mass))
	pct := round1(mass / weightKg * 100)
	if !finite(mass) || !finite(pct) {
		return MuscleMass{}, false
	}

	return MuscleMass{MassKg: mass, Percentage: pct, Category: gradeMuscle(pct, gender)}, true
}

func gradeMuscle(pct float64, gender Gender) MuscleCategory {
	bands := muscleBands[gender]
	switch {
	case pct < bands[0]:
		return MuscleLow
	case pct < bands[1]:
		return MuscleNormal
	default:
		return MuscleHigh
	}
}

type Somatotype string

const (
	Ectomorph Somatotype = "ectomorph"
	Mesomorph Somatotype = "mesomorph"
	Endomorph Somatotype = "endomorph"
)

type BodyType struct {
	Type        Somatotype `json:"type"`
	Description string     `json:"description"`
}

var somatotypeDescriptions = map[Somatotype]string{
	Ectomorph: "Lean build with narrow bones and little fat. Fast metabolism, gains weight and muscle slowly.",
	Mesomorph: "Athletic build with broad shoulders and a narrow waist. Average metabolism, builds muscle easily.",
	Endomorph: "Wide bone structure with a tendency to store fat. Slow metabolism, gains weight easily.",
}

// ClassifyBodyType derives the somatotype from BMI and, when age and gender
// allow it, the estimated body fat.
func ClassifyBodyType(weightKg, heightCm float64, age int, gender Gender) (BodyType, bool) {
	bmi, ok := BMI(weightKg, heightCm)
	if !ok {
		return BodyType{}, false
	}
	fat, hasFat := BodyFatPercentage(weightKg, heightCm, age, gender)

	t := Endomorph
	switch {
	case bmi < 22 && (!hasFat || fat < 15):
		t = Ectomorph
	case bmi >= 22 && bmi <= 26 && (!hasFat || (fat >= 15 && fat <= 20)):
		t = Mesomorph
	}

	return BodyType{Type: t, Description: somatotypeDescriptions[t]}, true
}

type HeartRateLevel string

const (
	HeartRateTooLow   HeartRateLevel = "too low"
	HeartRateLow      HeartRateLevel = "low"
	HeartRateOptimal  HeartRateLevel = "optimal"
	HeartRateElevated HeartRateLevel = "elevated"
	HeartRateHigh     HeartRateLevel = "high"
)

type HeartRateStatus struct {
	Status      HeartRateLevel `json:"status"`
	Description string         `json:"description"`
	Value       int            `json:"value"`
}

// RestingHeartRateStatus grades a resting pulse in beats per minute.
func RestingHeartRateStatus(bpm int) (HeartRateStatus, bool) {
	if bpm <= 0 {
		return HeartRateStatus{}, false
	}

	s := HeartRateStatus{Value: bpm}
	switch {
	case bpm < 50:
		s.Status, s.Description = HeartRateTooLow, "May need a doctor's consultation"
	case bpm < 60:
		s.Status, s.Description = HeartRateLow, "Common in well trained people"
	case bpm <= 80:
		s.Status, s.Description = HeartRateOptimal, "Best range for health and fitness"
	case bpm <= 90:
		s.Status, s.Description = HeartRateElevated, "May point to low activity or stress"
	default:
		s.Status, s.Description = HeartRateHigh, "Health risk, a doctor's consultation is advised"
	}

	return s, true
}

type HeartRateZone struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	MinPercent int    `json:"min_percent"`
	MaxPercent int    `json:"max_percent"`
	MinBPM     int    `json:"min_bpm"`
	MaxBPM     int    `json:"max_bpm"`
}

type HeartRateZones struct {
	MaxHR int             `json:"max_hr"`
	Zones []HeartRateZone `json:"zones"`
}

var zoneTemplates = []HeartRateZone{
	{Name: "recovery", Label: "Recovery", MinPercent: 50, MaxPercent: 60},
	{Name: "fat_burn", Label: "Fat burn", MinPercent: 60, MaxPercent: 70},
	{Name: "aerobic", Label: "Aerobic", MinPercent: 70, MaxPercent: 80},
	{Name: "anaerobic", Label: "Anaerobic", MinPercent: 80, MaxPercent: 90},
	{Name: "maximum", Label: "Maximum", MinPercent: 90, MaxPercent: 100},
}

// TrainingZones splits 220-age into five intensity bands. Bounds are floored
// to whole beats per minute.
func TrainingZones(age int) (HeartRateZones, bool) {
	if age <= 0 || age >= 220 {
		return HeartRateZones{}, false
	}

	maxHR := 220 - age
	zones := make([]HeartRateZone, len(zoneTemplates))
	for i, z := range zoneTemplates {
		z.MinBPM = maxHR * z.MinPercent / 100
		z.MaxBPM = maxHR * z.MaxPercent / 100
		zones[i] = z
	}

	return HeartRateZones{MaxHR: maxHR, Zones: zones}, true
}

// Zone returns the named zone, if present.
func (z HeartRateZones) Zone(name string) (HeartRateZone, bool) {
	for _, zone := range z.Zones {
		if zone.Name == name {
			return zone, true
		}
	}
	return HeartRateZone{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// positive1 rounds to one decimal; overflowed or non-positive results are absent.
func positive1(v float64) (float64, bool) {
	r := round1(v)
	if !positive(r) {
		return 0, false
	}
	return r, true
}

// kcal rounds to whole kilocalories. Results outside (0, MaxInt32] are absent.
func kcal(v float64) (int, bool) {
	r := math.Round(v)
	if !positive(r) || r > math.MaxInt32 {
		return 0, false
	}
	return int(r), true
}
