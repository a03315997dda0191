// Package fitness derives health and training metrics from a person's
// weight, height, age, gender, activity level and resting heart rate.
//
// Every function is pure and total: missing or invalid input never produces
// an error, only an absent result for the metrics that depend on it.
package fitness

type Metrics struct {
	BMI                   *float64         `json:"bmi"`
	BMICategory           BMICategory      `json:"bmi_category"`
	BodyFatPercentage     *float64         `json:"body_fat_percentage"`
	IdealWeight           *float64         `json:"ideal_weight"`
	BMR                   *int             `json:"bmr"`
	DailyCalories         *int             `json:"daily_calories"`
	DailyCaloriesDetailed *CalorieTargets  `json:"daily_calories_detailed"`
	WaterIntake           *float64         `json:"water_intake"`
	MuscleMass            *MuscleMass      `json:"muscle_mass"`
	BodyType              *BodyType        `json:"body_type"`
	HeartRateStatus       *HeartRateStatus `json:"hr_status"`
	HeartRateZones        *HeartRateZones  `json:"hr_zones"`
}

// Calculate computes all metrics at once.
func Calculate(in Input) Metrics {
	var m Metrics

	bmi, ok := BMI(in.Weight, in.Height)
	m.BMI = ptr(bmi, ok)
	m.BMICategory = CategorizeBMI(bmi, ok)

	fat, ok := BodyFatPercentage(in.Weight, in.Height, in.Age, in.Gender)
	m.BodyFatPercentage = ptr(fat, ok)

	ideal, ok := IdealWeight(in.Height, in.Gender)
	m.IdealWeight = ptr(ideal, ok)

	bmr, ok := BMR(in.Weight, in.Height, in.Age, in.Gender)
	m.BMR = ptr(bmr, ok)

	calories, ok := DailyCalories(bmr, in.ActivityLevel)
	m.DailyCalories = ptr(calories, ok)

	targets, ok := DailyCaloriesDetailed(bmr, in.ActivityLevel)
	m.DailyCaloriesDetailed = ptr(targets, ok)

	water, ok := WaterIntake(in.Weight)
	m.WaterIntake = ptr(water, ok)

	muscle, ok := EstimateMuscleMass(in.Weight, in.Height, in.Age, in.Gender)
	m.MuscleMass = ptr(muscle, ok)

	bodyType, ok := ClassifyBodyType(in.Weight, in.Height, in.Age, in.Gender)
	m.BodyType = ptr(bodyType, ok)

	hrStatus, ok := RestingHeartRateStatus(in.RestingHeartRate)
	m.HeartRateStatus = ptr(hrStatus, ok)

	zones, ok := TrainingZones(in.Age)
	m.HeartRateZones = ptr(zones, ok)

	return m
}

func ptr[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
