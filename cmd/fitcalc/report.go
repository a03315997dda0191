package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
)

const notAvailable = "n/a"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3b4261")).
			Padding(0, 1)
)

func renderReport(in fitness.Input, m fitness.Metrics) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fitness report"))
	b.WriteString("\n")

	row(&b, "Input", describeInput(in))
	if m.BMI != nil {
		row(&b, "BMI", fmt.Sprintf("%.1f, %s", *m.BMI, m.BMICategory))
	} else {
		row(&b, "BMI", "")
	}
	row(&b, "Body fat, %", formatFloat(m.BodyFatPercentage))
	row(&b, "Ideal weight, kg", formatFloat(m.IdealWeight))
	row(&b, "BMR, kcal", formatInt(m.BMR))
	row(&b, "Daily calories, kcal", formatInt(m.DailyCalories))
	if t := m.DailyCaloriesDetailed; t != nil {
		row(&b, "  loss / gain", fmt.Sprintf("%d / %d", t.WeightLoss, t.WeightGain))
	}
	row(&b, "Water, l", formatFloat(m.WaterIntake))
	if mm := m.MuscleMass; mm != nil {
		row(&b, "Muscle mass", fmt.Sprintf("%.1f kg (%.1f%%, %s)", mm.MassKg, mm.Percentage, mm.Category))
	} else {
		row(&b, "Muscle mass", "")
	}
	if bt := m.BodyType; bt != nil {
		row(&b, "Body type", string(bt.Type))
	} else {
		row(&b, "Body type", "")
	}
	if hs := m.HeartRateStatus; hs != nil {
		row(&b, "Resting HR", fmt.Sprintf("%d bpm, %s", hs.Value, hs.Status))
	} else {
		row(&b, "Resting HR", "")
	}

	if z := m.HeartRateZones; z != nil {
		b.WriteString("\n")
		row(&b, "Max HR", strconv.Itoa(z.MaxHR))
		for _, zone := range z.Zones {
			row(&b, "  "+zone.Label, fmt.Sprintf("%d-%d bpm (%d-%d%%)", zone.MinBPM, zone.MaxBPM, zone.MinPercent, zone.MaxPercent))
		}
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	if value == "" {
		b.WriteString(mutedStyle.Render(notAvailable))
	} else {
		b.WriteString(valueStyle.Render(value))
	}
	b.WriteString("\n")
}

func describeInput(in fitness.Input) string {
	var parts []string
	if in.Weight > 0 {
		parts = append(parts, strconv.FormatFloat(in.Weight, 'f', -1, 64)+" kg")
	}
	if in.Height > 0 {
		parts = append(parts, strconv.FormatFloat(in.Height, 'f', -1, 64)+" cm")
	}
	if in.Age > 0 {
		parts = append(parts, strconv.Itoa(in.Age)+" y")
	}
	if in.Gender != fitness.GenderUnknown {
		parts = append(parts, string(in.Gender))
	}
	if in.ActivityLevel != "" {
		parts = append(parts, string(in.ActivityLevel))
	}
	if in.RestingHeartRate > 0 {
		parts = append(parts, strconv.Itoa(in.RestingHeartRate)+" bpm")
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
