package services

import (
	"strconv"
	"strings"

	"github.com/vytalhealth/vytal/internal/models"
)

type BloodPressurePoint struct {
	Day       string
	Systolic  int
	Diastolic int
}

type HeartRatePoint struct {
	Day string
	HR  float64
}

type SummaryCharts struct {
	BloodPressure []BloodPressurePoint
	HeartRate     []HeartRatePoint
	Mood          []MoodSlice
}

func DeriveSummaryCharts(entries []models.DiaryEntry, policy MoodPolicy) SummaryCharts {
	return SummaryCharts{
		BloodPressure: BloodPressureSeries(entries),
		HeartRate:     HeartRateSeries(entries),
		Mood:          MoodDistribution(entries, policy),
	}
}

// ParseBloodPressure accepts "S/D" with exactly one separator and integer
// halves.
func ParseBloodPressure(raw string) (int, int, bool) {
	if strings.Count(raw, "/") != 1 {
		return 0, 0, false
	}
	systolicText, diastolicText, _ := strings.Cut(raw, "/")
	systolic, err := strconv.Atoi(strings.TrimSpace(systolicText))
	if err != nil {
		return 0, 0, false
	}
	diastolic, err := strconv.Atoi(strings.TrimSpace(diastolicText))
	if err != nil {
		return 0, 0, false
	}
	return systolic, diastolic, true
}

func BloodPressureSeries(entries []models.DiaryEntry) []BloodPressurePoint {
	points := make([]BloodPressurePoint, 0, len(entries))
	for _, entry := range entries {
		systolic, diastolic, ok := ParseBloodPressure(entry.BloodPressure)
		if !ok {
			continue
		}
		points = append(points, BloodPressurePoint{
			Day:       entry.Date,
			Systolic:  systolic,
			Diastolic: diastolic,
		})
	}
	return points
}

// HeartRateSeries drops entries whose heart rate is missing or zero.
func HeartRateSeries(entries []models.DiaryEntry) []HeartRatePoint {
	points := make([]HeartRatePoint, 0, len(entries))
	for _, entry := range entries {
		if !entry.HasHeartRate() {
			continue
		}
		points = append(points, HeartRatePoint{Day: entry.Date, HR: *entry.HeartRate})
	}
	return points
}
