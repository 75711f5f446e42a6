package services

import (
	"math"
	"sort"

	"github.com/vytalhealth/vytal/internal/models"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Averages are nil when no entry carried the reading.
type VitalsOverview struct {
	AverageSugar     *float64
	AverageHeartRate *float64
	AverageTemp      *float64
	AverageSystolic  *float64
	AverageDiastolic *float64
	CommonMood       string

	SugarTrend     string
	HeartRateTrend string
	TempTrend      string
	BPTrend        string
}

// BuildVitalsOverview averages each vital over the entries that carry it,
// in date order, and compares the first and last reading for a trend. A
// trend needs at least two readings; a flat series counts as decreasing.
func BuildVitalsOverview(entries []models.DiaryEntry) VitalsOverview {
	ordered := append([]models.DiaryEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	var sugar, heartRate, temperature, systolic, diastolic []float64
	moods := make([]string, 0, len(ordered))
	for _, entry := range ordered {
		if entry.Sugar != nil {
			sugar = append(sugar, *entry.Sugar)
		}
		if entry.HeartRate != nil {
			heartRate = append(heartRate, *entry.HeartRate)
		}
		if entry.Temperature != nil {
			temperature = append(temperature, *entry.Temperature)
		}
		if high, low, ok := ParseBloodPressure(entry.BloodPressure); ok {
			systolic = append(systolic, float64(high))
			diastolic = append(diastolic, float64(low))
		}
		if entry.Mood.IsSet() {
			moods = append(moods, entry.Mood.String())
		}
	}

	return VitalsOverview{
		AverageSugar:     roundedAverage(sugar),
		AverageHeartRate: roundedAverage(heartRate),
		AverageTemp:      roundedAverage(temperature),
		AverageSystolic:  roundedAverage(systolic),
		AverageDiastolic: roundedAverage(diastolic),
		CommonMood:       mostCommon(moods),
		SugarTrend:       trend(sugar),
		HeartRateTrend:   trend(heartRate),
		TempTrend:        trend(temperature),
		BPTrend:          trend(systolic),
	}
}

func roundedAverage(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	total := 0.0
	for _, value := range values {
		total += value
	}
	average := math.Round(total/float64(len(values))*100) / 100
	return &average
}

func trend(values []float64) string {
	if len(values) < 2 {
		return ""
	}
	if values[len(values)-1] > values[0] {
		return TrendIncreasing
	}
	return TrendDecreasing
}

// mostCommon breaks ties in favour of the value seen first.
func mostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	best := ""
	bestCount := 0
	for _, value := range values {
		counts[value]++
	}
	for _, value := range values {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}
