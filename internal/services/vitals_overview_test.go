package services

import (
	"testing"

	"github.com/vytalhealth/vytal/internal/models"
)

func TestBuildVitalsOverviewAveragesAndTrends(t *testing.T) {
	entries := []models.DiaryEntry{
		{Date: "2026-02-03", BloodPressure: "130/85", HeartRate: ptr(80), Sugar: ptr(110), Mood: models.MoodFromLabel("Good")},
		{Date: "2026-02-01", BloodPressure: "120/80", HeartRate: ptr(70), Sugar: ptr(100), Temperature: ptr(98.6), Mood: models.MoodFromLabel("Fair")},
		{Date: "2026-02-02", BloodPressure: "bad", HeartRate: ptr(71), Mood: models.MoodFromLabel("Good")},
	}

	overview := BuildVitalsOverview(entries)

	assertAverage(t, "sugar", overview.AverageSugar, 105)
	assertAverage(t, "heart rate", overview.AverageHeartRate, 73.67)
	assertAverage(t, "temperature", overview.AverageTemp, 98.6)
	assertAverage(t, "systolic", overview.AverageSystolic, 125)
	assertAverage(t, "diastolic", overview.AverageDiastolic, 82.5)

	if overview.CommonMood != "Good" {
		t.Fatalf("expected common mood Good, got %q", overview.CommonMood)
	}
	if overview.SugarTrend != TrendIncreasing || overview.HeartRateTrend != TrendIncreasing || overview.BPTrend != TrendIncreasing {
		t.Fatalf("expected increasing trends in date order, got %#v", overview)
	}
	if overview.TempTrend != "" {
		t.Fatalf("expected no temperature trend with one reading, got %q", overview.TempTrend)
	}
}

func TestBuildVitalsOverviewEmpty(t *testing.T) {
	overview := BuildVitalsOverview(nil)
	if overview.AverageSugar != nil || overview.AverageHeartRate != nil || overview.CommonMood != "" || overview.BPTrend != "" {
		t.Fatalf("expected empty overview, got %#v", overview)
	}
}

func TestTrendTreatsFlatSeriesAsDecreasing(t *testing.T) {
	if got := trend([]float64{5, 9, 5}); got != TrendDecreasing {
		t.Fatalf("expected decreasing for equal endpoints, got %q", got)
	}
}

func TestMostCommonPrefersFirstOnTie(t *testing.T) {
	if got := mostCommon([]string{"Fair", "Good", "Good", "Fair"}); got != "Fair" {
		t.Fatalf("expected first seen value on tie, got %q", got)
	}
}

func assertAverage(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil || *got != want {
		t.Fatalf("%s average = %v, want %v", name, got, want)
	}
}
