package charts

import (
	"strings"
	"testing"

	"github.com/vytalhealth/vytal/internal/services"
)

func TestRenderSummaryIncludesSeriesData(t *testing.T) {
	rendered, err := RenderSummary(services.SummaryCharts{
		BloodPressure: []services.BloodPressurePoint{{Day: "2026-02-01", Systolic: 121, Diastolic: 79}},
		HeartRate:     []services.HeartRatePoint{{Day: "2026-02-01", HR: 67}},
		Mood: []services.MoodSlice{
			{Mood: services.MoodBucketHappy, Count: 2, Color: "#10b981"},
			{Mood: services.MoodBucketLow, Count: 1, Color: "#ef4444"},
		},
	})
	if err != nil {
		t.Fatalf("RenderSummary() unexpected error: %v", err)
	}

	bloodPressure := string(rendered.BloodPressure)
	for _, fragment := range []string{"Systolic", "Diastolic", "2026-02-01", "121", "79"} {
		if !strings.Contains(bloodPressure, fragment) {
			t.Fatalf("expected blood pressure chart to contain %q", fragment)
		}
	}
	if !strings.Contains(string(rendered.HeartRate), "67") {
		t.Fatal("expected heart rate chart to contain the reading")
	}
	mood := string(rendered.Mood)
	if !strings.Contains(mood, "#10b981") || !strings.Contains(mood, services.MoodBucketHappy) {
		t.Fatal("expected mood chart to carry bucket names and colors")
	}
}

func TestRenderSummaryWithEmptySeries(t *testing.T) {
	rendered, err := RenderSummary(services.SummaryCharts{})
	if err != nil {
		t.Fatalf("RenderSummary() unexpected error: %v", err)
	}
	if rendered.BloodPressure == "" || rendered.HeartRate == "" || rendered.Mood == "" {
		t.Fatalf("expected empty charts to still render, got %#v", rendered)
	}
}
