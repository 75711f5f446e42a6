package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/vytalhealth/vytal/internal/services"
)

func TestWriteHealthReportSinglePage(t *testing.T) {
	var buf bytes.Buffer
	pages, err := WriteHealthReport(&buf, services.SummaryReport{
		GeneratedAt: time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC),
		Narrative:   services.NarrativeUnavailable(),
		Charts: services.SummaryCharts{
			Mood: services.MoodDistribution(nil, services.ThreeWayMoodPolicy),
		},
	})
	if err != nil {
		t.Fatalf("WriteHealthReport() unexpected error: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected a short report to fit one page, got %d", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWriteHealthReportPaginatesLongContent(t *testing.T) {
	points := make([]services.BloodPressurePoint, 0, 150)
	rates := make([]services.HeartRatePoint, 0, 150)
	insights := make([]string, 0, 40)
	for i := 0; i < 150; i++ {
		day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format("2006-01-02")
		points = append(points, services.BloodPressurePoint{Day: day, Systolic: 110 + i%20, Diastolic: 70 + i%10})
		rates = append(rates, services.HeartRatePoint{Day: day, HR: float64(60 + i%25)})
	}
	for i := 0; i < 40; i++ {
		insights = append(insights, fmt.Sprintf("Insight number %d about a steady trend in the readings over the month.", i))
	}

	var buf bytes.Buffer
	pages, err := WriteHealthReport(&buf, services.SummaryReport{
		EntryCount: 150,
		Narrative: services.Narrative{
			Summary:         "Blood Pressure 110-130/70-80, Heart Rate 60-85, Mood Fair-Good, Sugar n/a, Total Entries: 150",
			Insights:        insights,
			Recommendations: []string{"Follow-up: Recheck in 2 weeks"},
		},
		Charts: services.SummaryCharts{BloodPressure: points, HeartRate: rates},
	})
	if err != nil {
		t.Fatalf("WriteHealthReport() unexpected error: %v", err)
	}
	if pages < 3 {
		t.Fatalf("expected long content to span several pages, got %d", pages)
	}
	if buf.Len() == 0 {
		t.Fatal("expected PDF bytes")
	}
}
