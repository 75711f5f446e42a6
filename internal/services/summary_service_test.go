package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vytalhealth/vytal/internal/models"
)

type entriesReaderStub struct {
	entries []models.DiaryEntry
	err     error
}

func (stub entriesReaderStub) Entries(context.Context) ([]models.DiaryEntry, error) {
	return stub.entries, stub.err
}

type narrativeBackendStub struct {
	raw models.RawNarrative
	err error
}

func (stub narrativeBackendStub) AISummary(context.Context) (models.RawNarrative, error) {
	return stub.raw, stub.err
}

func TestSummaryServiceBuildCombinesBothFetches(t *testing.T) {
	reader := entriesReaderStub{entries: []models.DiaryEntry{
		{Date: "2026-02-01", BloodPressure: "120/80", HeartRate: ptr(70), Mood: models.MoodFromRating(4)},
		{Date: "2026-02-02", BloodPressure: "125/82", HeartRate: ptr(75), Mood: models.MoodFromLabel("Poor")},
	}}
	narratives := narrativeBackendStub{raw: models.RawNarrative{Summary: []byte(`"Stable"`)}}
	service := NewSummaryService(reader, narratives, ThreeWayMoodPolicy, nil)
	generated := time.Date(2026, time.February, 3, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return generated }

	report := service.Build(context.Background())

	if report.EntryCount != 2 || len(report.Charts.BloodPressure) != 2 || len(report.Charts.HeartRate) != 2 {
		t.Fatalf("unexpected charts: %#v", report.Charts)
	}
	if report.Narrative.Summary != "Stable" {
		t.Fatalf("expected narrative summary, got %q", report.Narrative.Summary)
	}
	if !report.GeneratedAt.Equal(generated) {
		t.Fatalf("expected generated time %s, got %s", generated, report.GeneratedAt)
	}
	if report.Overview.AverageSystolic == nil || *report.Overview.AverageSystolic != 122.5 {
		t.Fatalf("unexpected overview: %#v", report.Overview)
	}
}

func TestSummaryServiceBuildDegradesOnFailures(t *testing.T) {
	service := NewSummaryService(
		entriesReaderStub{err: errors.New("diary down")},
		narrativeBackendStub{err: errors.New("ai down")},
		ThreeWayMoodPolicy,
		nil,
	)

	report := service.Build(context.Background())

	if report.EntryCount != 0 || len(report.Charts.BloodPressure) != 0 || len(report.Charts.HeartRate) != 0 {
		t.Fatalf("expected empty charts, got %#v", report.Charts)
	}
	if len(report.Charts.Mood) != len(ThreeWayMoodPolicy.Buckets) {
		t.Fatalf("expected fixed mood buckets, got %#v", report.Charts.Mood)
	}
	if report.Narrative.Summary != NoAISummaryAvailable || len(report.Narrative.Insights) != 0 {
		t.Fatalf("expected unavailable narrative, got %#v", report.Narrative)
	}
}
