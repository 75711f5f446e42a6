package services

import (
	"context"
	"time"

	"github.com/vytalhealth/vytal/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DiaryEntriesReader interface {
	Entries(ctx context.Context) ([]models.DiaryEntry, error)
}

type NarrativeBackend interface {
	AISummary(ctx context.Context) (models.RawNarrative, error)
}

type SummaryReport struct {
	GeneratedAt time.Time
	EntryCount  int
	Charts      SummaryCharts
	Narrative   Narrative
	Overview    VitalsOverview
}

type SummaryService struct {
	diary      DiaryEntriesReader
	narratives NarrativeBackend
	policy     MoodPolicy
	now        func() time.Time
	logger     *zap.Logger
}

func NewSummaryService(diary DiaryEntriesReader, narratives NarrativeBackend, policy MoodPolicy, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		diary:      diary,
		narratives: narratives,
		policy:     policy,
		now:        time.Now,
		logger:     logger,
	}
}

// Build fetches the diary list and the AI narrative concurrently. A failed
// diary fetch yields empty charts and a failed narrative fetch yields the
// unavailable placeholder; neither fails the report.
func (service *SummaryService) Build(ctx context.Context) SummaryReport {
	entries := []models.DiaryEntry{}
	narrative := NarrativeUnavailable()

	var group errgroup.Group
	group.Go(func() error {
		fetched, err := service.diary.Entries(ctx)
		if err != nil {
			service.logger.Warn("summary diary entries unavailable", zap.Error(err))
			return nil
		}
		entries = fetched
		return nil
	})
	group.Go(func() error {
		raw, err := service.narratives.AISummary(ctx)
		if err != nil {
			service.logger.Warn("ai summary unavailable", zap.Error(err))
			return nil
		}
		narrative = ReshapeNarrative(raw)
		return nil
	})
	_ = group.Wait()

	return SummaryReport{
		GeneratedAt: service.now(),
		EntryCount:  len(entries),
		Charts:      DeriveSummaryCharts(entries, service.policy),
		Narrative:   narrative,
		Overview:    BuildVitalsOverview(entries),
	}
}
