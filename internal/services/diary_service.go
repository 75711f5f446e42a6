package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vytalhealth/vytal/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DashboardRecentEntries = 3

type DiaryBackend interface {
	ListEntries(ctx context.Context) ([]models.DiaryEntry, error)
	LatestEntry(ctx context.Context) (models.DiaryEntry, bool, error)
	CreateEntry(ctx context.Context, payload models.DiaryPayload) (models.DiaryEntry, error)
}

type DiarySnapshotStore interface {
	List(ctx context.Context) ([]models.DiaryEntry, error)
	FetchedAt(ctx context.Context) (time.Time, bool, error)
	Replace(ctx context.Context, entries []models.DiaryEntry, fetchedAt time.Time) error
	Prepend(ctx context.Context, entry models.DiaryEntry) error
	Invalidate(ctx context.Context) error
}

// DiaryService is the single read and write path for diary entries. Reads
// are served from the snapshot while it is younger than ttl; a zero ttl
// always goes to the backend.
type DiaryService struct {
	backend   DiaryBackend
	snapshots DiarySnapshotStore
	ttl       time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewDiaryService(backend DiaryBackend, snapshots DiarySnapshotStore, ttl time.Duration, logger *zap.Logger) *DiaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiaryService{
		backend:   backend,
		snapshots: snapshots,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger,
	}
}

func (service *DiaryService) Entries(ctx context.Context) ([]models.DiaryEntry, error) {
	if service.snapshotFresh(ctx) {
		entries, err := service.snapshots.List(ctx)
		if err == nil {
			return entries, nil
		}
		service.logger.Warn("read diary snapshot failed", zap.Error(err))
	}
	return service.Refresh(ctx)
}

// Refresh reads the full list from the backend and replaces the snapshot.
// A snapshot write failure is logged; the fetched list is still returned.
func (service *DiaryService) Refresh(ctx context.Context) ([]models.DiaryEntry, error) {
	entries, err := service.backend.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	if service.snapshots != nil {
		if err := service.snapshots.Replace(ctx, entries, service.now()); err != nil {
			service.logger.Warn("replace diary snapshot failed", zap.Error(err))
		}
	}
	return entries, nil
}

func (service *DiaryService) Latest(ctx context.Context) (models.DiaryEntry, bool, error) {
	entry, found, err := service.backend.LatestEntry(ctx)
	if err != nil {
		return models.DiaryEntry{}, false, fmt.Errorf("load latest diary entry: %w", err)
	}
	return entry, found, nil
}

// Submit creates an entry from the form and prepends the backend's record
// to the snapshot. Fields the backend left out of its response are filled
// from the submitted payload.
func (service *DiaryService) Submit(ctx context.Context, input DiaryFormInput) (models.DiaryEntry, error) {
	payload, err := ParseDiaryForm(input)
	if err != nil {
		return models.DiaryEntry{}, err
	}

	created, err := service.backend.CreateEntry(ctx, payload)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("create diary entry: %w", err)
	}
	entry := mergeCreatedEntry(created, payload.Entry())

	if service.snapshots != nil {
		service.prependToSnapshot(ctx, entry)
	}
	return entry, nil
}

func (service *DiaryService) Invalidate(ctx context.Context) error {
	if service.snapshots == nil {
		return nil
	}
	return service.snapshots.Invalidate(ctx)
}

type DashboardView struct {
	Latest    models.DiaryEntry
	HasLatest bool
	Recent    []models.DiaryEntry
}

// Dashboard loads the latest entry and the recent list concurrently. Each
// fetch degrades on its own: failures are logged and leave that part empty.
func (service *DiaryService) Dashboard(ctx context.Context) DashboardView {
	view := DashboardView{Recent: []models.DiaryEntry{}}

	var group errgroup.Group
	group.Go(func() error {
		latest, found, err := service.Latest(ctx)
		if err != nil {
			service.logger.Warn("dashboard latest entry unavailable", zap.Error(err))
			return nil
		}
		view.Latest = latest
		view.HasLatest = found
		return nil
	})
	group.Go(func() error {
		entries, err := service.Entries(ctx)
		if err != nil {
			service.logger.Warn("dashboard recent entries unavailable", zap.Error(err))
			return nil
		}
		if len(entries) > DashboardRecentEntries {
			entries = entries[:DashboardRecentEntries]
		}
		view.Recent = entries
		return nil
	})
	_ = group.Wait()

	return view
}

func (service *DiaryService) snapshotFresh(ctx context.Context) bool {
	if service.snapshots == nil || service.ttl <= 0 {
		return false
	}
	fetchedAt, found, err := service.snapshots.FetchedAt(ctx)
	if err != nil {
		service.logger.Warn("read diary snapshot state failed", zap.Error(err))
		return false
	}
	return found && service.now().Sub(fetchedAt) < service.ttl
}

func (service *DiaryService) prependToSnapshot(ctx context.Context, entry models.DiaryEntry) {
	_, found, err := service.snapshots.FetchedAt(ctx)
	if err != nil {
		service.logger.Warn("read diary snapshot state failed", zap.Error(err))
		return
	}
	if !found {
		return
	}
	if err := service.snapshots.Prepend(ctx, entry); err != nil {
		service.logger.Warn("prepend to diary snapshot failed", zap.Error(err))
		if err := service.snapshots.Invalidate(ctx); err != nil {
			service.logger.Warn("invalidate diary snapshot failed", zap.Error(err))
		}
	}
}

func mergeCreatedEntry(created models.DiaryEntry, submitted models.DiaryEntry) models.DiaryEntry {
	if created.Date == "" {
		created.Date = submitted.Date
	}
	if created.Time == "" {
		created.Time = submitted.Time
	}
	if created.BloodPressure == "" {
		created.BloodPressure = submitted.BloodPressure
	}
	if created.HeartRate == nil {
		created.HeartRate = submitted.HeartRate
	}
	if created.Temperature == nil {
		created.Temperature = submitted.Temperature
	}
	if created.Sugar == nil {
		created.Sugar = submitted.Sugar
	}
	if !created.Mood.IsSet() {
		created.Mood = submitted.Mood
	}
	if created.Symptoms == nil {
		created.Symptoms = submitted.Symptoms
	}
	if created.Notes == "" {
		created.Notes = submitted.Notes
	}
	return created
}
