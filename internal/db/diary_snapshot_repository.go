package db

import (
	"context"
	"time"

	"github.com/vytalhealth/vytal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DiarySnapshotRepository stores the last diary list read from the backend.
type DiarySnapshotRepository struct {
	database *gorm.DB
}

func NewDiarySnapshotRepository(database *gorm.DB) *DiarySnapshotRepository {
	return &DiarySnapshotRepository{database: database}
}

func (repo *DiarySnapshotRepository) List(ctx context.Context) ([]models.DiaryEntry, error) {
	rows := make([]models.DiarySnapshotRow, 0)
	if err := repo.database.WithContext(ctx).Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]models.DiaryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Entry)
	}
	return entries, nil
}

// FetchedAt reports when the snapshot was last replaced. found=false means
// the snapshot was never filled or has been invalidated.
func (repo *DiarySnapshotRepository) FetchedAt(ctx context.Context) (time.Time, bool, error) {
	state := models.CacheState{}
	result := repo.database.WithContext(ctx).
		Where("name = ?", models.DiarySnapshotName).
		Limit(1).
		Find(&state)
	if result.Error != nil {
		return time.Time{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return time.Time{}, false, nil
	}
	return state.FetchedAt, true, nil
}

func (repo *DiarySnapshotRepository) Replace(ctx context.Context, entries []models.DiaryEntry, fetchedAt time.Time) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.DiarySnapshotRow{}).Error; err != nil {
			return err
		}

		if len(entries) > 0 {
			rows := make([]models.DiarySnapshotRow, 0, len(entries))
			for index, entry := range entries {
				rows = append(rows, models.DiarySnapshotRow{
					Position: index,
					EntryID:  entry.ID,
					Entry:    entry,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		state := models.CacheState{Name: models.DiarySnapshotName, FetchedAt: fetchedAt}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"fetched_at"}),
		}).Create(&state).Error
	})
}

// Prepend puts entry ahead of every cached entry without touching the
// snapshot's fetch time.
func (repo *DiarySnapshotRepository) Prepend(ctx context.Context, entry models.DiaryEntry) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		position, err := nextLeadingPosition(tx, &models.DiarySnapshotRow{}, 1)
		if err != nil {
			return err
		}
		row := models.DiarySnapshotRow{
			Position: position,
			EntryID:  entry.ID,
			Entry:    entry,
		}
		return tx.Create(&row).Error
	})
}

func (repo *DiarySnapshotRepository) Invalidate(ctx context.Context) error {
	return repo.database.WithContext(ctx).
		Where("name = ?", models.DiarySnapshotName).
		Delete(&models.CacheState{}).Error
}

// nextLeadingPosition returns the first of count positions that sort before
// every existing row of model.
func nextLeadingPosition(tx *gorm.DB, model any, count int) (int, error) {
	var minimum int
	if err := tx.Model(model).Select("COALESCE(MIN(position), 0)").Scan(&minimum).Error; err != nil {
		return 0, err
	}
	return minimum - count, nil
}
