package models

import "time"

const DiarySnapshotName = "diary"

// DiarySnapshotRow is one entry of the cached diary list, ordered by Position.
type DiarySnapshotRow struct {
	ID        uint       `gorm:"primaryKey"`
	Position  int        `gorm:"not null;index"`
	EntryID   string     `gorm:"not null;default:''"`
	Entry     DiaryEntry `gorm:"column:payload;serializer:json;not null"`
	CreatedAt time.Time
}

func (DiarySnapshotRow) TableName() string {
	return "diary_snapshots"
}

// CacheState marks when a named snapshot was last filled from the backend.
// A missing row means the snapshot is invalid.
type CacheState struct {
	Name      string    `gorm:"primaryKey"`
	FetchedAt time.Time `gorm:"not null"`
}

func (CacheState) TableName() string {
	return "cache_states"
}
