package db

import "gorm.io/gorm"

type Repositories struct {
	DiarySnapshots *DiarySnapshotRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DiarySnapshots: NewDiarySnapshotRepository(database),
	}
}
