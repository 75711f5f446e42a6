package main

import (
	"context"
	"fmt"

	"github.com/vytalhealth/vytal/internal/backend"
	"github.com/vytalhealth/vytal/internal/config"
	"github.com/vytalhealth/vytal/internal/db"
	"github.com/vytalhealth/vytal/internal/logging"
	"github.com/vytalhealth/vytal/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application holds everything the commands share: config, logger, cache
// database and the services built on top of them.
type application struct {
	cfg           config.Config
	logger        *zap.Logger
	database      *gorm.DB
	repositories  *db.Repositories
	diary         *services.DiaryService
	summaries     *services.SummaryService
	prescriptions *services.PrescriptionService
}

func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	database, err := db.OpenSQLite(cfg.CacheDBPath, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	client, err := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger.Named("backend"))
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("backend client init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	diary := services.NewDiaryService(client, repositories.DiarySnapshots, cfg.CacheTTL, logger.Named("diary"))

	return &application{
		cfg:           cfg,
		logger:        logger,
		database:      database,
		repositories:  repositories,
		diary:         diary,
		summaries:     services.NewSummaryService(diary, client, services.ThreeWayMoodPolicy, logger.Named("summaries")),
		prescriptions: services.NewPrescriptionService(client, services.NewPrescriptionList(), logger.Named("prescriptions")),
	}, nil
}

func (app *application) logStartup(ctx context.Context) {
	_, snapshotFound, err := app.repositories.DiarySnapshots.FetchedAt(ctx)
	if err != nil {
		app.logger.Warn("read diary snapshot state failed", zap.Error(err))
	}
	app.logger.Info("vytal starting",
		zap.String("port", app.cfg.Port),
		zap.String("backend", app.cfg.BackendURL),
		zap.String("cache_db", app.cfg.CacheDBPath),
		zap.Duration("cache_ttl", app.cfg.CacheTTL),
		zap.String("tz", app.cfg.Location.String()),
		zap.Bool("diary_snapshot_cached", snapshotFound),
	)
}

func (app *application) Close() {
	if sqlDB, err := app.database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			app.logger.Warn("close cache database failed", zap.Error(err))
		}
	}
	_ = app.logger.Sync()
}
