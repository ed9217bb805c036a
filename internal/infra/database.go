package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salonsage/internal/config"
	dbm "salonsage/internal/models/db_models"
)

// OpenDatabase opens the configured store: the local SQLite file by
// default, Postgres when a URL is configured.
func OpenDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.Database.PostgresURL != "" {
		dialector = postgres.Open(cfg.Database.PostgresURL)
	} else {
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Database.PostgresURL == "" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		logger.Info("using sqlite store", zap.String("path", cfg.Database.SQLitePath))
	} else {
		logger.Info("using postgres store")
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&dbm.Client{},
		&dbm.Service{},
		&dbm.Subscription{},
		&dbm.ClientSubscription{},
		&dbm.Booking{},
		&dbm.BookingItem{},
		&dbm.LicenseKey{},
		&dbm.AppMetadata{},
	)
}

func CloseDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get database handle", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("close database", zap.Error(err))
	}
}
