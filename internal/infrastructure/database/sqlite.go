package database

import (
	"fmt"

	"clinic-queue/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteConnection opens an embedded SQLite database and migrates the
// schema with AutoMigrate. Used for local runs and by the test suites.
// SQLite serialises writers, so the pool is capped to one connection.
func NewSQLiteConnection(dsn string) (*gorm.DB, error) {
	cfg := gormConfig(true)
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	logrus.Debugf("Opened sqlite database %s", dsn)

	return db, nil
}

// AutoMigrate creates or updates every table of the schema.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Specialization{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
