// Package db opens the postgres database behind database-backed visitor
// storage.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"folio/internal/config"
	applog "folio/internal/log"
	"folio/models"
)

const slowQueryThreshold = 250 * time.Millisecond

// logWriter feeds gorm's logger into the application log.
type logWriter struct{}

func (logWriter) Printf(format string, args ...any) {
	applog.Warn(context.Background(), "database", "detail", strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func newLogger() logger.Interface {
	return logger.New(logWriter{}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Open connects to cfg.URL and applies the pool limits that are set.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("database URL must not be empty")
	}

	database, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 newLogger(),
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
	return database, nil
}

// AutoMigrate creates or updates the settings table that backs database storage.
func AutoMigrate(database *gorm.DB) error {
	if database == nil {
		return errors.New("database handle is nil")
	}
	return database.AutoMigrate(&models.Setting{})
}

// Configure opens the database and migrates the settings schema.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(database); err != nil {
		_ = Close(database)
		return nil, fmt.Errorf("migrate settings: %w", err)
	}
	return database, nil
}

// Close releases the connection pool. A nil handle is ignored.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
