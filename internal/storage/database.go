package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"folio/models"
)

// Database keeps values as models.Setting rows scoped to one visitor profile.
type Database struct {
	db      *gorm.DB
	profile string
}

// NewDatabase returns a Storage bound to profile.
func NewDatabase(db *gorm.DB, profile string) *Database {
	return &Database{db: db, profile: strings.TrimSpace(profile)}
}

func (d *Database) ready() error {
	if d == nil || d.db == nil {
		return fmt.Errorf("%w: database not configured", ErrUnavailable)
	}
	if d.profile == "" {
		return fmt.Errorf("%w: missing visitor profile", ErrUnavailable)
	}
	return nil
}

func (d *Database) conditions(key string) map[string]any {
	return map[string]any{"profile": d.profile, "key": models.NormalizeKey(key)}
}

func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	if err := d.ready(); err != nil {
		return "", false, err
	}

	var setting models.Setting
	err := d.db.WithContext(ctx).
		Where(d.conditions(key)).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load setting %q: %w: %w", key, ErrUnavailable, err)
	}
	return setting.Value, true, nil
}

func (d *Database) Set(ctx context.Context, key, value string) error {
	if err := d.ready(); err != nil {
		return err
	}

	setting := models.Setting{
		Profile: d.profile,
		Key:     models.NormalizeKey(key),
		Value:   value,
	}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("save setting %q: %w: %w", key, ErrUnavailable, err)
	}
	return nil
}

func (d *Database) Delete(ctx context.Context, key string) error {
	if err := d.ready(); err != nil {
		return err
	}

	err := d.db.WithContext(ctx).
		Where(d.conditions(key)).
		Delete(&models.Setting{}).Error
	if err != nil {
		return fmt.Errorf("delete setting %q: %w: %w", key, ErrUnavailable, err)
	}
	return nil
}
