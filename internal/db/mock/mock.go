package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "folio/internal/log"
	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/models"
)

// DemoProfile owns the seeded settings rows.
const DemoProfile = "demo"

var instances atomic.Int64

// New returns an in-memory sqlite database with the settings schema and a
// demo visitor profile. Every call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:folio-mock-%d?mode=memory&cache=shared", instances.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database", "profile", DemoProfile)

	encoded, err := testimonials.Encode([]testimonials.Testimonial{
		{
			ID:     "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6b",
			Name:   "Priya Raman",
			Role:   "Research Mentor",
			Review: "Thoughtful engineer who turns rough ideas into working models.",
			Rating: 5,
			Date:   "Mar 4, 2025",
		},
	})
	if err != nil {
		return err
	}

	settings := []models.Setting{
		{Profile: DemoProfile, Key: models.KeyTheme, Value: theme.Dark.String()},
		{Profile: DemoProfile, Key: models.KeyTestimonials, Value: encoded},
		{Profile: DemoProfile, Key: models.KeyActiveSection, Value: "about"},
	}
	return db.WithContext(ctx).Create(&settings).Error
}
