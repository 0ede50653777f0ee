package models

import (
	"strings"
	"time"
)

// Keys under which visitor state is persisted.
const (
	KeyTheme         = "theme"
	KeyTestimonials  = "testimonials"
	KeyActiveSection = "nav:active"
	KeyMenuOpen      = "nav:menu"
)

// Setting is one persisted value belonging to a visitor profile.
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Profile   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_settings_profile_key" json:"profile"`
	Key       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_settings_profile_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeKey trims and lower-cases a setting key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
