// Package theme owns the visitor's light/dark preference.
package theme

import "strings"

// Preference is the visitor's colour scheme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"

	// Default applies when nothing valid has been persisted.
	Default = Light
)

// Parse recognises a persisted or submitted preference value.
func Parse(value string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return Default, false
	}
}

// Flip returns the other preference. Anything that is not Dark flips to Dark.
func (p Preference) Flip() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) String() string {
	return string(p)
}
