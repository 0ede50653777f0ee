package models

import "testing"

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"already normal", KeyTheme, KeyTheme},
		{"trims", "  testimonials ", KeyTestimonials},
		{"lowers", "NAV:Active", KeyActiveSection},
		{"empty", "   ", ""},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeKey(tt.value); got != tt.want {
				t.Fatalf("NormalizeKey(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
