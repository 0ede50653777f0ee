package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"folio/internal/content"
	"folio/internal/contact"
	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/internal/views/components"
)

func renderPortfolio(t *testing.T, data PortfolioData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Portfolio(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render portfolio: %v", err)
	}
	return buf.String()
}

func TestPortfolioRendersEverySection(t *testing.T) {
	t.Parallel()

	out := renderPortfolio(t, PortfolioData{
		Content: content.Default(),
		Palette: theme.Resolve(theme.Light),
		Active:  tracker.Home,
		Year:    2026,
	})

	for _, id := range tracker.DefaultSections {
		if !strings.Contains(out, `<section id="`+string(id)+`" data-section="`+string(id)+`"`) {
			t.Fatalf("expected section %q in output", id)
		}
	}
	for _, token := range []string{"Jishnu S", "Face Liveness Detection", "No testimonials yet", "Send Message", "© 2026"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q", token)
		}
	}
}

func TestPortfolioHighlightsActiveSection(t *testing.T) {
	t.Parallel()

	out := renderPortfolio(t, PortfolioData{
		Content: content.Default(),
		Palette: theme.Resolve(theme.Dark),
		Active:  tracker.Skills,
	})
	if !strings.Contains(out, `data-nav-section="skills" data-state="active"`) {
		t.Fatalf("expected skills link to be active")
	}
	if strings.Contains(out, `data-nav-section="home" data-state="active"`) {
		t.Fatalf("expected home link to be inactive")
	}
	if !strings.Contains(out, `<html lang="en" class="dark"`) {
		t.Fatalf("expected dark palette on the document")
	}
}

func TestPortfolioRendersTestimonialsAndContactState(t *testing.T) {
	t.Parallel()

	out := renderPortfolio(t, PortfolioData{
		Content: content.Default(),
		Palette: theme.Resolve(theme.Light),
		Testimonials: components.TestimonialsData{Items: []testimonials.Testimonial{{
			ID: "1", Name: "Ada", Role: "Engineer", Review: "Great work", Rating: 4, Date: "Jan 2, 2026",
		}}},
		Contact: components.ContactFormData{State: contact.Submitted},
	})
	if !strings.Contains(out, "Great work") || strings.Contains(out, "No testimonials yet") {
		t.Fatalf("expected the testimonial instead of the empty state")
	}
	if !strings.Contains(out, "Message Sent!") {
		t.Fatalf("expected submitted contact state")
	}
}
