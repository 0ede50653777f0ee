// Package pages assembles full documents from the layout and components.
package pages

import (
	"github.com/a-h/templ"

	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/internal/views/components"
	"folio/internal/views/layout"
	"folio/internal/views/markup"
)

// PortfolioData is everything the portfolio page shows for one visitor.
type PortfolioData struct {
	Content      *content.Content
	Palette      theme.Palette
	Active       tracker.SectionID
	MenuOpen     bool
	HeroIndex    int
	Testimonials components.TestimonialsData
	Contact      components.ContactFormData
	Resume       content.ResumeInfo
	Year         int
}

// NavigationData derives the navigation bar state from the page data.
func (d PortfolioData) NavigationData() components.NavigationData {
	return components.NavigationData{
		Brand:    d.Content.Profile.Name,
		Links:    nav.Links(d.Active),
		MenuOpen: d.MenuOpen,
		Palette:  d.Palette,
	}
}

func profileURL(c *content.Content) string {
	for _, social := range c.Socials {
		if social.Label == "GitHub" {
			return social.Href
		}
	}
	return ""
}

// Portfolio renders the single-page portfolio.
func Portfolio(data PortfolioData) templ.Component {
	c := data.Content
	head := layout.Head{
		Title:       c.Profile.Name + " | " + c.Profile.Headline,
		Description: c.About.Summary,
	}
	data.Testimonials.Palette = data.Palette
	data.Contact.Palette = data.Palette

	body := markup.Component(func(h *markup.Writer) {
		h.Render(components.ThemeToggle(data.Palette))
		h.Render(components.Navigation(data.NavigationData()))
		h.Raw(`<main class="pt-[100px]">`)
		h.Render(components.Hero(c.Profile, c.Hero, data.HeroIndex, data.Palette))
		h.Render(components.About(c.About, data.Palette))
		h.Render(components.Education(c.Education, data.Palette))
		h.Render(components.Skills(c.Skills, data.Palette))
		h.Render(components.Projects(c.Projects, profileURL(c), data.Palette))
		h.Render(components.Certifications(c.Certifications, data.Palette))
		h.Render(components.Resume(c.Resume, data.Resume, data.Palette))
		h.Render(components.TestimonialsSection(data.Testimonials))
		h.Render(components.ContactSection(c.Contact, c.Socials, data.Contact))
		h.Raw("</main>")
		h.Render(components.Footer(c, data.Year))
	})
	return layout.Page(head, data.Palette, body)
}
