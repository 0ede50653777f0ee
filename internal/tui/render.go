package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/testimonials"
	"folio/internal/tracker"
)

// span is the line range [start, end) a section occupies in the document.
type span struct {
	id    tracker.SectionID
	start int
	end   int
}

// document is the rendered portfolio and where each section landed.
type document struct {
	text  string
	spans []span
	lines int
}

func (d document) find(id tracker.SectionID) (span, bool) {
	for _, s := range d.spans {
		if s.id == id {
			return s, true
		}
	}
	return span{}, false
}

type page struct {
	content      *content.Content
	testimonials []testimonials.Testimonial
	hero         string
	styles       styles
	width        int
	// padding keeps the last section scrollable to the top of the viewport.
	padding int
}

func (p page) render() document {
	width := p.width
	if width < 20 {
		width = 20
	}
	sections := []struct {
		id   tracker.SectionID
		body func(int) string
	}{
		{tracker.Home, p.home},
		{tracker.About, p.about},
		{tracker.Education, p.education},
		{tracker.Skills, p.skills},
		{tracker.Projects, p.projects},
		{tracker.Certifications, p.certifications},
		{tracker.Resume, p.resume},
		{tracker.Testimonials, p.testimonialList},
		{tracker.Contact, p.contact},
	}

	var b strings.Builder
	doc := document{spans: make([]span, 0, len(sections))}
	line := 0
	for _, section := range sections {
		block := p.styles.title.Render(nav.Label(section.id)) + "\n" + section.body(width) + "\n"
		height := lipgloss.Height(block)
		doc.spans = append(doc.spans, span{id: section.id, start: line, end: line + height})
		line += height
		b.WriteString(block)
		b.WriteString("\n")
	}
	b.WriteString(p.styles.muted.Render(p.content.Footer.Tagline))
	line++
	if p.padding > 0 {
		b.WriteString(strings.Repeat("\n", p.padding))
		line += p.padding
	}
	doc.text = b.String()
	doc.lines = line
	return doc
}

func (p page) wrap(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Render(text)
}

func (p page) home(width int) string {
	c := p.content
	lines := []string{
		p.styles.muted.Render(c.Hero.Greeting),
		p.styles.subtitle.Render(c.Profile.Name),
		p.styles.accent.Render(p.hero),
	}
	if c.Profile.Location != "" {
		lines = append(lines, p.styles.muted.Render(c.Profile.Location))
	}
	return strings.Join(lines, "\n")
}

func (p page) about(width int) string {
	a := p.content.About
	parts := []string{p.wrap(p.styles.body, width, a.Summary)}
	for _, paragraph := range a.Paragraphs {
		parts = append(parts, p.wrap(p.styles.body, width, paragraph))
	}
	for _, h := range a.Highlights {
		parts = append(parts, p.styles.subtitle.Render("• "+h.Title)+" "+p.styles.muted.Render(h.Description))
	}
	return strings.Join(parts, "\n")
}

func (p page) education(width int) string {
	parts := make([]string, 0, len(p.content.Education))
	for _, e := range p.content.Education {
		heading := e.Degree
		if e.Current {
			heading += " (current)"
		}
		entry := p.styles.subtitle.Render(heading) + "\n" +
			p.styles.muted.Render(strings.Join(nonEmpty(e.Institution, e.Period, e.Grade), " · "))
		if e.Description != "" {
			entry += "\n" + p.wrap(p.styles.body, width, e.Description)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "\n")
}

func (p page) skills(width int) string {
	const barWidth = 20
	var parts []string
	for _, category := range p.content.Skills {
		parts = append(parts, p.styles.subtitle.Render(category.Title))
		for _, s := range category.Skills {
			filled := s.Level * barWidth / 100
			bar := p.styles.bar.Render(strings.Repeat("█", filled)) +
				p.styles.barEmpty.Render(strings.Repeat("░", barWidth-filled))
			parts = append(parts, fmt.Sprintf("  %-22s %s %3d%%", s.Name, bar, s.Level))
		}
	}
	return strings.Join(parts, "\n")
}

func (p page) projects(width int) string {
	parts := make([]string, 0, len(p.content.Projects))
	for _, project := range p.content.Projects {
		entry := p.styles.subtitle.Render(project.Title)
		if project.Category != "" {
			entry += " " + p.styles.muted.Render("["+project.Category+"]")
		}
		entry += "\n" + p.wrap(p.styles.body, width, project.Description)
		if len(project.Technologies) > 0 {
			entry += "\n" + p.styles.accent.Render(strings.Join(project.Technologies, " · "))
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "\n")
}

func (p page) certifications(width int) string {
	parts := make([]string, 0, len(p.content.Certifications))
	for _, cert := range p.content.Certifications {
		heading := cert.Title
		if cert.Verified {
			heading += " ✓"
		}
		parts = append(parts, p.styles.subtitle.Render(heading)+"\n"+
			p.styles.muted.Render(strings.Join(nonEmpty(cert.Issuer, cert.Year), " · ")))
	}
	return strings.Join(parts, "\n")
}

func (p page) resume(width int) string {
	r := p.content.Resume
	return p.wrap(p.styles.body, width, r.Summary) + "\n" +
		p.styles.muted.Render("Download: /resume.pdf ("+r.FileName+")")
}

func (p page) testimonialList(width int) string {
	if len(p.testimonials) == 0 {
		return p.styles.muted.Render("No testimonials yet. Add one with `folio testimonials add`.")
	}
	parts := make([]string, 0, len(p.testimonials))
	for _, t := range p.testimonials {
		var stars strings.Builder
		for _, filled := range t.Stars() {
			if filled {
				stars.WriteString("★")
			} else {
				stars.WriteString("☆")
			}
		}
		parts = append(parts, p.styles.star.Render(stars.String())+" "+p.styles.muted.Render(t.Date)+"\n"+
			p.wrap(p.styles.body, width, "“"+t.Review+"”")+"\n"+
			p.styles.subtitle.Render(t.Name)+" "+p.styles.muted.Render(t.Role))
	}
	return strings.Join(parts, "\n")
}

func (p page) contact(width int) string {
	c := p.content.Contact
	parts := []string{p.wrap(p.styles.body, width, c.Summary)}
	for _, info := range c.Info {
		parts = append(parts, fmt.Sprintf("%s %s", p.styles.subtitle.Render(info.Label+":"), info.Value))
	}
	for _, social := range p.content.Socials {
		parts = append(parts, fmt.Sprintf("%s %s", p.styles.subtitle.Render(social.Label+":"), p.styles.accent.Render(social.Href)))
	}
	return strings.Join(parts, "\n")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
