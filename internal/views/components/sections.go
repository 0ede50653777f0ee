package components

import (
	"strconv"

	"github.com/a-h/templ"

	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/internal/views/markup"
)

func openSection(h *markup.Writer, id tracker.SectionID, class string) {
	h.Open("section", "id", string(id), "data-section", string(id), "class", markup.Classes("py-20 scroll-mt-[100px]", class))
	h.Raw(`<div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">`)
}

func closeSection(h *markup.Writer) {
	h.Raw("</div>")
	h.Close("section")
}

func sectionHeading(h *markup.Writer, title, summary string, palette theme.Palette) {
	h.Raw(`<div class="text-center mb-16">`)
	h.Element("h2", title, "class", "text-4xl font-bold bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent mb-4")
	if summary != "" {
		h.Element("p", summary, "class", markup.Classes("text-xl max-w-3xl mx-auto", palette.MutedTextClass))
	}
	h.Raw("</div>")
}

// Hero renders the landing section. All descriptions are rendered; the page
// script shows them in turn, starting at index.
func Hero(profile content.Profile, hero content.Hero, index int, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Home, "min-h-screen flex items-center justify-center text-center")
		h.Open("h1", "class", "text-4xl sm:text-5xl md:text-6xl font-extrabold mb-6")
		h.Text(hero.Greeting + " ")
		h.Element("span", profile.Name, "class", "text-transparent bg-clip-text bg-gradient-to-r from-blue-600 to-purple-600")
		h.Close("h1")

		period := hero.Rotation
		if period <= 0 {
			period = content.DefaultRotation
		}
		h.Open("p", "class", markup.Classes("text-xl md:text-2xl mb-8", palette.MutedTextClass),
			"data-rotate", "true", "data-period", strconv.FormatInt(period.Milliseconds(), 10))
		for i, description := range hero.Descriptions {
			attrs := []string{"data-rotate-item", strconv.Itoa(i)}
			if i != index%max(len(hero.Descriptions), 1) {
				attrs = append(attrs, "hidden", "hidden")
			}
			h.Element("span", description, attrs...)
		}
		h.Close("p")

		h.Raw(`<div class="flex flex-wrap justify-center gap-3 mt-6">`)
		for _, action := range hero.Actions {
			h.Element("a", action.Label, "href", action.Href,
				"class", markup.Classes("px-4 py-2 rounded-md text-sm font-medium border", palette.BorderClass))
		}
		h.Raw("</div>")
		closeSection(h)
	})
}

// About renders the biography and highlight cards.
func About(about content.About, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.About, palette.SurfaceClass)
		sectionHeading(h, about.Title, about.Summary, palette)
		h.Raw(`<div class="grid lg:grid-cols-2 gap-12 items-center"><div class="space-y-6">`)
		for _, paragraph := range about.Paragraphs {
			h.Element("p", paragraph, "class", "leading-relaxed")
		}
		if about.Quote != "" {
			h.Element("blockquote", "“"+about.Quote+"”", "class", "border-l-4 border-blue-500 pl-4 italic")
		}
		h.Raw(`</div><div class="grid grid-cols-2 gap-6">`)
		for _, item := range about.Highlights {
			h.Open("div", "class", markup.Classes("p-6 rounded-xl", palette.SurfaceAltClass))
			h.Element("h3", item.Title, "class", "font-semibold mb-2")
			h.Element("p", item.Description, "class", markup.Classes("text-sm", palette.MutedTextClass))
			h.Close("div")
		}
		h.Raw("</div></div>")
		closeSection(h)
	})
}

// Education renders the timeline.
func Education(entries []content.Education, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Education, palette.SurfaceAltClass)
		sectionHeading(h, "Education", "My academic journey and learning milestones", palette)
		h.Raw(`<ol class="space-y-12 border-l-2 border-blue-500 pl-8">`)
		for _, entry := range entries {
			h.Open("li", "class", markup.Classes("rounded-xl p-6 shadow-lg", palette.SurfaceClass), "data-current", strconv.FormatBool(entry.Current))
			h.Element("h3", entry.Degree, "class", "text-xl font-bold mb-2")
			h.Element("p", entry.Institution, "class", markup.Classes("text-lg font-semibold mb-1", palette.AccentTextClass))
			if entry.Current {
				h.Element("span", "Current", "class", "px-3 py-1 bg-gradient-to-r from-blue-500 to-purple-500 text-white text-sm rounded-full")
			}
			h.Open("p", "class", markup.Classes("flex flex-wrap gap-4 text-sm my-3", palette.MutedTextClass))
			h.Element("span", entry.Period)
			h.Element("span", entry.Location)
			h.Element("span", entry.Grade, "class", "font-semibold")
			h.Close("p")
			h.Element("p", entry.Description)
			h.Close("li")
		}
		h.Raw("</ol>")
		closeSection(h)
	})
}

// Skills renders the skill categories with level bars.
func Skills(categories []content.SkillCategory, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Skills, palette.SurfaceClass)
		sectionHeading(h, "Skills & Expertise", "Technologies and tools I work with to bring ideas to life", palette)
		h.Raw(`<div class="grid md:grid-cols-2 lg:grid-cols-4 gap-8">`)
		for _, category := range categories {
			h.Open("div", "class", markup.Classes("rounded-2xl p-6", palette.SurfaceAltClass))
			h.Element("h3", category.Title, "class", "text-xl font-bold mb-6")
			for _, skill := range category.Skills {
				level := strconv.Itoa(skill.Level) + "%"
				h.Raw(`<div class="mb-4"><div class="flex justify-between text-sm mb-2">`)
				h.Element("span", skill.Name)
				h.Element("span", level, "class", palette.MutedTextClass)
				h.Raw(`</div><div class="h-2 rounded-full bg-slate-200">`)
				h.Open("div", "class", "h-2 rounded-full bg-gradient-to-r from-blue-500 to-purple-500", "style", "width: "+level)
				h.Raw("</div></div></div>")
			}
			h.Close("div")
		}
		h.Raw("</div>")
		closeSection(h)
	})
}

// Projects renders the project cards.
func Projects(projects []content.Project, profileURL string, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Projects, palette.SurfaceAltClass)
		sectionHeading(h, "Projects", "Innovative solutions I've built to solve real-world problems", palette)
		h.Raw(`<div class="grid md:grid-cols-2 lg:grid-cols-3 gap-8">`)
		for _, project := range projects {
			h.Open("article", "class", markup.Classes("rounded-2xl p-6 shadow-lg", palette.SurfaceClass))
			h.Element("span", project.Category, "class", "px-3 py-1 bg-gradient-to-r from-blue-500 to-purple-500 text-white text-xs rounded-full")
			h.Element("h3", project.Title, "class", "text-xl font-bold my-3")
			h.Element("p", project.Description, "class", markup.Classes("mb-4", palette.MutedTextClass))
			h.Raw(`<div class="flex flex-wrap gap-2 mb-6">`)
			for _, tech := range project.Technologies {
				h.Element("span", tech, "class", markup.Classes("px-2 py-1 text-xs rounded-md", palette.SurfaceAltClass))
			}
			h.Raw("</div>")
			if project.Repository != "" {
				h.Element("a", "Code", "href", project.Repository, "target", "_blank", "rel", "noopener noreferrer",
					"class", "block text-center px-4 py-2 rounded-lg text-white bg-gradient-to-r from-blue-600 to-purple-600")
			}
			h.Close("article")
		}
		h.Raw("</div>")
		if profileURL != "" {
			h.Raw(`<div class="text-center mt-12">`)
			h.Element("a", "View More Projects on GitHub", "href", profileURL, "target", "_blank", "rel", "noopener noreferrer",
				"class", "inline-flex px-8 py-3 rounded-lg text-white bg-slate-800")
			h.Raw("</div>")
		}
		closeSection(h)
	})
}

// Certifications renders the certificate cards.
func Certifications(certs []content.Certification, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Certifications, palette.SurfaceClass)
		sectionHeading(h, "Certifications", "Courses and programmes I have completed", palette)
		h.Raw(`<div class="grid md:grid-cols-2 gap-8">`)
		for _, cert := range certs {
			h.Open("article", "class", markup.Classes("rounded-2xl p-6", palette.SurfaceAltClass))
			h.Element("h3", cert.Title, "class", "text-lg font-bold")
			h.Element("p", cert.Issuer+" · "+cert.Year, "class", markup.Classes("text-sm mb-3", palette.AccentTextClass))
			if cert.Verified {
				h.Element("span", "Verified", "class", "text-xs text-green-600", "data-verified", "true")
			}
			h.Element("p", cert.Description, "class", markup.Classes("my-3", palette.MutedTextClass))
			h.Raw(`<div class="flex flex-wrap gap-2">`)
			for _, skill := range cert.Skills {
				h.Element("span", skill, "class", markup.Classes("px-2 py-1 text-xs rounded-md", palette.SurfaceClass))
			}
			h.Raw("</div>")
			h.Close("article")
		}
		h.Raw("</div>")
		closeSection(h)
	})
}

// Resume renders the download card. Without a resume file the link is
// replaced by a note.
func Resume(resume content.Resume, info content.ResumeInfo, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Resume, palette.SurfaceAltClass)
		sectionHeading(h, resume.Title, resume.Summary, palette)
		h.Open("div", "class", markup.Classes("max-w-xl mx-auto text-center rounded-2xl p-8 shadow-lg", palette.SurfaceClass))
		if info.Available() {
			pages := "1 page"
			if info.Pages != 1 {
				pages = strconv.Itoa(info.Pages) + " pages"
			}
			h.Element("p", pages+" · "+strconv.FormatInt((info.Size+1023)/1024, 10)+" KB", "class", markup.Classes("mb-6", palette.MutedTextClass), "data-pages", strconv.Itoa(info.Pages))
			h.Element("a", "Download CV", "href", "/resume.pdf", "download", resume.FileName,
				"class", "inline-flex px-6 py-3 rounded-lg text-white bg-gradient-to-r from-blue-600 to-purple-600")
		} else {
			h.Element("p", "The resume is not available right now.", "class", palette.MutedTextClass)
		}
		h.Close("div")
		closeSection(h)
	})
}

// TestimonialsSection wraps the testimonials panel in its page section.
func TestimonialsSection(data TestimonialsData) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Testimonials, data.Palette.SurfaceClass)
		sectionHeading(h, "Testimonials", "What people say about working with me", data.Palette)
		h.Render(Testimonials(data))
		closeSection(h)
	})
}

// ContactSection renders contact details, social links and the form.
func ContactSection(c content.Contact, socials []content.Link, form ContactFormData) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		openSection(h, tracker.Contact, form.Palette.SurfaceAltClass)
		sectionHeading(h, c.Title, c.Summary, form.Palette)
		h.Raw(`<div class="grid lg:grid-cols-2 gap-12"><div class="space-y-6">`)
		for _, info := range c.Info {
			h.Raw(`<div class="flex flex-col">`)
			h.Element("span", info.Label, "class", markup.Classes("text-sm", form.Palette.MutedTextClass))
			if info.Href != "" {
				h.Element("a", info.Value, "href", info.Href, "class", "font-semibold")
			} else {
				h.Element("span", info.Value, "class", "font-semibold")
			}
			h.Raw("</div>")
		}
		socialLinks(h, socials)
		h.Raw("</div><div>")
		h.Render(ContactForm(form))
		h.Raw("</div></div>")
		closeSection(h)
	})
}

func socialLinks(h *markup.Writer, socials []content.Link) {
	h.Raw(`<div class="flex gap-3">`)
	for _, social := range socials {
		h.Element("a", social.Label, "href", social.Href, "target", "_blank", "rel", "noopener noreferrer",
			"class", "px-3 py-2 rounded-full bg-slate-700 text-white text-sm")
	}
	h.Raw("</div>")
}

// Footer renders the closing band with quick links.
func Footer(c *content.Content, year int) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Raw(`<footer class="bg-gradient-to-tr from-slate-900 via-slate-800 to-slate-950 text-white"><div class="max-w-7xl mx-auto px-4 pt-20 pb-12"><div class="grid md:grid-cols-3 gap-12"><div>`)
		h.Element("h2", c.Profile.Name, "class", "text-2xl font-bold mb-4")
		h.Element("p", c.Footer.Blurb, "class", "text-slate-400 mb-6 leading-relaxed")
		socialLinks(h, c.Socials)
		h.Raw(`</div><div>`)
		h.Element("h4", "Quick Links", "class", "text-xl font-semibold mb-4")
		h.Raw(`<ul class="space-y-3">`)
		for _, id := range c.Footer.Sections() {
			h.Raw("<li>")
			h.Element("a", nav.Label(id), "href", id.Anchor(), "class", "text-slate-400 hover:text-white")
			h.Raw("</li>")
		}
		h.Raw(`</ul></div><div>`)
		h.Element("h4", "Reach Me", "class", "text-xl font-semibold mb-4")
		for _, info := range c.Contact.Info {
			h.Element("p", info.Value, "class", "text-slate-400 mb-2")
		}
		h.Raw(`</div></div><div class="border-t border-slate-700 mt-12 pt-6 text-center">`)
		h.Element("p", "© "+strconv.Itoa(year)+" "+c.Profile.Name+". All rights reserved. "+c.Footer.Tagline, "class", "text-xs text-slate-500")
		h.Raw("</div></div></footer>")
	})
}
