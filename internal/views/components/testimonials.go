package components

import (
	"strconv"

	"github.com/a-h/templ"

	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/internal/views/markup"
)

// TestimonialForm is the state of the submission form. Values survive a
// failed validation so the visitor does not retype them.
type TestimonialForm struct {
	Name   string
	Role   string
	Review string
	Rating int
	Errors map[string]string
}

func (f TestimonialForm) rating() int {
	if f.Rating < 1 || f.Rating > 5 {
		return 5
	}
	return f.Rating
}

// TestimonialsData drives the testimonials panel.
type TestimonialsData struct {
	Items   []testimonials.Testimonial
	Form    TestimonialForm
	Notice  string
	Palette theme.Palette
}

// Testimonials renders the review list, its empty state and the form.
func Testimonials(data TestimonialsData) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Open("div", "id", "testimonials-panel", "data-count", strconv.Itoa(len(data.Items)))
		if data.Notice != "" {
			h.Element("p", data.Notice, "class", "mb-6 text-center text-sm text-amber-600", "role", "status")
		}
		if len(data.Items) == 0 {
			h.Element("p", "No testimonials yet. Be the first to share your experience!",
				"class", markup.Classes("text-center py-12", data.Palette.MutedTextClass), "data-empty", "true")
		} else {
			h.Raw(`<div class="grid md:grid-cols-2 lg:grid-cols-3 gap-8 mb-12">`)
			for _, item := range data.Items {
				h.Render(TestimonialCard(item, data.Palette))
			}
			h.Raw("</div>")
		}
		h.Render(testimonialForm(data.Form, data.Palette))
		h.Close("div")
	})
}

// TestimonialCard renders one review.
func TestimonialCard(item testimonials.Testimonial, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Open("article", "class", markup.Classes("rounded-2xl p-6", palette.SurfaceAltClass), "data-testimonial", item.ID)
		h.Open("div", "class", "flex gap-1 mb-2", "aria-label", strconv.Itoa(item.Rating)+" out of 5")
		for _, filled := range item.Stars() {
			if filled {
				h.Raw(`<span class="text-yellow-400" data-star="filled">★</span>`)
			} else {
				h.Raw(`<span class="text-slate-300" data-star="empty">☆</span>`)
			}
		}
		h.Close("div")
		h.Element("p", "“"+item.Review+"”", "class", "italic mb-4")
		h.Element("h4", item.Name, "class", "font-semibold")
		h.Element("p", item.Role, "class", markup.Classes("text-sm", palette.MutedTextClass))
		h.Element("p", item.Date, "class", "text-xs mt-1 opacity-70")
		h.Close("article")
	})
}

func testimonialForm(form TestimonialForm, palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Open("form",
			"id", "testimonial-form",
			"method", "post",
			"action", "/testimonials",
			"class", markup.Classes("max-w-md mx-auto space-y-4 rounded-2xl p-6 border", palette.SurfaceClass, palette.BorderClass),
			"hx-post", "/testimonials",
			"hx-target", "#testimonials-panel",
			"hx-swap", "outerHTML",
		)
		h.Element("h3", "Add Testimonial", "class", "text-xl font-bold")
		inputField(h, "Name", "name", "text", form.Name, form.Errors["name"])
		inputField(h, "Role", "role", "text", form.Role, form.Errors["role"])

		h.Raw(`<fieldset><legend class="block text-sm font-medium mb-2">Rating</legend><div class="flex gap-2">`)
		current := form.rating()
		for star := 1; star <= 5; star++ {
			value := strconv.Itoa(star)
			h.Raw(`<label class="cursor-pointer">`)
			attrs := []string{"type", "radio", "name", "rating", "value", value, "class", "sr-only peer"}
			if star == current {
				attrs = append(attrs, "checked", "checked")
			}
			h.Open("input", attrs...)
			h.Raw(`<span class="peer-checked:text-yellow-400">★</span>`)
			h.Raw("</label>")
		}
		h.Raw("</div>")
		fieldError(h, form.Errors["rating"])
		h.Raw("</fieldset>")

		h.Raw(`<div>`)
		h.Element("label", "Review", "for", "testimonial-review", "class", "block text-sm font-medium mb-2")
		h.Open("textarea", "id", "testimonial-review", "name", "review", "rows", "4", "required", "required", "class", "w-full rounded-lg border px-3 py-2 text-slate-900")
		h.Text(form.Review)
		h.Close("textarea")
		fieldError(h, form.Errors["review"])
		h.Raw("</div>")

		h.Element("button", "Submit Testimonial", "type", "submit", "class", "w-full px-4 py-2 rounded-lg text-white bg-gradient-to-r from-blue-600 to-purple-600")
		h.Close("form")
	})
}

func inputField(h *markup.Writer, label, name, kind, value, problem string) {
	id := "field-" + name
	h.Raw("<div>")
	h.Element("label", label, "for", id, "class", "block text-sm font-medium mb-2")
	h.Open("input", "id", id, "type", kind, "name", name, "value", value, "required", "required",
		"class", "w-full rounded-lg border px-3 py-2 text-slate-900")
	fieldError(h, problem)
	h.Raw("</div>")
}

func fieldError(h *markup.Writer, problem string) {
	if problem == "" {
		return
	}
	h.Element("p", problem, "class", "mt-1 text-sm text-red-600", "data-error", "true")
}
