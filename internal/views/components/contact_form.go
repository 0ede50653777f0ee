package components

import (
	"fmt"
	"time"

	"github.com/a-h/templ"

	"folio/internal/contact"
	"folio/internal/theme"
	"folio/internal/views/markup"
)

// ContactFormData drives the contact form fragment.
type ContactFormData struct {
	State       contact.State
	Values      contact.Input
	Errors      map[string]string
	RevertAfter time.Duration
	Palette     theme.Palette
}

// ContactForm renders the form for its current state. In the submitted state
// the fragment asks the server for a fresh form once the success window ends.
func ContactForm(data ContactFormData) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		attrs := []string{
			"id", "contact-form",
			"method", "post",
			"action", "/contact",
			"class", markup.Classes("space-y-6 rounded-2xl p-8 shadow-lg", data.Palette.SurfaceClass),
			"data-state", data.State.String(),
			"hx-post", "/contact",
			"hx-swap", "outerHTML",
		}
		if data.State == contact.Submitted {
			attrs = append(attrs,
				"hx-get", "/contact",
				"hx-trigger", fmt.Sprintf("load delay:%dms", revertDelay(data.RevertAfter).Milliseconds()),
			)
		}
		h.Open("form", attrs...)
		h.Element("h3", "Send Message", "class", "text-2xl font-bold")

		contactField(h, "Name", "from_name", "text", "Your full name", data.Values.Name, data.Errors["from_name"])
		contactField(h, "Email", "from_email", "email", "your.email@example.com", data.Values.Email, data.Errors["from_email"])

		h.Raw("<div>")
		h.Element("label", "Message", "for", "contact-message", "class", "block text-sm font-medium mb-2")
		h.Open("textarea", "id", "contact-message", "name", "message", "rows", "5", "required", "required",
			"placeholder", "Tell me about your project or just say hello...",
			"class", "w-full rounded-lg border px-4 py-3 text-slate-900")
		h.Text(data.Values.Message)
		h.Close("textarea")
		fieldError(h, data.Errors["message"])
		h.Raw("</div>")

		switch data.State {
		case contact.Submitting:
			h.Element("button", "Sending…", "type", "submit", "disabled", "disabled", "aria-busy", "true",
				"class", "w-full px-6 py-3 rounded-lg font-semibold text-white bg-gradient-to-r from-blue-600 to-purple-600 opacity-70")
		case contact.Submitted:
			h.Element("button", "✅ Message Sent!", "type", "submit", "disabled", "disabled",
				"class", "w-full px-6 py-3 rounded-lg font-semibold text-white bg-green-500")
		default:
			h.Element("button", "Send Message", "type", "submit",
				"class", "w-full px-6 py-3 rounded-lg font-semibold text-white bg-gradient-to-r from-blue-600 to-purple-600")
		}
		h.Close("form")
	})
}

func revertDelay(d time.Duration) time.Duration {
	if d <= 0 {
		return contact.RevertAfter
	}
	return d
}

func contactField(h *markup.Writer, label, name, kind, placeholder, value, problem string) {
	id := "contact-" + name
	h.Raw("<div>")
	h.Element("label", label, "for", id, "class", "block text-sm font-medium mb-2")
	h.Open("input", "id", id, "type", kind, "name", name, "value", value, "placeholder", placeholder,
		"required", "required", "class", "w-full rounded-lg border px-4 py-3 text-slate-900")
	fieldError(h, problem)
	h.Raw("</div>")
}
