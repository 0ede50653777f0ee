package components

import (
	"github.com/a-h/templ"

	"folio/internal/theme"
	"folio/internal/views/markup"
)

var icons = map[string]string{
	"moon": `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/></svg>`,
	"sun":  `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="4"/><path d="M12 2v2M12 20v2M4.93 4.93l1.41 1.41M17.66 17.66l1.41 1.41M2 12h2M20 12h2M6.34 17.66l-1.41 1.41M19.07 4.93l-1.41 1.41"/></svg>`,
}

// ThemeToggle renders the floating button that flips the colour scheme. It
// works as a plain form post and is upgraded by htmx to swap itself.
func ThemeToggle(palette theme.Palette) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Open("form",
			"id", "theme-toggle",
			"method", "post",
			"action", "/theme/toggle",
			"class", "fixed bottom-6 right-6 z-50",
			"hx-post", "/theme/toggle",
			"hx-swap", "outerHTML",
		)
		h.Open("button",
			"type", "submit",
			"class", markup.Classes("p-3 rounded-full shadow-lg border", palette.SurfaceClass, palette.BorderClass, palette.AccentTextClass),
			"aria-label", palette.ToggleLabel,
			"title", palette.ToggleLabel,
			"data-theme", palette.Key.String(),
		)
		h.Raw(icons[palette.Icon])
		h.Close("button")
		h.Close("form")
	})
}
