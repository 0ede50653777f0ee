// Package components holds the interactive fragments of the portfolio that
// handlers swap in and out with htmx.
package components

import (
	"github.com/a-h/templ"

	"folio/internal/nav"
	"folio/internal/theme"
	"folio/internal/views/markup"
)

// NavigationData drives the navigation bar.
type NavigationData struct {
	Brand    string
	Links    []nav.Link
	MenuOpen bool
	Palette  theme.Palette
}

func linkClass(link nav.Link, palette theme.Palette) string {
	if link.Active {
		return markup.Classes("px-3 py-2 rounded-md text-sm font-medium", palette.AccentTextClass)
	}
	return markup.Classes("px-3 py-2 rounded-md text-sm font-medium hover:opacity-80", palette.MutedTextClass)
}

// Navigation renders the fixed bar, with the active section highlighted and
// the mobile overlay when open.
func Navigation(data NavigationData) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Open("nav",
			"id", "navigation",
			"class", markup.Classes("fixed top-0 inset-x-0 z-40 h-[100px] flex items-center border-b backdrop-blur", data.Palette.SurfaceClass, data.Palette.BorderClass),
			"data-menu", nav.State(data.MenuOpen),
		)
		h.Raw(`<div class="max-w-7xl mx-auto w-full px-4 flex items-center justify-between">`)
		h.Element("a", data.Brand, "href", "#home", "class", "text-xl font-bold bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent")

		h.Raw(`<div class="hidden md:flex gap-1">`)
		for _, link := range data.Links {
			h.Element("a", link.Label,
				"href", link.Href(),
				"class", linkClass(link, data.Palette),
				"data-nav-section", string(link.Section),
				"data-state", link.State(),
			)
		}
		h.Raw("</div>")

		h.Open("form", "method", "post", "action", "/nav/menu", "class", "md:hidden",
			"hx-post", "/nav/menu", "hx-target", "#navigation", "hx-swap", "outerHTML")
		label := "Open menu"
		if data.MenuOpen {
			label = "Close menu"
		}
		h.Element("button", label, "type", "submit", "name", "menu", "aria-expanded", boolString(data.MenuOpen), "class", "p-2 rounded-md")
		h.Close("form")
		h.Raw("</div>")

		if data.MenuOpen {
			h.Open("div", "id", "mobile-menu", "class", markup.Classes("md:hidden absolute top-[100px] inset-x-0 border-b", data.Palette.SurfaceClass, data.Palette.BorderClass))
			for _, link := range data.Links {
				h.Element("a", link.Label,
					"href", link.Href(),
					"class", markup.Classes("block", linkClass(link, data.Palette)),
					"data-nav-section", string(link.Section),
					"data-state", link.State(),
					"hx-post", "/nav/menu",
					"hx-vals", `{"select":"`+string(link.Section)+`"}`,
					"hx-target", "#navigation",
					"hx-swap", "outerHTML",
				)
			}
			h.Raw("</div>")
		}
		h.Close("nav")
	})
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
