package handlers

import (
	"net/http"
	"strings"

	applog "folio/internal/log"
	"folio/internal/theme"
	"folio/internal/views/components"
)

type themeResponse struct {
	Theme      string `json:"theme"`
	Persistent bool   `json:"persistent"`
}

type themeChanged struct {
	Theme     string            `json:"theme"`
	HTMLClass string            `json:"htmlClass"`
	BodyClass string            `json:"bodyClass"`
	Swap      map[string]string `json:"swap"`
}

// ToggleTheme flips the visitor's colour scheme. A "theme" form value sets
// it explicitly instead. HTMX requests get the toggle button back together
// with a theme-changed event; plain form posts are redirected to the page.
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse theme form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	store := theme.NewStore(ctx, visitorStorage(r))
	before := store.Get()

	var pref theme.Preference
	if value := strings.TrimSpace(r.PostFormValue("theme")); value != "" {
		chosen, ok := theme.Parse(value)
		if !ok {
			applog.Debug(ctx, "received invalid theme selection", "value", value)
			http.Error(w, "invalid theme selection", http.StatusBadRequest)
			return
		}
		pref = store.Set(ctx, chosen)
	} else {
		pref = store.Toggle(ctx)
	}
	palette := theme.Resolve(pref)
	applog.Debug(ctx, "theme updated", "theme", pref.String(), "persistent", store.Persistent())

	switch {
	case wantsJSON(r):
		writeJSON(w, r, http.StatusOK, themeResponse{Theme: pref.String(), Persistent: store.Persistent()})
	case isHTMX(r):
		trigger(w, r, "theme-changed", themeChanged{
			Theme:     pref.String(),
			HTMLClass: palette.HTMLClass,
			BodyClass: palette.BodyClass,
			Swap:      theme.ClassSwaps(theme.Resolve(before), palette),
		})
		renderComponent(w, r, http.StatusOK, components.ThemeToggle(palette))
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
