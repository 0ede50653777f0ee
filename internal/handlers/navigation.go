package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	applog "folio/internal/log"
	"folio/internal/nav"
	"folio/internal/storage"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/internal/views/components"
	"folio/models"
)

const maxGeometryBytes = 64 << 10

type geometryRequest struct {
	Sections tracker.Snapshot `json:"sections"`
	Previous string           `json:"previous"`
}

type activeResponse struct {
	Active  tracker.SectionID `json:"active"`
	Changed bool              `json:"changed"`
}

type menuResponse struct {
	Open   bool   `json:"open"`
	Anchor string `json:"anchor,omitempty"`
}

// ActiveSection takes the section geometry measured by the browser on a
// scroll event, runs one tracker pass seeded with the section the browser
// reports as previously active and returns the updated navigation bar.
// Scroll reports arrive while other requests write the session, so the
// handler only reads visitor storage.
func ActiveSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req geometryRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGeometryBytes))
	if err := decoder.Decode(&req); err != nil {
		applog.Debug(r.Context(), "invalid geometry payload", "error", err)
		http.Error(w, "invalid geometry payload", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	store := peekStorage(r)
	previous, ok := tracker.ParseSection(req.Previous, tracker.DefaultSections)
	if !ok {
		previous = storedSection(ctx, store)
	}

	active, err := resolveActive(req.Sections, previous)
	if err != nil {
		applog.Error(ctx, "failed to resolve active section", "error", err)
		http.Error(w, "failed to resolve active section", http.StatusInternalServerError)
		return
	}

	changed := active != previous
	applog.Debug(ctx, "active section resolved", "active", active.String(), "previous", previous.String())

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, activeResponse{Active: active, Changed: changed})
		return
	}
	renderNavigation(w, r, store, active)
}

func resolveActive(snapshot tracker.Snapshot, previous tracker.SectionID) (tracker.SectionID, error) {
	t, err := tracker.New(snapshot.Regions(tracker.DefaultSections), tracker.WithInitial(previous))
	if err != nil {
		return "", err
	}
	defer t.Close()

	var source tracker.Events
	return t.Mount(&source), nil
}

// Menu opens or closes the mobile navigation overlay. A "select" form value
// follows a menu link: the overlay closes and the client scrolls to it.
func Menu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse menu form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	store := visitorStorage(r)
	menu := nav.NewMenu(storedMenuOpen(ctx, store))

	var anchor string
	if value := strings.TrimSpace(r.PostFormValue("select")); value != "" {
		section, ok := tracker.ParseSection(value, tracker.DefaultSections)
		if !ok {
			http.Error(w, "unknown section", http.StatusBadRequest)
			return
		}
		anchor = menu.Select(section)
	} else {
		menu.Toggle()
	}

	if err := store.Set(ctx, models.KeyMenuOpen, strconv.FormatBool(menu.IsOpen())); err != nil {
		applog.Warn(ctx, "failed to store menu state", "error", err)
	}
	applog.Debug(ctx, "menu updated", "open", menu.IsOpen(), "anchor", anchor)

	switch {
	case wantsJSON(r):
		writeJSON(w, r, http.StatusOK, menuResponse{Open: menu.IsOpen(), Anchor: anchor})
	case isHTMX(r):
		if anchor != "" {
			trigger(w, r, "nav-select", map[string]string{"anchor": anchor})
		}
		renderNavigation(w, r, store, storedSection(ctx, store))
	default:
		http.Redirect(w, r, "/"+anchor, http.StatusSeeOther)
	}
}

func renderNavigation(w http.ResponseWriter, r *http.Request, store storage.Storage, active tracker.SectionID) {
	ctx := r.Context()
	renderComponent(w, r, http.StatusOK, components.Navigation(navigationData(ctx, store, active)))
}

func navigationData(ctx context.Context, store storage.Storage, active tracker.SectionID) components.NavigationData {
	return components.NavigationData{
		Brand:    currentContent().Profile.Name,
		Links:    nav.Links(active),
		MenuOpen: storedMenuOpen(ctx, store),
		Palette:  theme.Resolve(theme.NewStore(ctx, store).Get()),
	}
}
