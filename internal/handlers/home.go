package handlers

import (
	"context"
	"net/http"
	"strconv"

	"folio/internal/contact"
	applog "folio/internal/log"
	"folio/internal/storage"
	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/internal/tracker"
	"folio/internal/views/components"
	"folio/internal/views/pages"
	"folio/models"
)

// Home renders the portfolio for the visitor.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		applog.Debug(r.Context(), "unknown path requested", "path", r.URL.Path)
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	ctx := r.Context()
	store := visitorStorage(r)
	themes := theme.NewStore(ctx, store)
	reviews := testimonials.NewStore(ctx, store)

	data := pages.PortfolioData{
		Content:  currentContent(),
		Palette:  theme.Resolve(themes.Get()),
		Active:   storedSection(ctx, store),
		MenuOpen: storedMenuOpen(ctx, store),
		Testimonials: components.TestimonialsData{
			Items: reviews.List(),
		},
		Contact: components.ContactFormData{
			State:       contactState(r),
			RevertAfter: contact.RevertAfter,
		},
		Resume: resumeInfo,
		Year:   now().Year(),
	}
	applog.Debug(ctx, "rendering portfolio",
		"theme", themes.Get().String(),
		"active", data.Active.String(),
		"testimonials", len(data.Testimonials.Items),
	)
	renderComponent(w, r, http.StatusOK, pages.Portfolio(data))
}

// storedSection returns the last active section recorded for the visitor,
// or the first section.
func storedSection(ctx context.Context, s storage.Storage) tracker.SectionID {
	raw, found, err := s.Get(ctx, models.KeyActiveSection)
	if err != nil {
		applog.Warn(ctx, "failed to read active section", "error", err)
	}
	if found {
		if id, ok := tracker.ParseSection(raw, tracker.DefaultSections); ok {
			return id
		}
	}
	return tracker.DefaultSections[0]
}

func storedMenuOpen(ctx context.Context, s storage.Storage) bool {
	raw, found, err := s.Get(ctx, models.KeyMenuOpen)
	if err != nil {
		applog.Warn(ctx, "failed to read menu state", "error", err)
		return false
	}
	if !found {
		return false
	}
	open, err := strconv.ParseBool(raw)
	return err == nil && open
}

func contactState(r *http.Request) contact.State {
	if contactForms == nil {
		return contact.Idle
	}
	visitor := visitorID(r)
	if visitor == "" {
		return contact.Idle
	}
	return contactForms.Peek(visitor)
}
