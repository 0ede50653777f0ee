package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "folio/internal/log"
	"folio/internal/testimonials"
	"folio/internal/theme"
	"folio/internal/views/components"
)

const persistenceNotice = "Your testimonial is shown for this visit but could not be saved."

type testimonialsResponse struct {
	Testimonials []testimonials.Testimonial `json:"testimonials"`
	Persisted    bool                       `json:"persisted"`
	Errors       map[string]string          `json:"errors,omitempty"`
}

// Testimonials lists the visitor's testimonials on GET and accepts a new one
// on POST.
func Testimonials(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		listTestimonials(w, r)
	case http.MethodPost:
		submitTestimonial(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func listTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := visitorStorage(r)
	items := testimonials.NewStore(ctx, store).List()

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, testimonialsResponse{Testimonials: items, Persisted: true})
		return
	}
	palette := theme.Resolve(theme.NewStore(ctx, store).Get())
	renderComponent(w, r, http.StatusOK, components.Testimonials(components.TestimonialsData{Items: items, Palette: palette}))
}

func submitTestimonial(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	ctx := r.Context()
	store := visitorStorage(r)
	reviews := testimonials.NewStore(ctx, store)
	palette := theme.Resolve(theme.NewStore(ctx, store).Get())

	form := components.TestimonialForm{
		Name:   r.PostFormValue("name"),
		Role:   r.PostFormValue("role"),
		Review: r.PostFormValue("review"),
	}
	// A missing or non-numeric rating stays 0 and fails validation.
	form.Rating, _ = strconv.Atoi(strings.TrimSpace(r.PostFormValue("rating")))

	created, err := reviews.Submit(ctx, testimonials.Candidate{
		Name:   form.Name,
		Role:   form.Role,
		Review: form.Review,
		Rating: form.Rating,
	})

	var validationErr *testimonials.ValidationError
	var persistenceErr *testimonials.PersistenceError
	switch {
	case errors.As(err, &validationErr):
		applog.Debug(ctx, "testimonial rejected", "fields", len(validationErr.Fields))
		form.Errors = validationErr.Fields
		if wantsJSON(r) {
			writeJSON(w, r, http.StatusUnprocessableEntity, testimonialsResponse{Testimonials: reviews.List(), Errors: validationErr.Fields})
			return
		}
		renderComponent(w, r, http.StatusUnprocessableEntity, components.Testimonials(components.TestimonialsData{
			Items:   reviews.List(),
			Form:    form,
			Palette: palette,
		}))
		return
	case errors.As(err, &persistenceErr):
		applog.Error(ctx, "failed to persist testimonial", "error", persistenceErr.Err)
		items := reviews.Adopt(persistenceErr.Testimonial)
		if wantsJSON(r) {
			writeJSON(w, r, http.StatusOK, testimonialsResponse{Testimonials: items, Persisted: false})
			return
		}
		renderComponent(w, r, http.StatusOK, components.Testimonials(components.TestimonialsData{
			Items:   items,
			Notice:  persistenceNotice,
			Palette: palette,
		}))
		return
	case err != nil:
		applog.Error(ctx, "failed to submit testimonial", "error", err)
		http.Error(w, "failed to submit testimonial", http.StatusInternalServerError)
		return
	}

	applog.Info(ctx, "testimonial added", "id", created.ID, "rating", created.Rating)
	switch {
	case wantsJSON(r):
		writeJSON(w, r, http.StatusCreated, testimonialsResponse{Testimonials: reviews.List(), Persisted: true})
	case isHTMX(r):
		renderComponent(w, r, http.StatusOK, components.Testimonials(components.TestimonialsData{
			Items:   reviews.List(),
			Palette: palette,
		}))
	default:
		http.Redirect(w, r, "/#testimonials", http.StatusSeeOther)
	}
}
