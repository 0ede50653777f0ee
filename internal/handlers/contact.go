package handlers

import (
	"errors"
	"net/http"

	"folio/internal/contact"
	applog "folio/internal/log"
	"folio/internal/theme"
	"folio/internal/views/components"
)

type contactResponse struct {
	State  string            `json:"state"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Contact serves the contact form. GET returns the form for the visitor's
// current state, which is how the success message is replaced once its
// window ends. POST submits a message through the configured relay.
func Contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		renderContact(w, r, http.StatusOK, components.ContactFormData{State: contactState(r)})
	case http.MethodPost:
		submitContact(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func submitContact(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	ctx := r.Context()
	visitor := visitorID(r)
	if contactForms == nil || visitor == "" {
		applog.Error(ctx, "contact form unavailable", "configured", contactForms != nil)
		http.Error(w, "contact form unavailable", http.StatusServiceUnavailable)
		return
	}

	input := contact.Input{
		Name:    r.PostFormValue("from_name"),
		Email:   r.PostFormValue("from_email"),
		Message: r.PostFormValue("message"),
	}
	form := contactForms.Get(visitor)
	err := form.Submit(ctx, input)

	data := components.ContactFormData{
		State:       form.State(),
		RevertAfter: form.RevertAfter(),
	}
	status := http.StatusOK

	var validationErr *contact.ValidationError
	var relayErr *contact.RelayError
	switch {
	case errors.As(err, &validationErr):
		contactForms.Release(visitor)
		data.State = contact.Idle
		data.Values = input
		data.Errors = validationErr.Fields
		status = http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrBusy):
		applog.Debug(ctx, "contact submission refused while sending")
		data.State = contact.Submitting
		data.Values = input
		status = http.StatusConflict
	case errors.As(err, &relayErr):
		// Logged by the form; the visitor gets the idle form back with
		// their text and no success message.
		data.State = contact.Idle
		data.Values = input
		if wantsJSON(r) {
			status = http.StatusBadGateway
		}
	case err != nil:
		applog.Error(ctx, "contact submission failed", "error", err)
		http.Error(w, "contact form unavailable", http.StatusServiceUnavailable)
		return
	}

	renderContact(w, r, status, data)
}

func renderContact(w http.ResponseWriter, r *http.Request, status int, data components.ContactFormData) {
	if wantsJSON(r) {
		writeJSON(w, r, status, contactResponse{State: data.State.String(), Errors: data.Errors})
		return
	}
	if data.RevertAfter <= 0 {
		data.RevertAfter = contact.RevertAfter
	}
	data.Palette = theme.Resolve(theme.NewStore(r.Context(), visitorStorage(r)).Get())
	renderComponent(w, r, status, components.ContactForm(data))
}
