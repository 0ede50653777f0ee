// Package handlers implements the HTTP surface of the portfolio. Every
// handler builds the visitor's stores from the request, so nothing is shared
// between visitors.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"

	"folio/internal/contact"
	"folio/internal/content"
	applog "folio/internal/log"
	"folio/internal/storage"
)

var (
	sessionManager *scs.SessionManager
	storageFactory storage.Factory
	siteContent    *content.Content
	contactForms   *contact.Forms
	resumeInfo     content.ResumeInfo
	now            = time.Now

	newFallbackStorage = func() storage.Storage { return storage.NewMemory(nil) }
)

// Dependencies are the shared collaborators of the handlers.
type Dependencies struct {
	Sessions *scs.SessionManager
	Storage  storage.Factory
	Content  *content.Content
	Forms    *contact.Forms
	Resume   content.ResumeInfo
}

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(deps Dependencies) {
	sessionManager = deps.Sessions
	storageFactory = deps.Storage
	if storageFactory.Sessions == nil {
		storageFactory.Sessions = deps.Sessions
	}
	siteContent = deps.Content
	contactForms = deps.Forms
	resumeInfo = deps.Resume
}

func currentContent() *content.Content {
	if siteContent == nil {
		siteContent = content.Default()
	}
	return siteContent
}

// visitorStorage returns the visitor's storage. When the backend cannot be
// reached an empty in-memory storage is returned instead, so the page still
// renders with defaults.
func visitorStorage(r *http.Request) storage.Storage {
	s, err := storageFactory.For(r.Context())
	if err != nil {
		applog.Warn(r.Context(), "visitor storage unavailable, using memory", "error", err)
		return newFallbackStorage()
	}
	return s
}

// peekStorage is visitorStorage for handlers that only read. It never
// modifies the session, so LoadAndSave has nothing to commit and a request
// overlapping a write cannot put stale session data back.
func peekStorage(r *http.Request) storage.Storage {
	s, err := storageFactory.Peek(r.Context())
	if err != nil {
		applog.Warn(r.Context(), "visitor storage unavailable, using memory", "error", err)
		return newFallbackStorage()
	}
	return s
}

// visitorID identifies the visitor for per-visitor server state.
func visitorID(r *http.Request) string {
	profile, err := storage.Profile(r.Context(), sessionManager)
	if err != nil {
		applog.Debug(r.Context(), "visitor profile unavailable", "error", err)
		return ""
	}
	return profile
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "error", err)
	}
}

func renderComponent(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		applog.Error(r.Context(), "failed to render component", "path", r.URL.Path, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		applog.Debug(r.Context(), "failed to write response", "error", err)
	}
}

// maxSubmissionBytes bounds testimonial and contact form bodies.
const maxSubmissionBytes = 1 << 20

// parseSubmission parses a visitor form post of at most maxSubmissionBytes
// and writes the error response when it cannot.
func parseSubmission(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	err := r.ParseForm()
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		applog.Debug(r.Context(), "form submission too large", "path", r.URL.Path, "limit", tooLarge.Limit)
		http.Error(w, "form submission too large", http.StatusRequestEntityTooLarge)
		return false
	}
	applog.Error(r.Context(), "failed to parse form submission", "path", r.URL.Path, "error", err)
	http.Error(w, "invalid form submission", http.StatusBadRequest)
	return false
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	applog.Debug(r.Context(), "unsupported method", "path", r.URL.Path, "method", r.Method)
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	w.WriteHeader(http.StatusMethodNotAllowed)
}
