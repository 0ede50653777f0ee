package handlers

import (
	"mime"
	"net/http"

	applog "folio/internal/log"
)

// Resume serves the resume PDF when one is configured.
func Resume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}
	if !resumeInfo.Available() {
		applog.Debug(r.Context(), "resume requested but not configured")
		http.NotFound(w, r)
		return
	}

	name := currentContent().Resume.FileName
	if name == "" {
		name = "resume.pdf"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeFile(w, r, resumeInfo.Path)
}
