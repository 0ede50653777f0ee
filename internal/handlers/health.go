package handlers

import (
	"net/http"
	"time"

	applog "folio/internal/log"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Storage  string    `json:"storage"`
	Profile  string    `json:"profile"`
	Resume   bool      `json:"resume"`
	Contact  bool      `json:"contact"`
}

// Health reports readiness together with the wiring the portfolio runs
// with: storage backend, whose portfolio is served and whether the resume download
// and contact form are available.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r, http.MethodGet, http.MethodHead)
		return
	}

	backend := storageFactory.Backend
	if backend == "" {
		backend = "session"
	}
	resp := healthResponse{
		Status:   "ok",
		Time:     now().UTC(),
		Storage:  backend,
		Profile:  currentContent().Profile.Name,
		Resume:   resumeInfo.Available(),
		Contact:  contactForms != nil,
	}
	applog.Debug(r.Context(), "health check", "storage", resp.Storage, "resume", resp.Resume)
	writeJSON(w, r, http.StatusOK, resp)
}
