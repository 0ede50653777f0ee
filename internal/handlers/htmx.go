package handlers

import (
	"encoding/json"
	"net/http"

	applog "folio/internal/log"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// trigger sets HX-Trigger so htmx dispatches event with detail on the client.
func trigger(w http.ResponseWriter, r *http.Request, event string, detail any) {
	payload, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		applog.Error(r.Context(), "failed to encode htmx trigger", "event", event, "error", err)
		return
	}
	w.Header().Set("HX-Trigger", string(payload))
}
