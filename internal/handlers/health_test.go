package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"folio/internal/content"
)

func TestHealthReportsWiring(t *testing.T) {
	env := withTestDependencies(t)
	resumeInfo = content.ResumeInfo{Path: "resume.pdf", Pages: 2}

	original := now
	t.Cleanup(func() { now = original })
	now = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.FixedZone("IST", 19800)) }

	w := env.get("/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Storage != "session" {
		t.Fatalf("unexpected health response %+v", resp)
	}
	if !resp.Time.Equal(time.Date(2026, time.October, 19, 3, 30, 0, 0, time.UTC)) || resp.Time.Location() != time.UTC {
		t.Fatalf("expected UTC time, got %v", resp.Time)
	}
	if resp.Profile != content.Default().Profile.Name {
		t.Fatalf("expected profile %q, got %q", content.Default().Profile.Name, resp.Profile)
	}
	if !resp.Resume || !resp.Contact {
		t.Fatalf("expected resume and contact to be available: %+v", resp)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	env := withTestDependencies(t)

	if w := env.postForm("/healthz", nil); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}
