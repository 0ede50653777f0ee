package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"folio/internal/tracker"
)

func decodeActive(t *testing.T, data []byte) activeResponse {
	t.Helper()
	var resp activeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestActiveSectionFollowsReferenceLine(t *testing.T) {
	env := withTestDependencies(t)

	// Projects spans the 100px line, Skills has scrolled past it.
	w := env.postJSON("/nav/active", `{"sections":{
		"skills":{"top":-500,"bottom":-20},
		"projects":{"top":-20,"bottom":700},
		"certifications":{"top":700,"bottom":1400}
	}}`, acceptJSON...)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decodeActive(t, w.Body.Bytes())
	if resp.Active != tracker.Projects || !resp.Changed {
		t.Fatalf("expected projects to become active, got %+v", resp)
	}
	if cookies := w.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected scroll reports to leave the session alone, got cookies %v", cookies)
	}
}

func TestActiveSectionKeepsPreviousWhenNothingCrosses(t *testing.T) {
	env := withTestDependencies(t)

	w := env.postJSON("/nav/active", `{"sections":{"skills":{"top":150,"bottom":400}},"previous":"skills"}`, acceptJSON...)
	resp := decodeActive(t, w.Body.Bytes())
	if resp.Active != tracker.Skills || resp.Changed {
		t.Fatalf("expected skills to be kept, got %+v", resp)
	}

	w = env.postJSON("/nav/active", `{"sections":{"skills":{"top":150,"bottom":400}},"previous":"blog"}`, acceptJSON...)
	resp = decodeActive(t, w.Body.Bytes())
	if resp.Active != tracker.Home || resp.Changed {
		t.Fatalf("expected an unknown previous section to fall back to home, got %+v", resp)
	}
}

func TestScrollReportDoesNotRevertConcurrentThemeToggle(t *testing.T) {
	env := withTestDependencies(t)

	if w := env.postForm("/theme/toggle", nil, acceptJSON...); w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	// The scroll report loads the session, then waits while the theme is
	// toggled back, and only then runs.
	loaded := make(chan struct{})
	release := make(chan struct{})
	held := env.sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(loaded)
		<-release
		ActiveSection(w, r)
	}))
	req := httptest.NewRequest(http.MethodPost, "/nav/active",
		strings.NewReader(`{"sections":{"about":{"top":0,"bottom":900}},"previous":"home"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, c := range env.cookies {
		req.AddCookie(c)
	}
	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		w := httptest.NewRecorder()
		held.ServeHTTP(w, req)
		done <- w
	}()
	<-loaded

	w := env.postForm("/theme/toggle", nil, acceptJSON...)
	var toggled themeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("decode theme response: %v", err)
	}
	if toggled.Theme != "light" || !toggled.Persistent {
		t.Fatalf("expected persistent light theme, got %+v", toggled)
	}

	close(release)
	scroll := <-done
	if scroll.Code != http.StatusOK {
		t.Fatalf("expected status 200 from scroll report, got %d", scroll.Code)
	}
	if resp := decodeActive(t, scroll.Body.Bytes()); resp.Active != tracker.About {
		t.Fatalf("expected about to become active, got %+v", resp)
	}

	if page := body(t, env.get("/")); !strings.Contains(page, `<html lang="en" class="light"`) {
		t.Fatal("expected the light theme to survive the overlapping scroll report")
	}
}

func TestActiveSectionReturnsNavigationFragment(t *testing.T) {
	env := withTestDependencies(t)

	w := env.postJSON("/nav/active", `{"sections":{"contact":{"top":0,"bottom":900}}}`, htmx...)
	out := body(t, w)
	if !strings.HasPrefix(out, `<nav id="navigation"`) {
		t.Fatalf("expected navigation fragment: %s", out)
	}
	if !strings.Contains(out, `data-nav-section="contact" data-state="active"`) {
		t.Fatalf("expected contact to be active: %s", out)
	}
}

func TestActiveSectionRejectsBadPayload(t *testing.T) {
	env := withTestDependencies(t)

	if w := env.postJSON("/nav/active", `{"sections":`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if w := env.get("/nav/active"); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestMenuTogglesAndSelectCloses(t *testing.T) {
	env := withTestDependencies(t)

	w := env.postForm("/nav/menu", nil, htmx...)
	if out := body(t, w); !strings.Contains(out, `id="mobile-menu"`) {
		t.Fatalf("expected open overlay: %s", out)
	}

	w = env.postForm("/nav/menu", url.Values{"select": {"skills"}}, htmx...)
	out := body(t, w)
	if strings.Contains(out, `id="mobile-menu"`) {
		t.Fatalf("expected closed overlay after selecting: %s", out)
	}
	if trigger := w.Header().Get("HX-Trigger"); trigger != `{"nav-select":{"anchor":"#skills"}}` {
		t.Fatalf("unexpected HX-Trigger %q", trigger)
	}

	w = env.postForm("/nav/menu", url.Values{"select": {"blog"}}, htmx...)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown section, got %d", w.Code)
	}
}

func TestMenuPlainFormRedirectsToAnchor(t *testing.T) {
	env := withTestDependencies(t)

	w := env.postForm("/nav/menu", url.Values{"select": {"contact"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/#contact" {
		t.Fatalf("expected redirect to /#contact, got %d %q", w.Code, w.Header().Get("Location"))
	}

	w = env.postForm("/nav/menu", nil, acceptJSON...)
	var resp menuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Open {
		t.Fatalf("expected menu to open, got %+v", resp)
	}
}
