package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/sampling"
)

func newTestHandler() *Handler {
	return New(Config{
		Logger: zap.NewNop(),
		Source: sampling.NewSource(211),
	})
}

func TestGenerateProspect(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "empty body uses defaults",
			body:           "",
			expectedStatus: http.StatusOK,
			expectedBody:   `"skills"`,
		},
		{
			name:           "requested position",
			body:           `{"position":"QB","tier":"elite"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"position":"QB"`,
		},
		{
			name:           "scheme evaluation",
			body:           `{"position":"CB","scheme":"man_press"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"schemeSummary"`,
		},
		{
			name:           "unknown position rejected",
			body:           `{"position":"XX"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Unknown position`,
		},
		{
			name:           "unknown tier rejected",
			body:           `{"tier":"legendary"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Unknown tier`,
		},
		{
			name:           "unknown scheme rejected",
			body:           `{"scheme":"wishbone"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Unknown scheme`,
		},
		{
			name:           "malformed json rejected",
			body:           `{"position":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Invalid JSON`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			r := httptest.NewRequest("POST", "/api/v1/generate/prospect", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.GenerateProspect(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedBody, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK && !models.CheckViewModelPrivacy(w.Body.Bytes()) {
				t.Errorf("response leaked hidden state: %v", models.PrivacyViolations(w.Body.Bytes()))
			}
		})
	}
}

func TestGenerateRosterResponseIsClean(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("POST", "/api/v1/generate/roster", strings.NewReader(`{"teamId":"hawks"}`))
	w := httptest.NewRecorder()

	h.GenerateRoster(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"teamId":"hawks"`) {
		t.Error("missing team id")
	}
	if got := strings.Count(body, `"position"`); got != 53 {
		t.Errorf("roster response has %d players, want 53", got)
	}
	if !models.CheckViewModelPrivacy(w.Body.Bytes()) {
		t.Errorf("roster response leaked: %v", models.PrivacyViolations(w.Body.Bytes()))
	}
}

func TestGenerateRosterRequiresTeamID(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("POST", "/api/v1/generate/roster", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	h.GenerateRoster(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("missing teamId should 400, got %d", w.Code)
	}
}

func TestGenerateDraftClass(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("POST", "/api/v1/generate/draft-class", strings.NewReader(`{"size":25}`))
	w := httptest.NewRecorder()

	h.GenerateDraftClass(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if got := strings.Count(w.Body.String(), `"position"`); got != 25 {
		t.Errorf("class has %d players, want 25", got)
	}
	if !models.CheckViewModelPrivacy(w.Body.Bytes()) {
		t.Errorf("draft class response leaked: %v", models.PrivacyViolations(w.Body.Bytes()))
	}
}

func TestGenerateDraftClassSizeCap(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("POST", "/api/v1/generate/draft-class", strings.NewReader(`{"size":5000}`))
	w := httptest.NewRecorder()

	h.GenerateDraftClass(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("oversized class should 400, got %d", w.Code)
	}
}

func TestGenerateLeague(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("POST", "/api/v1/generate/league", strings.NewReader(`{"teams":2}`))
	w := httptest.NewRecorder()

	h.GenerateLeague(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"teams":2`) {
		t.Error("missing team count")
	}
	if !strings.Contains(body, `"players":106`) {
		t.Error("two rosters should total 106 players")
	}
	if !models.CheckViewModelPrivacy(w.Body.Bytes()) {
		t.Errorf("league response leaked: %v", models.PrivacyViolations(w.Body.Bytes()))
	}
}

func TestSchemeCatalog(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/api/v1/schemes", nil)
	w := httptest.NewRecorder()

	h.SchemeCatalog(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	for _, scheme := range []string{"air_raid", "man_press", "tampa_2"} {
		if !strings.Contains(w.Body.String(), scheme) {
			t.Errorf("catalog missing %q", scheme)
		}
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	r := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	h.Health(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body %q", w.Body.String())
	}
}

func TestRoutesWiring(t *testing.T) {
	h := newTestHandler()
	srv := httptest.NewServer(h.Routes([]string{"*"}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status %d", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/api/v1/generate/prospect", "application/json", strings.NewReader(`{"position":"WR"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("prospect status %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("metrics status %d", resp.StatusCode)
	}
}
