package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		serverKey  string
		requestKey string
		wantStatus int
	}{
		{"no key configured", "", "", http.StatusOK},
		{"matching key", "secret", "secret", http.StatusOK},
		{"wrong key", "secret", "nope", http.StatusUnauthorized},
		{"missing key", "secret", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := APIKeyAuth(tc.serverKey)(okHandler())
			req := httptest.NewRequest("GET", "/api/projects", nil)
			if tc.requestKey != "" {
				req.Header.Set("X-API-Key", tc.requestKey)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/v1/assessments", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}

func TestCreateAssessmentRejectsBadBodies(t *testing.T) {
	h := NewHandler(nil, nil, NewReportCache(1))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"project": `},
		{"missing project", `{"files": [{"path": "a.js", "content": ""}]}`},
		{"file without path", `{"project": "shop", "files": [{"content": "x"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/assessments", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.handleCreateAssessment(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
