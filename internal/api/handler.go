// Package api implements the hosted portvet REST API.
// It provides assessment and read endpoints backed by Postgres and blob storage.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/portvet/portvet/internal/assessment"
	"github.com/portvet/portvet/internal/project"
)

// Handler is the top-level API handler for the hosted portvet service.
type Handler struct {
	projects    *project.Service
	assessments *assessment.Service
	cache       *ReportCache
}

// NewHandler creates a new API handler.
func NewHandler(projects *project.Service, assessments *assessment.Service, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{
		projects:    projects,
		assessments: assessments,
		cache:       cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/assessments", h.handleCreateAssessment)

	// Read endpoints
	mux.HandleFunc("GET /api/projects", h.handleListProjects)
	mux.HandleFunc("GET /api/projects/{projectID}/assessments", h.handleListAssessments)
	mux.HandleFunc("GET /api/assessments/{assessmentID}", h.handleGetAssessment)
	mux.HandleFunc("GET /api/rules", h.handleListRules)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
