package api

import (
	"net/http"
	"time"
)

type projectView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// handleListProjects handles GET /api/projects.
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectView{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	writeJSON(w, http.StatusOK, views)
}

// handleListAssessments handles GET /api/projects/{projectID}/assessments.
func (h *Handler) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")

	if _, err := h.projects.GetProjectByID(r.Context(), projectID); err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	rows, err := h.projects.ListAssessmentsByProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}

	views := make([]assessmentView, 0, len(rows))
	for i := range rows {
		views = append(views, viewOf(&rows[i]))
	}
	writeJSON(w, http.StatusOK, views)
}
