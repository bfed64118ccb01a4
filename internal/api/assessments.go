package api

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/portvet/portvet/internal/assessment"
	"github.com/portvet/portvet/internal/project"
	"github.com/portvet/portvet/pkg/portability"
)

// assessmentView is the JSON shape of one assessment in API responses.
type assessmentView struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Score      int       `json:"score"`
	CanPort    bool      `json:"canPort"`
	Severity   string    `json:"severity"`
	IssueCount int       `json:"issue_count"`
	FileCount  int       `json:"file_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func viewOf(row *project.AssessmentRow) assessmentView {
	return assessmentView{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		Score:      row.Score,
		CanPort:    row.CanPort,
		Severity:   row.Severity,
		IssueCount: row.IssueCount,
		FileCount:  row.FileCount,
		CreatedAt:  row.CreatedAt,
	}
}

// handleCreateAssessment handles POST /api/v1/assessments. The request
// body carries the project name and the full file set inline; large
// repositories may gzip the body.
func (h *Handler) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid gzip body: "+err.Error())
			return
		}
		defer gz.Close()
		body = gz
	}

	var req assessment.Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, row, err := h.assessments.Run(r.Context(), req)
	if err != nil {
		log.Printf("assessment failed for project %s: %v", req.Project, err)
		writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	h.cache.Put(row.ID, result)

	writeJSON(w, http.StatusCreated, map[string]any{
		"assessment": viewOf(row),
		"result":     result,
	})
}

// handleGetAssessment handles GET /api/assessments/{assessmentID},
// returning the full archived report.
func (h *Handler) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := r.PathValue("assessmentID")

	result, err := h.loadReport(r, assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// loadReport loads a report by assessment ID, checking the cache first,
// then falling back to DB metadata lookup + storage client.
func (h *Handler) loadReport(r *http.Request, assessmentID string) (*portability.Result, error) {
	if result := h.cache.Get(assessmentID); result != nil {
		return result, nil
	}

	ctx := r.Context()
	row, err := h.projects.GetAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	data, err := h.assessments.Storage().GetReport(ctx, row.ProjectID, row.ReportRef)
	if err != nil {
		return nil, err
	}

	var result portability.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	h.cache.Put(assessmentID, &result)
	return &result, nil
}

// handleListRules handles GET /api/rules. The rule table is static, so
// UI clients can explain deductions without hardcoding them.
func (h *Handler) handleListRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, portability.RuleTable())
}
