package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/portvet/portvet/internal/project"
	"github.com/portvet/portvet/pkg/portability"
)

// Request describes one assessment to run. Files arrive inline; the
// service never fetches repository content itself.
type Request struct {
	Project string                       `json:"project"`
	Files   []portability.RepositoryFile `json:"files"`
}

// Validate checks the request shape before any work is done.
func (r *Request) Validate() error {
	if r.Project == "" {
		return fmt.Errorf("project name is required")
	}
	for i, f := range r.Files {
		if f.Path == "" {
			return fmt.Errorf("files[%d]: path is required", i)
		}
	}
	return nil
}

// Service runs assessments and persists their results.
type Service struct {
	projects *project.Service
	storage  StorageClient
}

// NewService creates a new assessment Service.
func NewService(projects *project.Service, storage StorageClient) *Service {
	return &Service{projects: projects, storage: storage}
}

// Storage exposes the underlying storage client for read paths.
func (s *Service) Storage() StorageClient {
	return s.storage
}

// Run scores the request's files, archives the full report, and records
// the metadata row. The scoring itself cannot fail; errors come only
// from persistence.
func (s *Service) Run(ctx context.Context, req Request) (*portability.Result, *project.AssessmentRow, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	proj, err := s.projects.EnsureProject(ctx, req.Project)
	if err != nil {
		return nil, nil, fmt.Errorf("ensure project: %w", err)
	}

	result := portability.Score(req.Files)

	assessmentID := uuid.New().String()
	report, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := s.storage.PutReport(ctx, proj.ID, assessmentID, report); err != nil {
		return nil, nil, fmt.Errorf("store report: %w", err)
	}

	row, err := s.projects.InsertAssessment(ctx, project.AssessmentRow{
		ID:         assessmentID,
		ProjectID:  proj.ID,
		Score:      result.Score,
		CanPort:    result.CanPort,
		Severity:   string(result.Severity),
		IssueCount: len(result.Issues),
		FileCount:  len(req.Files),
		ReportRef:  assessmentID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("record assessment: %w", err)
	}

	return result, row, nil
}
