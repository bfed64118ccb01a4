// Package project manages assessed projects and their assessment history,
// backed by Postgres.
package project

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Service provides project and assessment metadata management.
type Service struct {
	db *sql.DB
}

// Project is one application being assessed for migration.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// AssessmentRow is the metadata record for one scoring run. The full
// report (issues, recommendation text) lives in blob storage under
// ReportRef; only the fields needed for listings are kept in Postgres.
type AssessmentRow struct {
	ID         string
	ProjectID  string
	Score      int
	CanPort    bool
	Severity   string
	IssueCount int
	FileCount  int
	ReportRef  string
	CreatedAt  time.Time
}

// NewService creates a new project Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateProject creates a new project.
func (s *Service) CreateProject(ctx context.Context, name string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO projects (name)
		 VALUES ($1)
		 RETURNING id, name, created_at`,
		name,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// GetProjectByName looks up a project by name.
func (s *Service) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM projects WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project by name %s: %w", name, err)
	}
	return p, nil
}

// GetProjectByID looks up a project by ID.
func (s *Service) GetProjectByID(ctx context.Context, id string) (*Project, error) {
	p := &Project{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return p, nil
}

// EnsureProject gets or creates a project by name.
func (s *Service) EnsureProject(ctx context.Context, name string) (*Project, error) {
	p, err := s.GetProjectByName(ctx, name)
	if err == nil {
		return p, nil
	}

	p, err = s.CreateProject(ctx, name)
	if err != nil {
		// Could be a race with a concurrent create; try getting again.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetProjectByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by name.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// InsertAssessment records the metadata for a completed scoring run.
func (s *Service) InsertAssessment(ctx context.Context, row AssessmentRow) (*AssessmentRow, error) {
	out := row
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessments (id, project_id, score, can_port, severity, issue_count, file_count, report_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		row.ID, row.ProjectID, row.Score, row.CanPort, row.Severity, row.IssueCount, row.FileCount, row.ReportRef,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}
	return &out, nil
}

// ListAssessmentsByProject returns all assessments for a project, newest first.
func (s *Service) ListAssessmentsByProject(ctx context.Context, projectID string) ([]AssessmentRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, score, can_port, severity, issue_count, file_count, report_ref, created_at
		 FROM assessments WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []AssessmentRow
	for rows.Next() {
		var a AssessmentRow
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.Score, &a.CanPort, &a.Severity,
			&a.IssueCount, &a.FileCount, &a.ReportRef, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

// GetAssessmentByID returns a single assessment by ID.
func (s *Service) GetAssessmentByID(ctx context.Context, id string) (*AssessmentRow, error) {
	a := &AssessmentRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, score, can_port, severity, issue_count, file_count, report_ref, created_at
		 FROM assessments WHERE id = $1`,
		id,
	).Scan(
		&a.ID, &a.ProjectID, &a.Score, &a.CanPort, &a.Severity,
		&a.IssueCount, &a.FileCount, &a.ReportRef, &a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	return a, nil
}
