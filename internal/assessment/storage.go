// Package assessment orchestrates the hosted scoring flow: run the engine
// on posted files, record metadata, and archive the full report.
package assessment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for assessment reports.
type StorageClient interface {
	PutReport(ctx context.Context, projectID, assessmentID string, data []byte) error
	GetReport(ctx context.Context, projectID, assessmentID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(projectID, assessmentID string) string {
	return filepath.Join(s.BaseDir, projectID, "reports", assessmentID+".json")
}

// PutReport stores a report blob.
func (s *LocalStorage) PutReport(ctx context.Context, projectID, assessmentID string, data []byte) error {
	path := s.path(projectID, assessmentID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetReport retrieves a report blob.
func (s *LocalStorage) GetReport(ctx context.Context, projectID, assessmentID string) ([]byte, error) {
	return os.ReadFile(s.path(projectID, assessmentID))
}
