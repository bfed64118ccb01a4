package assessment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/portvet/portvet/pkg/portability"
)

func TestLocalStoragePutGetReport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"score":60}`)
	if err := s.PutReport(ctx, "proj1", "assess1", data); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "proj1", "assess1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetReport = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "proj1", "reports", "assess1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetMissingReport(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	if _, err := s.GetReport(context.Background(), "proj1", "nope"); err == nil {
		t.Error("expected error for missing report")
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{
			name: "valid",
			req: Request{Project: "shop", Files: []portability.RepositoryFile{
				{Path: "package.json", Content: "{}"},
			}},
		},
		{
			name: "empty file list is allowed",
			req:  Request{Project: "shop"},
		},
		{
			name:    "missing project",
			req:     Request{Files: []portability.RepositoryFile{{Path: "a.js"}}},
			wantErr: true,
		},
		{
			name:    "file without path",
			req:     Request{Project: "shop", Files: []portability.RepositoryFile{{Content: "x"}}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
