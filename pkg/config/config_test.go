package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Collect.MaxFileBytes != 1<<20 {
		t.Errorf("MaxFileBytes = %d, want default %d", cfg.Collect.MaxFileBytes, 1<<20)
	}
	if len(cfg.Collect.Exclude) == 0 {
		t.Error("default excludes missing")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "collect:\n  max_file_bytes: 2048\n  exclude: [vendor]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Collect.MaxFileBytes != 2048 {
		t.Errorf("MaxFileBytes = %d, want 2048", cfg.Collect.MaxFileBytes)
	}
	if len(cfg.Collect.Exclude) != 1 || cfg.Collect.Exclude[0] != "vendor" {
		t.Errorf("Exclude = %v, want [vendor]", cfg.Collect.Exclude)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("collect: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	cfgDir := filepath.Join(root, ".portvet")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("collect: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	if got := FindConfigFile(nested); got != cfgPath {
		t.Errorf("FindConfigFile = %q, want %q", got, cfgPath)
	}
	if got := FindConfigFile(t.TempDir()); got != "" {
		t.Errorf("FindConfigFile in empty tree = %q, want empty", got)
	}
}
