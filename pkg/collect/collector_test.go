package collect

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func collectPaths(t *testing.T, c *Collector, root string) map[string]string {
	t.Helper()
	files, err := c.Collect(root)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	got := make(map[string]string, len(files))
	for _, f := range files {
		got[f.Path] = f.Content
	}
	return got
}

func TestCollectBasicTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", []byte(`{"name":"app"}`))
	writeFile(t, root, "src/server.js", []byte("const app = express();"))

	got := collectPaths(t, &Collector{}, root)

	if len(got) != 2 {
		t.Fatalf("collected %d files, want 2: %v", len(got), got)
	}
	if got["package.json"] != `{"name":"app"}` {
		t.Errorf("package.json content = %q", got["package.json"])
	}
	if _, ok := got["src/server.js"]; !ok {
		t.Error("missing src/server.js (paths must be slash-separated and relative)")
	}
}

func TestCollectSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.js", []byte("ok"))
	writeFile(t, root, "node_modules/express/index.js", []byte("module.exports = {};"))
	writeFile(t, root, ".git/config", []byte("[core]"))

	got := collectPaths(t, &Collector{}, root)

	if len(got) != 1 {
		t.Fatalf("collected %d files, want 1: %v", len(got), got)
	}
}

func TestCollectHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", []byte("*.log\ntmp/\n"))
	writeFile(t, root, "app.js", []byte("ok"))
	writeFile(t, root, "debug.log", []byte("noise"))
	writeFile(t, root, "tmp/scratch.js", []byte("noise"))

	got := collectPaths(t, &Collector{}, root)

	if _, ok := got["debug.log"]; ok {
		t.Error("collected a gitignored file")
	}
	if _, ok := got["tmp/scratch.js"]; ok {
		t.Error("collected a file in a gitignored directory")
	}
	if _, ok := got["app.js"]; !ok {
		t.Error("missing app.js")
	}
}

func TestCollectSkipsBinaryAndOversized(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "logo.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01})
	writeFile(t, root, "big.js", make([]byte, 100))
	writeFile(t, root, "small.js", []byte("ok"))

	got := collectPaths(t, &Collector{MaxFileBytes: 50}, root)

	if _, ok := got["logo.png"]; ok {
		t.Error("collected a binary file")
	}
	if _, ok := got["big.js"]; ok {
		t.Error("collected a file over the size cap")
	}
	if _, ok := got["small.js"]; !ok {
		t.Error("missing small.js")
	}
}

func TestCollectRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.js", []byte("ok"))

	if _, err := (&Collector{}).Collect(filepath.Join(root, "file.js")); err == nil {
		t.Error("expected error for non-directory root")
	}
	if _, err := (&Collector{}).Collect(filepath.Join(root, "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}
