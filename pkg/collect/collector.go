// Package collect builds the in-memory file list the scoring engine
// consumes from a local working tree. It never touches the network: the
// caller points it at a directory that already exists on disk.
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/portvet/portvet/pkg/portability"
)

// DefaultMaxFileBytes caps how much of the tree is read per file.
// Anything larger is almost certainly a bundle or an asset, and the
// detection rules only care about source text.
const DefaultMaxFileBytes = 1 << 20

// DefaultExcludes are directory names skipped regardless of .gitignore.
var DefaultExcludes = []string{"node_modules", ".git", "dist", "build", "coverage"}

// Collector reads repository files into portability.RepositoryFile records.
type Collector struct {
	// MaxFileBytes caps individual file size; zero means DefaultMaxFileBytes.
	MaxFileBytes int64
	// Excludes are directory names to skip; nil means DefaultExcludes.
	Excludes []string
}

// Collect walks root and returns its files with slash-separated paths
// relative to root. Binary files, oversized files, excluded directories
// and anything matched by a root .gitignore are skipped.
func (c *Collector) Collect(root string) ([]portability.RepositoryFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	maxBytes := c.MaxFileBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	excludes := c.Excludes
	if excludes == nil {
		excludes = DefaultExcludes
	}
	excluded := make(map[string]bool, len(excludes))
	for _, name := range excludes {
		excluded[name] = true
	}

	// Only the root .gitignore is honored; nested ignore files are rare in
	// the repositories this tool targets and not worth the walk cost.
	var gi *ignore.GitIgnore
	if _, err := os.Stat(filepath.Join(root, ".gitignore")); err == nil {
		gi, _ = ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	}

	var files []portability.RepositoryFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if excluded[d.Name()] {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.Size() > maxBytes {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		if isBinary(data) {
			return nil
		}

		files = append(files, portability.RepositoryFile{Path: rel, Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// isBinary sniffs the first KiB for a NUL byte.
func isBinary(data []byte) bool {
	limit := len(data)
	if limit > 1024 {
		limit = 1024
	}
	return strings.IndexByte(string(data[:limit]), 0) >= 0
}
