package portability

import "encoding/json"

// manifestFilename is the only location the parser looks at.
// Nested package.json files (workspaces, vendored deps) are ignored.
const manifestFilename = "package.json"

// Manifest is the parsed root package.json.
// A nil *Manifest is valid everywhere: all accessors treat it as empty,
// so a missing manifest and a malformed one behave identically.
type Manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// parseManifest locates and parses the root manifest.
// Any parse failure is swallowed: a broken manifest is evidence of low
// portability, not a reason to fail the scoring call.
func parseManifest(files []RepositoryFile) *Manifest {
	for _, f := range files {
		if f.Path != manifestFilename {
			continue
		}
		var m Manifest
		if err := json.Unmarshal([]byte(f.Content), &m); err != nil {
			return nil
		}
		return &m
	}
	return nil
}

// HasDependency reports whether name appears in dependencies or
// devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasAnyDependency reports whether any of the given names is declared,
// returning the first match.
func (m *Manifest) HasAnyDependency(names ...string) (string, bool) {
	for _, name := range names {
		if m.HasDependency(name) {
			return name, true
		}
	}
	return "", false
}

// Script returns the named script command, or "" if absent.
func (m *Manifest) Script(name string) string {
	if m == nil {
		return ""
	}
	return m.Scripts[name]
}
