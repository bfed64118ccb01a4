package portability

import (
	"fmt"
	"regexp"
	"strings"
)

// Detection is substring/regex matching over raw file text by design.
// The rule semantics are defined relative to pattern presence, not parsed
// code meaning, and callers depend on the exact wording below.

// desktopFrameworks are package names that categorically cannot run on
// App Service. Presence in either dependency map zeroes the score.
var desktopFrameworks = map[string]string{
	"electron": "Electron",
	"tauri":    "Tauri",
	"nw":       "NW.js",
}

// ipcPatterns are Electron inter-process messaging call prefixes.
var ipcPatterns = []string{"ipcMain.", "ipcRenderer.", "webContents."}

var (
	webFrameworkDeps     = []string{"express", "fastify", "koa", "@hapi/hapi", "@nestjs/core"}
	webFrameworkPatterns = []string{"express()", "fastify(", "new Koa(", "Hapi.server(", "NestFactory.create("}
)

var (
	authDeps     = []string{"passport", "jsonwebtoken", "express-session", "bcrypt"}
	authPatterns = []string{"jwt.sign(", "bcrypt.hash(", "passport.authenticate("}
)

var (
	embeddedSQLDeps     = []string{"sqlite3", "better-sqlite3"}
	embeddedSQLPatterns = []string{"new sqlite3.Database(", "new Database("}
)

var fsWritePatterns = []string{
	"fs.writeFile(",
	"fs.writeFileSync(",
	"fs.appendFile(",
	"fs.appendFileSync(",
	"fs.createWriteStream(",
}

var healthRoutePatterns = []string{"/health", "/healthz"}

const corsDep = "cors"
const corsPattern = "cors("

var (
	globalAssignRe  = regexp.MustCompile(`global\.[A-Za-z_$][A-Za-z0-9_$]*\s*=`)
	userScopeTokens = []string{"req.user", "req.session"}

	listenLiteralRe = regexp.MustCompile(`\.listen\(\s*\d{2,5}\s*[,)]`)
)

// evalContext carries per-call state shared across rule predicates.
type evalContext struct {
	files         []RepositoryFile
	manifest      *Manifest
	hasHTTPServer bool
}

// rule is one ordered deduction check. Rules after the instant-fail check
// are independent and additive; needsServer gates the web-only checks so a
// non-web codebase is not double-penalized for missing web features.
type rule struct {
	category    string
	weight      int
	needsServer bool
	summary     string
	detect      func(*evalContext) (bool, string)
}

// ruleTable is the fixed evaluation order. Reordering changes blocker
// flags on borderline inputs, so the order is part of the contract.
var ruleTable = []rule{
	{
		category: "communication",
		weight:   50,
		summary:  "Desktop inter-process messaging in source",
		detect: func(ec *evalContext) (bool, string) {
			for _, f := range ec.files {
				for _, p := range ipcPatterns {
					if strings.Contains(f.Content, p) {
						return true, "Uses desktop inter-process messaging (ipcMain/ipcRenderer) that has no equivalent in a web environment"
					}
				}
			}
			return false, ""
		},
	},
	{
		category: "infrastructure",
		weight:   40,
		summary:  "No recognized web server framework",
		detect: func(ec *evalContext) (bool, string) {
			return !ec.hasHTTPServer, "No web server framework detected; the application has no HTTP entry point to serve traffic from"
		},
	},
	{
		category:    "security",
		weight:      30,
		needsServer: true,
		summary:     "No recognized authentication mechanism",
		detect: func(ec *evalContext) (bool, string) {
			if _, ok := ec.manifest.HasAnyDependency(authDeps...); ok {
				return false, ""
			}
			if anyFileContains(ec.files, authPatterns) {
				return false, ""
			}
			return true, "No authentication mechanism detected on an HTTP-facing application"
		},
	},
	{
		category: "architecture",
		weight:   25,
		summary:  "Global mutable state without per-user isolation",
		detect: func(ec *evalContext) (bool, string) {
			for _, f := range ec.files {
				if !globalAssignRe.MatchString(f.Content) {
					continue
				}
				if containsAny(f.Content, userScopeTokens) {
					continue
				}
				return true, "Stores state in process-wide globals without per-user isolation; concurrent users would share and overwrite each other's state"
			}
			return false, ""
		},
	},
	{
		category: "database",
		weight:   15,
		summary:  "Embedded file-based SQL database",
		detect: func(ec *evalContext) (bool, string) {
			if _, ok := ec.manifest.HasAnyDependency(embeddedSQLDeps...); ok {
				return true, "Uses an embedded file-based SQL database; App Service instances have ephemeral local disks"
			}
			if anyFileContains(ec.files, embeddedSQLPatterns) {
				return true, "Uses an embedded file-based SQL database; App Service instances have ephemeral local disks"
			}
			return false, ""
		},
	},
	{
		category: "storage",
		weight:   15,
		summary:  "Direct local filesystem writes",
		detect: func(ec *evalContext) (bool, string) {
			for _, f := range ec.files {
				if strings.Contains(f.Path, "node_modules/") {
					continue
				}
				if containsAny(f.Content, fsWritePatterns) {
					return true, "Writes to the local filesystem; files written on one instance do not survive restarts or reach other instances"
				}
			}
			return false, ""
		},
	},
	{
		category:    "config",
		weight:      10,
		needsServer: true,
		summary:     "Hardcoded network port",
		detect: func(ec *evalContext) (bool, string) {
			for _, f := range ec.files {
				if listenLiteralRe.MatchString(f.Content) && !strings.Contains(f.Content, "process.env") {
					return true, "Server port is hardcoded in the listen call instead of read from the PORT environment variable"
				}
			}
			return false, ""
		},
	},
	{
		category:    "monitoring",
		weight:      10,
		needsServer: true,
		summary:     "No health check route",
		detect: func(ec *evalContext) (bool, string) {
			for _, f := range ec.files {
				if containsAny(f.Content, healthRoutePatterns) {
					return false, ""
				}
			}
			return true, "No /health or /healthz endpoint for platform health probes"
		},
	},
	{
		category:    "config",
		weight:      5,
		needsServer: true,
		summary:     "No CORS configuration",
		detect: func(ec *evalContext) (bool, string) {
			if ec.manifest.HasDependency(corsDep) {
				return false, ""
			}
			for _, f := range ec.files {
				if strings.Contains(f.Content, corsPattern) {
					return false, ""
				}
			}
			return true, "No CORS configuration detected; browser clients on other origins will be rejected"
		},
	},
}

// detectDesktopFramework is the tier-0 instant-fail check. It only
// consults the dependency maps; the first declared framework wins.
func detectDesktopFramework(m *Manifest) (string, bool) {
	for _, pkg := range []string{"electron", "tauri", "nw"} {
		if m.HasDependency(pkg) {
			return desktopFrameworks[pkg], true
		}
	}
	return "", false
}

// detectHTTPServer reports whether a recognized web server framework is
// declared or instantiated anywhere. The result gates the web-only rules.
func detectHTTPServer(files []RepositoryFile, m *Manifest) bool {
	if _, ok := m.HasAnyDependency(webFrameworkDeps...); ok {
		return true
	}
	return anyFileContains(files, webFrameworkPatterns)
}

func anyFileContains(files []RepositoryFile, patterns []string) bool {
	for _, f := range files {
		if containsAny(f.Content, patterns) {
			return true
		}
	}
	return false
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// RuleInfo describes one rule for display purposes.
type RuleInfo struct {
	Category    string `json:"category"`
	Weight      int    `json:"weight"`
	WebOnly     bool   `json:"webOnly"`
	Summary     string `json:"summary"`
	InstantFail bool   `json:"instantFail"`
}

// RuleTable returns the rule set in evaluation order, instant-fail check
// first. Informational only; the evaluator does not consume this.
func RuleTable() []RuleInfo {
	infos := []RuleInfo{{
		Category:    "architecture",
		Weight:      100,
		Summary:     fmt.Sprintf("Desktop application framework (%s)", strings.Join([]string{"Electron", "Tauri", "NW.js"}, ", ")),
		InstantFail: true,
	}}
	for _, r := range ruleTable {
		infos = append(infos, RuleInfo{
			Category: r.category,
			Weight:   r.weight,
			WebOnly:  r.needsServer,
			Summary:  r.summary,
		})
	}
	return infos
}
