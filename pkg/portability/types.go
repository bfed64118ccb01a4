// Package portability implements the App Service portability scoring engine.
// It inspects repository file contents, applies a fixed table of weighted
// detection rules, and produces an explainable migration recommendation.
package portability

// RepositoryFile is one file pulled from the target repository.
// Paths are repository-relative and unique within a scoring call.
type RepositoryFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Severity buckets the portability score into a decision tier.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
	SeverityOK       Severity = "ok"
)

// Score thresholds for tier classification. These are load-bearing
// constants shared with downstream consumers, not tunable per call.
const (
	blockingThreshold = 30
	portableThreshold = 50
)

// Issue is one fired detection rule.
type Issue struct {
	Category    string `json:"category"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
	Blocker     bool   `json:"blocker"`
}

// Result is the complete output of one scoring call.
// Immutable once computed; issue order matches rule evaluation order.
type Result struct {
	Score           int      `json:"score"`
	CanPort         bool     `json:"canPort"`
	Severity        Severity `json:"severity"`
	Issues          []Issue  `json:"issues"`
	Recommendation  string   `json:"recommendation"`
	EstimatedEffort string   `json:"estimatedEffort"`
}

// SeverityFromScore maps a score to its tier.
// 30 lands on the warning side of the boundary.
func SeverityFromScore(score int) Severity {
	switch {
	case score < blockingThreshold:
		return SeverityBlocking
	case score < portableThreshold:
		return SeverityWarning
	default:
		return SeverityOK
	}
}
