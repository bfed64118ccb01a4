package portability

import "fmt"

// Score evaluates the rule table against the supplied files and returns a
// complete, immutable Result. It is a pure function: the same file list
// always produces a byte-identical result, and it never fails. A repo
// that cannot be ported is reported as data, not as an error.
//
// The caller must supply finalized {path, content} records and must not
// mutate the slice while the call runs.
func Score(files []RepositoryFile) *Result {
	manifest := parseManifest(files)

	// Tier-0: a desktop framework dependency zeroes the score outright.
	// This is the only rule allowed to short-circuit the evaluation.
	if name, ok := detectDesktopFramework(manifest); ok {
		issue := Issue{
			Category:    "architecture",
			Impact:      100,
			Description: fmt.Sprintf("Built on %s, a desktop application framework that cannot run on App Service", name),
			Blocker:     true,
		}
		return finalize(0, []Issue{issue})
	}

	ec := &evalContext{
		files:         files,
		manifest:      manifest,
		hasHTTPServer: detectHTTPServer(files, manifest),
	}

	score := 100
	issues := []Issue{}
	for _, r := range ruleTable {
		if r.needsServer && !ec.hasHTTPServer {
			continue
		}
		fired, desc := r.detect(ec)
		if !fired {
			continue
		}
		score -= r.weight
		// Blocker is a judgment of the cumulative damage at firing time,
		// not a static property of the rule.
		issues = append(issues, Issue{
			Category:    r.category,
			Impact:      r.weight,
			Description: desc,
			Blocker:     score < blockingThreshold,
		})
	}

	if score < 0 {
		score = 0
	}
	return finalize(score, issues)
}

func finalize(score int, issues []Issue) *Result {
	severity := SeverityFromScore(score)
	recommendation, effort := buildRecommendation(score, severity, issues)
	return &Result{
		Score:           score,
		CanPort:         score >= portableThreshold,
		Severity:        severity,
		Issues:          issues,
		Recommendation:  recommendation,
		EstimatedEffort: effort,
	}
}
