package portability

import (
	"fmt"
	"strings"
)

// buildRecommendation renders the human-facing narrative and the short
// effort string for a finished evaluation. Pure function of
// (score, severity, issues); all numbers derive from the issue list, so
// repeated calls are byte-stable.
func buildRecommendation(score int, severity Severity, issues []Issue) (recommendation, effort string) {
	switch severity {
	case SeverityBlocking:
		return blockingRecommendation(score, issues)
	case SeverityWarning:
		return warningRecommendation(score, issues)
	default:
		return okRecommendation(score, issues)
	}
}

func blockingRecommendation(score int, issues []Issue) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Portability score: %d/100.\n\nBlocking issues:\n", score)
	for _, issue := range issues {
		if issue.Blocker {
			fmt.Fprintf(&b, "  - %s\n", issue.Description)
		}
	}
	b.WriteString("\nAutomatic conversion is not viable for this application. ")
	b.WriteString("Rebuild the backend as a stateless web service targeting App Service instead of porting the existing code. ")
	b.WriteString("Porting and fixing the blockers would take roughly 6-10 weeks; a fresh rebuild of the server side is typically 2-4 weeks and produces a cleaner result.")
	return b.String(), "Rebuild: 2-4 weeks (porting would take 6-10 weeks)"
}

func warningRecommendation(score int, issues []Issue) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Portability score: %d/100.\n\nIssues to address:\n", score)
	for _, issue := range issues {
		fmt.Fprintf(&b, "  - [-%d %s] %s\n", issue.Impact, issue.Category, issue.Description)
	}
	b.WriteString("\nThe application can be ported, but expect heavy manual work after the automated conversion. ")
	b.WriteString("Porting with fixes is estimated at 2-4 weeks; a targeted rebuild of the server layer is estimated at 3-5 weeks. ")
	b.WriteString("Either path is defensible — decide based on how much of the existing code is worth keeping.")
	return b.String(), "2-4 weeks (port and fix) or 3-5 weeks (rebuild)"
}

func okRecommendation(score int, issues []Issue) (string, string) {
	if len(issues) == 0 {
		rec := fmt.Sprintf("Portability score: %d/100.\n\nNo compatibility issues detected. The automated conversion should handle the migration end to end.", score)
		return rec, "No manual work expected"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Portability score: %d/100.\n\nManual cleanup after conversion:\n", score)
	for _, issue := range issues {
		fmt.Fprintf(&b, "  - %s\n", issue.Description)
	}
	low, high := 2*len(issues), 4*len(issues)
	fmt.Fprintf(&b, "\nThe automated conversion will handle most of the changes; the items above need manual follow-up. Estimated manual effort: %d-%d hours.", low, high)
	return b.String(), fmt.Sprintf("%d-%d hours of manual cleanup", low, high)
}
