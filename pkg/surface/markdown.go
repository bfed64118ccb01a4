package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/portvet/portvet/pkg/portability"
)

// MarkdownRenderer produces a Markdown summary suitable for pasting into a
// pull request or a migration ticket.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *portability.Result) error {
	_, err := io.WriteString(w, r.BuildSummary(result))
	return err
}

// BuildSummary renders the Markdown body for a result.
func (r *MarkdownRenderer) BuildSummary(result *portability.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Portability: %d/100 (%s)\n\n", result.Score, result.Severity))

	if len(result.Issues) > 0 {
		sb.WriteString("| Category | Impact | Blocker | Finding |\n")
		sb.WriteString("|----------|--------|---------|--------|\n")
		for _, issue := range result.Issues {
			blocker := ""
			if issue.Blocker {
				blocker = "yes"
			}
			sb.WriteString(fmt.Sprintf("| %s | -%d | %s | %s |\n",
				issue.Category, issue.Impact, blocker, issue.Description))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No compatibility issues found.\n\n")
	}

	sb.WriteString(result.Recommendation)
	sb.WriteString(fmt.Sprintf("\n\n**Estimated effort:** %s\n", result.EstimatedEffort))

	return sb.String()
}
