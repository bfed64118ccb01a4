package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/portvet/portvet/pkg/portability"
)

// TerminalRenderer renders a Result as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func severityColor(sev portability.Severity) string {
	if noColor() {
		return ""
	}
	switch sev {
	case portability.SeverityOK:
		return colorGreen
	case portability.SeverityWarning:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *portability.Result) error {
	sc := severityColor(result.Severity)

	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Portability: %s/100 — %s",
			colored(fmt.Sprintf("%d", result.Score), sc),
			colored(string(result.Severity), sc))))

	if len(result.Issues) > 0 {
		fmt.Fprintln(w, "Issues:")
		for _, issue := range result.Issues {
			marker := "•"
			if issue.Blocker {
				marker = colored("✖", colorRed)
			}
			fmt.Fprintf(w, "  %s (-%d %s) %s\n", marker, issue.Impact, issue.Category, issue.Description)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No issues found.")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, bold("Recommendation:"))
	for _, paragraph := range strings.Split(result.Recommendation, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			fmt.Fprintln(w)
			continue
		}
		for _, line := range wrapText(paragraph, 78) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Estimated effort: %s\n", dim(result.EstimatedEffort))

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
