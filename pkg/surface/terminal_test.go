package surface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/portvet/portvet/pkg/portability"
)

func sampleResult() *portability.Result {
	return &portability.Result{
		Score:    45,
		CanPort:  false,
		Severity: portability.SeverityWarning,
		Issues: []portability.Issue{
			{Category: "security", Impact: 30, Description: "No authentication mechanism detected"},
			{Category: "config", Impact: 5, Description: "No CORS configuration detected", Blocker: false},
		},
		Recommendation:  "Portability score: 45/100.\n\nThe application can be ported with manual work.",
		EstimatedEffort: "2-4 weeks (port and fix) or 3-5 weeks (rebuild)",
	}
}

func TestTerminalRender(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := &TerminalRenderer{}
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Portability: 45/100 — warning",
		"(-30 security) No authentication mechanism detected",
		"(-5 config) No CORS configuration detected",
		"Estimated effort: 2-4 weeks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("output contains ANSI codes despite NO_COLOR")
	}
}

func TestTerminalRenderNoIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := &portability.Result{
		Score:           100,
		CanPort:         true,
		Severity:        portability.SeverityOK,
		Recommendation:  "Portability score: 100/100.",
		EstimatedEffort: "No manual work expected",
	}

	var buf bytes.Buffer
	if err := (&TerminalRenderer{}).Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found.") {
		t.Errorf("output missing no-issues line:\n%s", buf.String())
	}
}

func TestMarkdownSummary(t *testing.T) {
	r := &MarkdownRenderer{}
	out := r.BuildSummary(sampleResult())

	for _, want := range []string{
		"## Portability: 45/100 (warning)",
		"| security | -30 |",
		"**Estimated effort:**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
