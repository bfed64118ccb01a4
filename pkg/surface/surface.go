// Package surface defines output rendering for portability results.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"io"

	"github.com/portvet/portvet/pkg/portability"
)

// Renderer produces formatted output from a portability Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *portability.Result) error
}
