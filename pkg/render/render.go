// Package render defines output rendering for assembled reports.
// Implementations handle different targets: PDF, terminal, JSON.
package render

import (
	"fmt"
	"io"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
)

// Renderer serializes a report to a writer. Rendering is atomic: on error
// the caller must treat whatever was written as garbage, there is no
// partial-document contract.
type Renderer interface {
	Render(w io.Writer, rep *report.Report) error
}

// RenderError wraps a failure in a rendering backend. Fatal for the
// invocation; never produces a partial artifact.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ForFormat returns the renderer for a format name: "pdf", "text" or "json".
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "pdf":
		return &PDFRenderer{}, nil
	case "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want pdf, text or json)", format)
	}
}
