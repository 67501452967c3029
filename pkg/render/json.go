package render

import (
	"encoding/json"
	"io"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
)

// JSONRenderer marshals the report to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, rep *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return &RenderError{Op: "json", Err: err}
	}
	return nil
}
