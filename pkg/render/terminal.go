package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// TerminalRenderer writes the report as colored plain text. Page breaks
// become blank-line separators; the bar chart becomes block-character bars.
type TerminalRenderer struct{}

var (
	headStyle   = color.New(color.Bold)
	dimStyle    = color.New(color.Faint)
	statusStyle = map[scoring.Status]*color.Color{
		scoring.StatusBlocked:    color.New(color.FgRed),
		scoring.StatusBalanced:   color.New(color.FgGreen),
		scoring.StatusOveractive: color.New(color.FgYellow),
	}
)

func (r *TerminalRenderer) Render(w io.Writer, rep *report.Report) error {
	for i, sec := range rep.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		switch s := sec.(type) {
		case *report.Cover:
			r.cover(w, s, rep.ID)
		case *report.Table:
			r.table(w, s)
		case *report.Bullets:
			r.bullets(w, s)
		case *report.Dashboard:
			r.dashboard(w, s)
		default:
			return &RenderError{Op: "text", Err: fmt.Errorf("unknown section kind %q", sec.SectionKind())}
		}
	}
	return nil
}

func (r *TerminalRenderer) cover(w io.Writer, s *report.Cover, id string) {
	fmt.Fprintln(w, headStyle.Sprint(s.Title))
	if s.Subtitle != "" {
		fmt.Fprintln(w, s.Subtitle)
	}
	fmt.Fprintln(w)
	for _, f := range s.Fields {
		fmt.Fprintf(w, "  %-8s %s\n", f.Label+":", f.Value)
	}
	fmt.Fprintf(w, "  %-8s %s\n", "Report:", dimStyle.Sprint(id))
}

func (r *TerminalRenderer) table(w io.Writer, s *report.Table) {
	fmt.Fprintln(w, headStyle.Sprint(s.Title))
	for _, row := range s.Rows {
		fmt.Fprintf(w, "  %-14s %8s  %s\n", row[0], row[1], strings.Join(row[2:], " · "))
	}
	if s.Note != "" {
		fmt.Fprintln(w, dimStyle.Sprint("  "+s.Note))
	}
}

func (r *TerminalRenderer) bullets(w io.Writer, s *report.Bullets) {
	fmt.Fprintln(w, headStyle.Sprint(s.Title))
	for _, item := range s.Items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
}

func (r *TerminalRenderer) dashboard(w io.Writer, s *report.Dashboard) {
	fmt.Fprintln(w, headStyle.Sprint(s.Title))
	for _, row := range s.Rows {
		status := scoring.Status(row[3])
		styled := row[3]
		if c, ok := statusStyle[status]; ok {
			styled = c.Sprint(row[3])
		}
		fmt.Fprintf(w, "  %-13s %5s %5s  %s — %s\n", row[0], row[1], row[2], styled, dimStyle.Sprint(row[4]))
	}
	fmt.Fprintln(w)
	for _, bar := range s.Bars {
		fmt.Fprintf(w, "  %-13s %s %.1f\n", bar.Label, gauge(bar.Value, s.AxisMax, 28), bar.Value)
	}
}

// gauge draws a fixed-width block bar for value on a 0..max axis.
func gauge(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := int(value / max * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
