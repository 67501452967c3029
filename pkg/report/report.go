// Package report assembles scored questionnaire results into an ordered
// sequence of typed document sections. Renderers consume the Report; each
// section boundary is a hard page break in paginated output.
package report

// SectionKind discriminates section types for renderers and JSON output.
type SectionKind string

const (
	KindCover     SectionKind = "cover"
	KindTable     SectionKind = "table"
	KindBullets   SectionKind = "bullets"
	KindDashboard SectionKind = "dashboard"
)

// Section is one page-break-delimited unit of the final document.
type Section interface {
	SectionKind() SectionKind
}

// Field is one label/value pair on the cover page.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Cover is the title page: optional logo, title, and the client metadata.
type Cover struct {
	Kind     SectionKind `json:"kind"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Logo     []byte      `json:"-"`
	Fields   []Field     `json:"fields"`
}

func (c *Cover) SectionKind() SectionKind { return KindCover }

// Table is a multi-column table section with a styled header row. Cell
// values are pre-formatted strings; numeric formatting happens at assembly.
type Table struct {
	Kind    SectionKind `json:"kind"`
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Widths  []float64   `json:"widths,omitempty"` // relative column weights
	Rows    [][]string  `json:"rows"`
	Note    string      `json:"note,omitempty"`
}

func (t *Table) SectionKind() SectionKind { return KindTable }

// Bullets is a titled list of static paragraph lines.
type Bullets struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title"`
	Items []string    `json:"items"`
}

func (b *Bullets) SectionKind() SectionKind { return KindBullets }

// Bar is one entry of a dashboard chart: a value on a fixed axis plus its
// percentage form and brand color.
type Bar struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent int     `json:"percent"`
	Color   string  `json:"color"`
}

// Dashboard is the chakra overview: a status table plus an aggregate bar
// chart of all seven averages on the 0-7 axis.
type Dashboard struct {
	Kind    SectionKind `json:"kind"`
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Widths  []float64   `json:"widths,omitempty"`
	Rows    [][]string  `json:"rows"`
	AxisMax float64     `json:"axis_max"`
	Bars    []Bar       `json:"bars"`
}

func (d *Dashboard) SectionKind() SectionKind { return KindDashboard }

// Report is the final assembled artifact, built once per invocation and
// handed to a renderer for serialization.
type Report struct {
	ID       string    `json:"id"`
	Sections []Section `json:"sections"`
}

// Metadata is the client-supplied cover information. Every field is
// optional; empty fields render as the placeholder dash.
type Metadata struct {
	Client string `json:"client" yaml:"client"`
	Coach  string `json:"coach" yaml:"coach"`
	Date   string `json:"date" yaml:"date"`
	Gender string `json:"gender" yaml:"gender"`
	Intent string `json:"intent" yaml:"intent"`
}

// placeholder stands in for any missing metadata field.
const placeholder = "—"

// orDash centralizes the missing-field policy: metadata gaps become a dash,
// they are never errors.
func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
