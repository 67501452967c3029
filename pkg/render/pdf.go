package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
)

// Page geometry in points, matching the A4 layout of the original report:
// 36pt margins, 80x80pt logo.
const (
	pdfMargin   = 36.0
	pdfPageW    = 595.28
	pdfPageH    = 841.89
	pdfLineH    = 14.0
	pdfCellPad  = 3.0
	pdfLogoSide = 80.0
)

// Brand palette for headers and table fills.
var (
	headerPurple = rgb{0x4B, 0x00, 0x82}
	traitFill    = rgb{0xED, 0xE7, 0xF6}
	chakraFill   = rgb{0xE8, 0xEA, 0xF6}
	gridGrey     = rgb{0x80, 0x80, 0x80}
	trackGrey    = rgb{0xEE, 0xEE, 0xEE}
)

type rgb struct{ r, g, b int }

// PDFRenderer serializes a report as a paginated A4 PDF. Every section
// starts a new page; tables wrap long cells and keep rows intact across
// page breaks.
type PDFRenderer struct{}

func (r *PDFRenderer) Render(w io.Writer, rep *report.Report) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p := &pdfPage{pdf: pdf, tr: tr}
	for _, sec := range rep.Sections {
		pdf.AddPage()
		switch s := sec.(type) {
		case *report.Cover:
			p.cover(s, rep.ID)
		case *report.Table:
			p.table(s)
		case *report.Bullets:
			p.bullets(s)
		case *report.Dashboard:
			p.dashboard(s)
		default:
			return &RenderError{Op: "pdf", Err: fmt.Errorf("unknown section kind %q", sec.SectionKind())}
		}
		if err := pdf.Error(); err != nil {
			return &RenderError{Op: "pdf", Err: err}
		}
	}

	if err := pdf.Output(w); err != nil {
		return &RenderError{Op: "pdf", Err: err}
	}
	return nil
}

// pdfPage carries the document state through section drawing.
type pdfPage struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (p *pdfPage) usableWidth() float64 { return pdfPageW - 2*pdfMargin }

func (p *pdfPage) title(text string) {
	p.pdf.SetFont("Helvetica", "B", 18)
	p.pdf.SetTextColor(headerPurple.r, headerPurple.g, headerPurple.b)
	p.pdf.CellFormat(p.usableWidth(), 26, p.tr(text), "", 1, "C", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.Ln(8)
}

func (p *pdfPage) cover(s *report.Cover, id string) {
	if len(s.Logo) > 0 {
		p.logo(s.Logo)
	}
	p.pdf.Ln(24)
	p.title(s.Title)
	if s.Subtitle != "" {
		p.pdf.SetFont("Helvetica", "I", 12)
		p.pdf.CellFormat(p.usableWidth(), pdfLineH, p.tr(s.Subtitle), "", 1, "C", false, 0, "")
	}
	p.pdf.Ln(30)

	p.pdf.SetFont("Helvetica", "", 12)
	labelW, valueW := 120.0, p.usableWidth()-120.0
	for _, f := range s.Fields {
		p.pdf.SetFont("Helvetica", "B", 12)
		p.pdf.CellFormat(labelW, 22, p.tr(f.Label), "1", 0, "L", false, 0, "")
		p.pdf.SetFont("Helvetica", "", 12)
		p.pdf.CellFormat(valueW, 22, p.tr(f.Value), "1", 1, "L", false, 0, "")
	}

	p.pdf.Ln(18)
	p.pdf.SetFont("Helvetica", "", 8)
	p.pdf.SetTextColor(120, 120, 120)
	p.pdf.CellFormat(p.usableWidth(), 10, p.tr("Report "+id), "", 1, "C", false, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
}

// logo embeds the uploaded image at a fixed 80x80pt. A byte blob that is
// not a PNG or JPEG is a render failure, not a silent skip.
func (p *pdfPage) logo(data []byte) {
	var imageType string
	switch http.DetectContentType(data) {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	default:
		p.pdf.SetError(fmt.Errorf("logo: unsupported image format"))
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	if info := p.pdf.RegisterImageOptionsReader("cover-logo", opts, bytes.NewReader(data)); info == nil {
		return // pdf error state already set
	}
	x := (pdfPageW - pdfLogoSide) / 2
	p.pdf.ImageOptions("cover-logo", x, pdfMargin, pdfLogoSide, pdfLogoSide, false, opts, 0, "")
	p.pdf.SetY(pdfMargin + pdfLogoSide)
}

func (p *pdfPage) table(s *report.Table) {
	p.title(s.Title)
	widths := p.scaleWidths(s.Widths, len(s.Columns))
	fill := traitFill
	if strings.HasPrefix(s.Title, "Chakra") {
		fill = chakraFill
	}
	p.tableHeader(s.Columns, widths, fill)
	for _, row := range s.Rows {
		p.tableRow(row, widths)
	}
	if s.Note != "" {
		p.pdf.Ln(16)
		p.pdf.SetFont("Helvetica", "", 10)
		p.pdf.MultiCell(p.usableWidth(), pdfLineH, p.tr(s.Note), "", "L", false)
	}
}

func (p *pdfPage) bullets(s *report.Bullets) {
	p.title(s.Title)
	p.pdf.SetFont("Helvetica", "", 12)
	for _, item := range s.Items {
		p.pdf.MultiCell(p.usableWidth(), pdfLineH+2, p.tr("• "+item), "", "L", false)
		p.pdf.Ln(4)
	}
}

func (p *pdfPage) dashboard(s *report.Dashboard) {
	p.title(s.Title)
	widths := p.scaleWidths(s.Widths, len(s.Columns))
	p.tableHeader(s.Columns, widths, chakraFill)
	for _, row := range s.Rows {
		p.tableRow(row, widths)
	}
	p.pdf.Ln(20)
	p.chart(s)
}

// chart draws one proportional bar per chakra on the fixed 0..AxisMax axis.
func (p *pdfPage) chart(s *report.Dashboard) {
	labelW := 90.0
	barW := p.usableWidth() - labelW - 40
	barH := 12.0

	p.pdf.SetFont("Helvetica", "", 10)
	for _, bar := range s.Bars {
		y := p.pdf.GetY()
		p.pdf.CellFormat(labelW, barH+4, p.tr(bar.Label), "", 0, "L", false, 0, "")

		p.pdf.SetFillColor(trackGrey.r, trackGrey.g, trackGrey.b)
		p.pdf.Rect(pdfMargin+labelW, y+2, barW, barH, "F")

		frac := bar.Value / s.AxisMax
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		c := parseHexColor(bar.Color)
		p.pdf.SetFillColor(c.r, c.g, c.b)
		p.pdf.Rect(pdfMargin+labelW, y+2, barW*frac, barH, "F")

		p.pdf.SetXY(pdfMargin+labelW+barW+6, y)
		p.pdf.CellFormat(34, barH+4, fmt.Sprintf("%.1f", bar.Value), "", 1, "L", false, 0, "")
	}
}

func (p *pdfPage) tableHeader(cols []string, widths []float64, fill rgb) {
	p.pdf.SetFont("Helvetica", "B", 11)
	p.pdf.SetFillColor(fill.r, fill.g, fill.b)
	p.pdf.SetDrawColor(gridGrey.r, gridGrey.g, gridGrey.b)
	for i, col := range cols {
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		p.pdf.CellFormat(widths[i], pdfLineH+6, p.tr(col), "1", last, "L", true, 0, "")
	}
}

// tableRow draws one row with wrapped cells, sized to the tallest cell.
// Rows never straddle a page break; a row that would overflow moves whole
// to the next page.
func (p *pdfPage) tableRow(row []string, widths []float64) {
	p.pdf.SetFont("Helvetica", "", 10)

	lines := make([][]string, len(row))
	maxLines := 1
	for i, cell := range row {
		lines[i] = p.pdf.SplitText(p.tr(cell), widths[i]-2*pdfCellPad)
		if len(lines[i]) > maxLines {
			maxLines = len(lines[i])
		}
	}
	rowH := float64(maxLines)*(pdfLineH-2) + 2*pdfCellPad

	if p.pdf.GetY()+rowH > pdfPageH-pdfMargin {
		p.pdf.AddPage()
	}

	x, y := pdfMargin, p.pdf.GetY()
	for i, cellLines := range lines {
		p.pdf.Rect(x, y, widths[i], rowH, "D")
		ly := y + pdfCellPad
		for _, line := range cellLines {
			p.pdf.Text(x+pdfCellPad, ly+pdfLineH-5, line)
			ly += pdfLineH - 2
		}
		x += widths[i]
	}
	p.pdf.SetXY(pdfMargin, y+rowH)
}

// scaleWidths converts relative column weights to absolute point widths
// across the usable page width, falling back to equal columns.
func (p *pdfPage) scaleWidths(weights []float64, cols int) []float64 {
	usable := p.usableWidth()
	if len(weights) != cols {
		even := make([]float64, cols)
		for i := range even {
			even[i] = usable / float64(cols)
		}
		return even
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := make([]float64, cols)
	for i, w := range weights {
		out[i] = w / total * usable
	}
	return out
}

// parseHexColor reads "#RRGGBB"; anything else comes back grey.
func parseHexColor(s string) rgb {
	var c rgb
	if len(s) != 7 || s[0] != '#' {
		return rgb{0x66, 0x66, 0x66}
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.r, &c.g, &c.b); err != nil {
		return rgb{0x66, 0x66, 0x66}
	}
	return c
}
