package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ankek/dossier/internal/theme"
)

func setText(pdf *fpdf.Fpdf, hexColor string) {
	r, g, b := theme.RGB(hexColor)
	pdf.SetTextColor(r, g, b)
}

func setFill(pdf *fpdf.Fpdf, hexColor string) {
	r, g, b := theme.RGB(hexColor)
	pdf.SetFillColor(r, g, b)
}

func setDraw(pdf *fpdf.Fpdf, hexColor string) {
	r, g, b := theme.RGB(hexColor)
	pdf.SetDrawColor(r, g, b)
}

// Heading is a one-line colored title. Size is in points, spacing in mm.
type Heading struct {
	Text        string
	Color       string
	Size        float64
	Align       string // "L" (default) or "C"
	SpaceBefore float64
	SpaceAfter  float64
}

func (h Heading) lineH() float64 { return h.Size * 0.48 }

func (h Heading) height(pdf *fpdf.Fpdf) float64 {
	return h.SpaceBefore + h.lineH() + h.SpaceAfter
}

func (h Heading) breakable() bool { return false }

func (h Heading) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	align := h.Align
	if align == "" {
		align = "L"
	}
	if h.SpaceBefore > 0 {
		pdf.Ln(h.SpaceBefore)
	}
	pdf.SetFont("Helvetica", "B", h.Size)
	setText(pdf, h.Color)
	pdf.CellFormat(0, h.lineH(), h.Text, "", 1, align, false, 0, "")
	if h.SpaceAfter > 0 {
		pdf.Ln(h.SpaceAfter)
	}
	return nil
}

// Paragraph is flowing body text. Paragraphs are the only blocks allowed to
// split across pages.
type Paragraph struct {
	Text       string
	Color      string
	Size       float64
	LineH      float64 // mm per text line
	Align      string  // "J" (default), "L", "C"
	Bold       bool
	SpaceAfter float64
}

func (p Paragraph) style() string {
	if p.Bold {
		return "B"
	}
	return ""
}

func (p Paragraph) height(pdf *fpdf.Fpdf) float64 {
	pdf.SetFont("Helvetica", p.style(), p.Size)
	lines := pdf.SplitText(p.Text, contentW)
	return float64(len(lines))*p.LineH + p.SpaceAfter
}

func (p Paragraph) breakable() bool { return true }

func (p Paragraph) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	align := p.Align
	if align == "" {
		align = "J"
	}
	pdf.SetFont("Helvetica", p.style(), p.Size)
	setText(pdf, p.Color)
	pdf.MultiCell(contentW, p.LineH, p.Text, "", align, false)
	if p.SpaceAfter > 0 {
		pdf.Ln(p.SpaceAfter)
	}
	return nil
}

// Highlight is a bordered callout box. Its background is the border color
// darkened, per the dossier styling.
type Highlight struct {
	Text       string
	Border     string
	SpaceAfter float64
}

const (
	highlightPad   = 3.5
	highlightLineH = 4.6
)

func (hl Highlight) height(pdf *fpdf.Fpdf) float64 {
	pdf.SetFont("Helvetica", "", 9.5)
	lines := pdf.SplitText(hl.Text, contentW-2*highlightPad)
	return float64(len(lines))*highlightLineH + 2*highlightPad + hl.SpaceAfter
}

func (hl Highlight) breakable() bool { return false }

func (hl Highlight) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	pdf.SetFont("Helvetica", "", 9.5)
	lines := pdf.SplitText(hl.Text, contentW-2*highlightPad)
	boxH := float64(len(lines))*highlightLineH + 2*highlightPad

	y := pdf.GetY()
	setFill(pdf, theme.Darken(hl.Border, 72))
	setDraw(pdf, hl.Border)
	pdf.SetLineWidth(0.35)
	pdf.Rect(margin, y, contentW, boxH, "FD")

	setText(pdf, pal.White)
	pdf.SetXY(margin+highlightPad, y+highlightPad)
	pdf.MultiCell(contentW-2*highlightPad, highlightLineH, hl.Text, "", "J", false)
	pdf.SetXY(margin, y+boxH+hl.SpaceAfter)
	return nil
}

// Image places an in-memory PNG, horizontally centered. W and H are in mm;
// Name must be unique within a document.
type Image struct {
	Name       string
	PNG        []byte
	W, H       float64
	SpaceAfter float64
}

func (im Image) height(pdf *fpdf.Fpdf) float64 { return im.H + im.SpaceAfter }

func (im Image) breakable() bool { return false }

func (im Image) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	if len(im.PNG) == 0 {
		return fmt.Errorf("image %s is empty", im.Name)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(im.Name, opts, bytes.NewReader(im.PNG))
	x := (pageWidth - im.W) / 2
	pdf.ImageOptions(im.Name, x, 0, im.W, im.H, true, opts, 0, "")
	if im.SpaceAfter > 0 {
		pdf.Ln(im.SpaceAfter)
	}
	return nil
}

// Table is a bordered grid with a bold header row and zebra-striped body.
// CellColor, when set, overrides the text color of individual body cells.
type Table struct {
	Header     []string
	Rows       [][]string
	ColW       []float64
	Aligns     []string // per column: "L", "C", "R"
	CellColor  func(row, col int) string
	SpaceAfter float64
}

const tableRowH = 6.5

func (t Table) height(pdf *fpdf.Fpdf) float64 {
	return float64(len(t.Rows)+1)*tableRowH + t.SpaceAfter
}

func (t Table) breakable() bool { return false }

func (t Table) align(col int) string {
	if col < len(t.Aligns) && t.Aligns[col] != "" {
		return t.Aligns[col]
	}
	return "L"
}

func (t Table) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	if len(t.ColW) != len(t.Header) {
		return fmt.Errorf("table has %d columns but %d widths", len(t.Header), len(t.ColW))
	}

	tableW := 0.0
	for _, w := range t.ColW {
		tableW += w
	}
	indent := (contentW - tableW) / 2
	setDraw(pdf, pal.Grid)
	pdf.SetLineWidth(0.2)

	// Header row.
	pdf.SetX(margin + indent)
	pdf.SetFont("Helvetica", "B", 8)
	setFill(pdf, pal.Grid)
	setText(pdf, pal.White)
	for c, cell := range t.Header {
		pdf.CellFormat(t.ColW[c], tableRowH, cell, "1", 0, t.align(c), true, 0, "")
	}
	pdf.Ln(tableRowH)

	pdf.SetFont("Helvetica", "", 8)
	for rIdx, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("table row %d has %d cells, want %d", rIdx, len(row), len(t.Header))
		}
		if rIdx%2 == 0 {
			setFill(pdf, pal.BGPanel)
		} else {
			setFill(pdf, pal.RowAlt)
		}
		pdf.SetX(margin + indent)
		for c, cell := range row {
			color := pal.Body
			if t.CellColor != nil {
				if over := t.CellColor(rIdx, c); over != "" {
					color = over
				}
			}
			setText(pdf, color)
			pdf.CellFormat(t.ColW[c], tableRowH, cell, "1", 0, t.align(c), true, 0, "")
		}
		pdf.Ln(tableRowH)
	}

	if t.SpaceAfter > 0 {
		pdf.Ln(t.SpaceAfter)
	}
	return nil
}

// StatCell is one panel of a StatGrid: a large colored figure over a caption
// and a smaller sub-caption.
type StatCell struct {
	Value   string
	Caption string
	Sub     string
	Color   string
}

// StatGrid lays its cells out in one row of equal-width panels.
type StatGrid struct {
	Cells      []StatCell
	SpaceAfter float64
}

const statGridH = 26.0

func (sg StatGrid) height(pdf *fpdf.Fpdf) float64 { return statGridH + sg.SpaceAfter }

func (sg StatGrid) breakable() bool { return false }

func (sg StatGrid) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	if len(sg.Cells) == 0 {
		return fmt.Errorf("stat grid has no cells")
	}

	cellW := contentW / float64(len(sg.Cells))
	y := pdf.GetY()

	// Panel edges are the panel color lightened, mirroring how highlight
	// backgrounds are the border color darkened.
	setDraw(pdf, theme.Lighten(pal.BGPanel, 30))
	pdf.SetLineWidth(0.25)
	for i, cell := range sg.Cells {
		x := margin + float64(i)*cellW
		setFill(pdf, pal.BGPanel)
		pdf.Rect(x, y, cellW, statGridH, "FD")

		pdf.SetFont("Helvetica", "B", 19)
		setText(pdf, cell.Color)
		pdf.SetXY(x, y+4)
		pdf.CellFormat(cellW, 9, cell.Value, "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, pal.Slate)
		pdf.SetXY(x, y+15)
		pdf.CellFormat(cellW, 4, cell.Caption, "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 6)
		pdf.SetXY(x, y+19.5)
		pdf.CellFormat(cellW, 3.5, cell.Sub, "", 0, "C", false, 0, "")
	}

	pdf.SetXY(margin, y+statGridH+sg.SpaceAfter)
	return nil
}

// Spacer is fixed vertical whitespace in mm.
type Spacer struct {
	H float64
}

func (s Spacer) height(pdf *fpdf.Fpdf) float64 { return s.H }

func (s Spacer) breakable() bool { return false }

func (s Spacer) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	pdf.Ln(s.H)
	return nil
}

// PageBreak unconditionally starts a new page.
type PageBreak struct{}

func (PageBreak) height(pdf *fpdf.Fpdf) float64 { return 0 }

func (PageBreak) breakable() bool { return false }

func (PageBreak) render(pdf *fpdf.Fpdf, pal theme.Palette) error {
	pdf.AddPage()
	return nil
}
