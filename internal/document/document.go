// Package document implements the dossier's layout engine: an ordered list
// of styled blocks (headings, paragraphs, tables, images, stat panels,
// spacers, page breaks) paginated onto dark A4 pages by go-pdf/fpdf.
//
// Blocks are appended to a Builder in reading order and never reordered. On
// Build, each block reports its height; a block that will not fit in the
// remaining page space starts a new page. Only paragraphs may split across
// pages, where they flow naturally under fpdf's auto page break.
package document

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ankek/dossier/internal/theme"
)

// A4 geometry in millimeters.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 15.0
	contentW   = pageWidth - 2*margin
)

// Block is one unit of document content.
type Block interface {
	// height reports the vertical space the block needs, in mm. Used for
	// the keep-together page break decision.
	height(pdf *fpdf.Fpdf) float64

	// render draws the block at the current position.
	render(pdf *fpdf.Fpdf, pal theme.Palette) error

	// breakable blocks may split across a page boundary.
	breakable() bool
}

// Builder accumulates blocks and paginates them into a PDF.
type Builder struct {
	theme  *theme.Theme
	blocks []Block
}

// NewBuilder creates an empty Builder styled with the given theme.
func NewBuilder(th *theme.Theme) *Builder {
	return &Builder{theme: th}
}

// Add appends blocks in order.
func (b *Builder) Add(blocks ...Block) *Builder {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// Len reports the number of appended blocks.
func (b *Builder) Len() int {
	return len(b.blocks)
}

// Build paginates the block list and writes the PDF to w.
func (b *Builder) Build(w io.Writer) error {
	pdf, err := b.layout()
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// BuildFile paginates the block list and writes the PDF to path.
func (b *Builder) BuildFile(path string) error {
	pdf, err := b.layout()
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

func (b *Builder) layout() (*fpdf.Fpdf, error) {
	pal := b.theme.Palette

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	// Every page gets the dark background before any content.
	pdf.SetHeaderFunc(func() {
		r, g, bl := theme.RGB(pal.BGDark)
		pdf.SetFillColor(r, g, bl)
		pdf.Rect(0, 0, pageWidth, pageHeight, "F")
		pdf.SetY(margin)
	})

	pdf.AddPage()

	maxY := pageHeight - margin
	for i, block := range b.blocks {
		h := block.height(pdf)
		if !block.breakable() && pdf.GetY()+h > maxY && h <= maxY-margin {
			pdf.AddPage()
		}
		if err := block.render(pdf, pal); err != nil {
			return nil, fmt.Errorf("failed to render block %d: %w", i, err)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("failed to render block %d: %w", i, pdf.Error())
		}
	}

	return pdf, nil
}
