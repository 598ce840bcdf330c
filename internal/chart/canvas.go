package chart

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ankek/dossier/internal/theme"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse regular font: %w", fontErr)
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// face builds a font face at the given point size.
func face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// canvas wraps a gg context with the dossier palette and a small set of
// typeface helpers shared by the hand-drawn figures.
type canvas struct {
	*gg.Context
	pal theme.Palette
}

// newCanvas creates a canvas of the given pixel size filled with the dark
// background.
func newCanvas(w, h int, pal theme.Palette) (*canvas, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(pal.BGDark)
	dc.Clear()

	return &canvas{Context: dc, pal: pal}, nil
}

// useFont switches the drawing face. Size is in points at 72 dpi, so it is
// also the pixel height.
func (c *canvas) useFont(bold bool, size float64) error {
	f := regularFont
	if bold {
		f = boldFont
	}
	fc, err := face(f, size)
	if err != nil {
		return fmt.Errorf("failed to build font face: %w", err)
	}
	c.SetFontFace(fc)
	return nil
}

// text draws s anchored at (x, y); ax/ay follow gg conventions (0 left/top,
// 0.5 center, 1 right/bottom).
func (c *canvas) text(s, hexColor string, x, y, ax, ay float64) {
	c.SetHexColor(hexColor)
	c.DrawStringAnchored(s, x, y, ax, ay)
}

// hbar draws one horizontal bar with a thin white edge, the way every bar in
// the dossier is styled.
func (c *canvas) hbar(x, y, w, h float64, hexColor string) {
	c.SetHexColor(hexColor)
	c.DrawRectangle(x, y, w, h)
	c.FillPreserve()
	c.SetHexColor("#ffffff")
	c.SetLineWidth(1)
	c.Stroke()
}

// legendEntry is one swatch + label pair of a chart legend.
type legendEntry struct {
	color string
	label string
}

// legend draws a boxed legend with its top-left corner at (x, y).
func (c *canvas) legend(entries []legendEntry, x, y float64) error {
	if err := c.useFont(false, 15); err != nil {
		return err
	}

	const (
		pad     = 12.0
		swatch  = 16.0
		lineGap = 26.0
	)

	maxW := 0.0
	for _, e := range entries {
		if w, _ := c.MeasureString(e.label); w > maxW {
			maxW = w
		}
	}
	boxW := pad + swatch + 8 + maxW + pad
	boxH := pad*2 + lineGap*float64(len(entries)-1) + swatch

	c.SetHexColor(c.pal.BGPanel)
	c.DrawRectangle(x, y, boxW, boxH)
	c.FillPreserve()
	c.SetHexColor(c.pal.Slate)
	c.SetLineWidth(1)
	c.Stroke()

	for i, e := range entries {
		ey := y + pad + float64(i)*lineGap
		c.SetHexColor(e.color)
		c.DrawRectangle(x+pad, ey, swatch, swatch)
		c.Fill()
		c.text(e.label, c.pal.White, x+pad+swatch+8, ey+swatch/2, 0, 0.4)
	}
	return nil
}
