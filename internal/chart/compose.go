package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/ankek/dossier/internal/theme"
)

// composePanels lays two encoded panel images side by side on a shared dark
// canvas, with a suptitle band across the top, and re-encodes the result.
func composePanels(left, right []byte, suptitle string, pal theme.Palette, scale float64) ([]byte, error) {
	leftImg, err := png.Decode(bytes.NewReader(left))
	if err != nil {
		return nil, fmt.Errorf("failed to decode left panel: %w", err)
	}
	rightImg, err := png.Decode(bytes.NewReader(right))
	if err != nil {
		return nil, fmt.Errorf("failed to decode right panel: %w", err)
	}

	band := int(90 * scale)
	lb := leftImg.Bounds()
	rb := rightImg.Bounds()
	w := lb.Dx() + rb.Dx()
	h := maxInt(lb.Dy(), rb.Dy()) + band

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{theme.MustHex(pal.BGDark)}, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, band, lb.Dx(), band+lb.Dy()), leftImg, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), band, w, band+rb.Dy()), rightImg, rb.Min, draw.Src)

	if err := loadFonts(); err != nil {
		return nil, err
	}
	fc, err := face(boldFont, 26*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to build suptitle face: %w", err)
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(fc)
	dc.SetHexColor(pal.White)
	dc.DrawStringAnchored(suptitle, float64(w)/2, float64(band)/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode composed chart: %w", err)
	}
	return buf.Bytes(), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
