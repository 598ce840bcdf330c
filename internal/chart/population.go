package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ankek/dossier/internal/dataset"
)

// Population renders the horizontal bar chart of Jewish population by
// country on a logarithmic axis, with each bar colored by the country's UN
// voting stance.
func (r *Renderer) Population() ([]byte, error) {
	const (
		baseW = 1600
		baseH = 1200
	)
	c, err := newCanvas(r.px(baseW), r.px(baseH), r.theme.Palette)
	if err != nil {
		return nil, fmt.Errorf("population chart: %w", err)
	}

	w := float64(c.Width())
	h := float64(c.Height())
	s := r.theme.Scale

	left := 230.0 * s
	right := w - 170.0*s
	top := 110.0 * s
	bottom := h - 130.0*s

	// Log axis range chosen to clear the smallest series value (600).
	axisMin := math.Log10(400)
	axisMax := math.Log10(700000)
	xpos := func(v float64) float64 {
		return left + (math.Log10(v)-axisMin)/(axisMax-axisMin)*(right-left)
	}

	// Title.
	if err := c.useFont(true, 26*s); err != nil {
		return nil, err
	}
	c.text("Poblacion Judia en Europa (2024) y Postura ONU", c.pal.White, w/2, 50*s, 0.5, 0.5)

	// Vertical gridlines and tick labels at the powers of ten.
	if err := c.useFont(false, 15*s); err != nil {
		return nil, err
	}
	for _, tick := range []float64{1000, 10000, 100000} {
		x := xpos(tick)
		c.SetHexColor(c.pal.Grid)
		c.SetLineWidth(1)
		c.DrawLine(x, top, x, bottom)
		c.Stroke()
		c.text(FormatCount(int(tick)), c.pal.Slate, x, bottom+24*s, 0.5, 0.5)
	}

	// Axis lines.
	c.SetHexColor(c.pal.Slate)
	c.SetLineWidth(2)
	c.DrawLine(left, top, left, bottom)
	c.DrawLine(left, bottom, right, bottom)
	c.Stroke()

	// Bars, largest population first, as in the source ordering.
	rows := len(dataset.Countries)
	rowH := (bottom - top) / float64(rows)
	barH := rowH * 0.7

	for i, name := range dataset.Countries {
		pop := dataset.Populations[i]
		y := top + float64(i)*rowH + (rowH-barH)/2

		c.hbar(left, y, xpos(float64(pop))-left, barH, c.pal.StanceColor(dataset.SupportLevel[i]))

		if err := c.useFont(false, 16*s); err != nil {
			return nil, err
		}
		c.text(name, c.pal.White, left-12*s, y+barH/2, 1, 0.4)

		if err := c.useFont(false, 13*s); err != nil {
			return nil, err
		}
		c.text(FormatCount(pop), c.pal.White, xpos(float64(pop))+10*s, y+barH/2, 0, 0.4)
	}

	// Axis label.
	if err := c.useFont(false, 17*s); err != nil {
		return nil, err
	}
	c.text("Poblacion Judia (escala logaritmica)", c.pal.Slate, (left+right)/2, bottom+64*s, 0.5, 0.5)

	entries := []legendEntry{
		{r.theme.Palette.Green, "Vota pro-Israel (En contra resoluciones)"},
		{r.theme.Palette.Amber, "Abstencion"},
		{r.theme.Palette.Red, "Vota contra Israel (A favor resoluciones)"},
	}
	if err := c.legend(entries, right-430*s, bottom-140*s); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode population chart: %w", err)
	}
	return buf.Bytes(), nil
}
