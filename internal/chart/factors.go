package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ankek/dossier/internal/dataset"
	"github.com/ankek/dossier/internal/theme"
)

// Factors renders the radar chart of the relative weight of each factor
// driving national support for Israel.
func (r *Renderer) Factors() ([]byte, error) {
	const base = 1200
	c, err := newCanvas(r.px(base), r.px(base), r.theme.Palette)
	if err != nil {
		return nil, fmt.Errorf("factors chart: %w", err)
	}

	s := r.theme.Scale
	w := float64(c.Width())
	cx := w / 2
	cy := w/2 + 30*s
	radius := w*0.5 - 190*s

	n := len(dataset.FactorLabels)
	// Axis i points outward at angle(i), starting straight up and moving
	// counter-clockwise, matching the source figure.
	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, v float64) (float64, float64) {
		rr := radius * v / 100
		return cx + rr*math.Cos(angle(i)), cy + rr*math.Sin(angle(i))
	}

	// Title.
	if err := c.useFont(true, 24*s); err != nil {
		return nil, err
	}
	c.text("Factores Determinantes del Apoyo a Israel", c.pal.White, cx, 44*s, 0.5, 0.5)
	if err := c.useFont(false, 16*s); err != nil {
		return nil, err
	}
	c.text("(Peso relativo segun literatura academica)", c.pal.Slate, cx, 78*s, 0.5, 0.5)

	// Radial grid rings at 25/50/75/100 and the spoke lines.
	c.SetLineWidth(1)
	for _, ring := range []float64{25, 50, 75, 100} {
		c.SetHexColor(c.pal.Grid)
		c.DrawCircle(cx, cy, radius*ring/100)
		c.Stroke()
	}
	for i := 0; i < n; i++ {
		x, y := point(i, 100)
		c.SetHexColor(c.pal.Grid)
		c.DrawLine(cx, cy, x, y)
		c.Stroke()
	}

	// Ring value labels up the vertical axis.
	if err := c.useFont(false, 13*s); err != nil {
		return nil, err
	}
	for _, ring := range []float64{25, 50, 75, 100} {
		c.text(fmt.Sprintf("%.0f", ring), c.pal.Slate, cx+8*s, cy-radius*ring/100, 0, 0.4)
	}

	// Filled data polygon.
	c.NewSubPath()
	for i := range dataset.FactorWeights {
		x, y := point(i, dataset.FactorWeights[i])
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	pc := theme.MustHex(r.theme.Palette.Purple)
	c.SetRGBA255(int(pc.R), int(pc.G), int(pc.B), 64)
	c.FillPreserve()
	c.SetHexColor(r.theme.Palette.Purple)
	c.SetLineWidth(3.5 * s)
	c.Stroke()

	// Vertex markers with white edges.
	for i := range dataset.FactorWeights {
		x, y := point(i, dataset.FactorWeights[i])
		c.SetHexColor(r.theme.Palette.Purple)
		c.DrawCircle(x, y, 9*s)
		c.FillPreserve()
		c.SetHexColor("#ffffff")
		c.SetLineWidth(2 * s)
		c.Stroke()
	}

	// Axis labels just beyond the outer ring.
	if err := c.useFont(true, 17*s); err != nil {
		return nil, err
	}
	for i, label := range dataset.FactorLabels {
		x, y := point(i, 117)
		ax := 0.5
		switch {
		case math.Cos(angle(i)) > 0.3:
			ax = 0
		case math.Cos(angle(i)) < -0.3:
			ax = 1
		}
		c.text(label, c.pal.White, x, y, ax, 0.5)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode factors chart: %w", err)
	}
	return buf.Bytes(), nil
}
