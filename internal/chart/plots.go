package chart

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ankek/dossier/internal/theme"
)

// darkPlot applies the dossier palette to a gonum plot: dark background,
// white title, slate axes and ticks.
func (r *Renderer) darkPlot(p *plot.Plot, title string) {
	pal := r.theme.Palette

	p.BackgroundColor = theme.MustHex(pal.BGDark)
	p.Title.Text = title
	p.Title.TextStyle.Color = theme.MustHex(pal.White)
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.Title.Padding = vg.Points(6)

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = theme.MustHex(pal.Slate)
		ax.Label.TextStyle.Color = theme.MustHex(pal.Slate)
		ax.Label.TextStyle.Font.Size = vg.Points(11)
		ax.Tick.LineStyle.Color = theme.MustHex(pal.Slate)
		ax.Tick.Label.Color = theme.MustHex(pal.White)
		ax.Tick.Label.Font.Size = vg.Points(9)
	}

	p.Legend.TextStyle.Color = theme.MustHex(pal.White)
	p.Legend.TextStyle.Font.Size = vg.Points(9)
}

// grid returns a faint white grid matching the source figures.
func (r *Renderer) grid() *plotter.Grid {
	g := plotter.NewGrid()
	faint := theme.MustHex(r.theme.Palette.Grid)
	g.Vertical.Color = faint
	g.Horizontal.Color = faint
	return g
}

// encodePlot renders a gonum plot to an in-memory PNG.
func encodePlot(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write plot: %w", err)
	}
	return buf.Bytes(), nil
}
