package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ankek/dossier/internal/dataset"
	"github.com/ankek/dossier/internal/theme"
)

// Scatter renders population (log X) against support level (1..3 Y), one
// point per country, colored by stance and annotated with the country name.
func (r *Renderer) Scatter() ([]byte, error) {
	pal := r.theme.Palette

	p := plot.New()
	r.darkPlot(p, "Poblacion Judia vs. Nivel de Apoyo a Israel")

	p.X.Label.Text = "Poblacion Judia (escala logaritmica)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Label.Text = "Nivel de Apoyo a Israel"
	p.Y.Min, p.Y.Max = 0.5, 3.5
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 1, Label: "Vota contra"},
		{Value: 2, Label: "Abstencion"},
		{Value: 3, Label: "Vota pro-Israel"},
	})

	p.Add(r.grid())

	groups := []struct {
		stance dataset.Stance
		label  string
		color  string
	}{
		{dataset.StanceFor, "Vota contra Israel", pal.Red},
		{dataset.StanceAbstain, "Abstencion", pal.Amber},
		{dataset.StanceAgainst, "Vota pro-Israel", pal.Green},
	}

	for _, grp := range groups {
		var pts plotter.XYs
		for i, s := range dataset.SupportLevel {
			if s == grp.stance {
				pts = append(pts, plotter.XY{
					X: float64(dataset.Populations[i]),
					Y: float64(s),
				})
			}
		}

		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter chart: %w", err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  theme.MustHex(grp.color),
			Radius: vg.Points(5),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
		p.Legend.Add(grp.label, sc)
	}

	// Country names, offset multiplicatively so they clear the markers on
	// the log axis.
	lbls := plotter.XYLabels{Labels: dataset.Countries}
	for i := range dataset.Countries {
		lbls.XYs = append(lbls.XYs, plotter.XY{
			X: float64(dataset.Populations[i]) * 1.1,
			Y: float64(dataset.SupportLevel[i]) + 0.07,
		})
	}
	labels, err := plotter.NewLabels(lbls)
	if err != nil {
		return nil, fmt.Errorf("scatter chart labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = theme.MustHex(pal.White)
		labels.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(labels)

	p.Legend.Top = true
	p.Legend.Left = true

	return encodePlot(p, 9*vg.Inch, 5.6*vg.Inch)
}
