package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ankek/dossier/internal/dataset"
	"github.com/ankek/dossier/internal/theme"
)

// Opinion renders the grouped bar chart of European public opinion on
// Israel: net favorability (negative, red) next to the share sympathizing
// with Israel (blue), per surveyed country.
func (r *Renderer) Opinion() ([]byte, error) {
	pal := r.theme.Palette

	p := plot.New()
	r.darkPlot(p, "Opinion Publica Europea sobre Israel (YouGov, Mayo 2025)")
	p.Y.Label.Text = "Porcentaje"

	p.Add(r.grid())

	barWidth := vg.Points(16)

	netFav, err := plotter.NewBarChart(plotter.Values(dataset.OpinionNetFav), barWidth)
	if err != nil {
		return nil, fmt.Errorf("opinion chart: %w", err)
	}
	netFav.Color = theme.MustHex(pal.Red)
	netFav.LineStyle.Color = theme.MustHex(pal.White)
	netFav.LineStyle.Width = vg.Points(0.5)
	netFav.Offset = -barWidth / 2

	sympathy, err := plotter.NewBarChart(plotter.Values(dataset.OpinionSympathy), barWidth)
	if err != nil {
		return nil, fmt.Errorf("opinion chart: %w", err)
	}
	sympathy.Color = theme.MustHex(pal.Blue)
	sympathy.LineStyle.Color = theme.MustHex(pal.White)
	sympathy.LineStyle.Width = vg.Points(0.5)
	sympathy.Offset = barWidth / 2

	p.Add(netFav, sympathy)
	p.Legend.Add("Favorabilidad Neta", netFav)
	p.Legend.Add("% Simpatiza con Israel", sympathy)
	p.Legend.Top = true

	p.NominalX(dataset.OpinionCountries...)

	return encodePlot(p, 9*vg.Inch, 5*vg.Inch)
}
