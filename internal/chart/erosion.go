package chart

import (
	"bytes"
	"fmt"

	chartlib "github.com/wcharczuk/go-chart/v2"

	"github.com/ankek/dossier/internal/dataset"
)

// Erosion renders the line chart of EU abstentions and against-votes on UNGA
// resolutions over 2017-2025, with area fills and per-point value labels.
func (r *Renderer) Erosion() ([]byte, error) {
	pal := r.theme.Palette

	years := make([]float64, len(dataset.ErosionYears))
	ticks := make([]chartlib.Tick, len(dataset.ErosionYears))
	for i, y := range dataset.ErosionYears {
		years[i] = float64(y)
		ticks[i] = chartlib.Tick{Value: float64(y), Label: fmt.Sprintf("%d", y)}
	}

	amber := chartColor(pal.Amber)
	green := chartColor(pal.Green)
	slate := chartColor(pal.Slate)
	dark := chartColor(pal.BGDark)
	grid := chartColor(pal.Grid)

	c := chartlib.Chart{
		Title:      "Erosion del Apoyo Europeo a Israel en la ONU (2017-2025)",
		TitleStyle: chartlib.Style{FontColor: chartColor(pal.White), FontSize: 14},
		Background: chartlib.Style{FillColor: dark},
		Canvas:     chartlib.Style{FillColor: dark},
		Width:      r.px(1400),
		Height:     r.px(780),
		XAxis: chartlib.XAxis{
			Name:      "Ano",
			NameStyle: chartlib.Style{FontColor: slate},
			Style:     chartlib.Style{FontColor: slate, StrokeColor: slate},
			Ticks:     ticks,
			Range:     &chartlib.ContinuousRange{Min: 2016.5, Max: 2025.5},
			GridMajorStyle: chartlib.Style{
				StrokeColor: grid,
				StrokeWidth: 1,
			},
		},
		YAxis: chartlib.YAxis{
			Name:      "Numero de paises UE",
			NameStyle: chartlib.Style{FontColor: slate},
			Style:     chartlib.Style{FontColor: slate, StrokeColor: slate},
			Range:     &chartlib.ContinuousRange{Min: 0, Max: 18},
			GridMajorStyle: chartlib.Style{
				StrokeColor: grid,
				StrokeWidth: 1,
			},
		},
		Series: []chartlib.Series{
			chartlib.ContinuousSeries{
				Name:    "Se abstienen",
				XValues: years,
				YValues: dataset.ErosionAbstentions,
				Style: chartlib.Style{
					StrokeColor: amber,
					StrokeWidth: 4,
					FillColor:   amber.WithAlpha(38),
					DotColor:    amber,
					DotWidth:    7,
				},
			},
			chartlib.ContinuousSeries{
				Name:    "Votan contra (pro-Israel)",
				XValues: years,
				YValues: dataset.ErosionAgainst,
				Style: chartlib.Style{
					StrokeColor: green,
					StrokeWidth: 4,
					FillColor:   green.WithAlpha(38),
					DotColor:    green,
					DotWidth:    7,
				},
			},
			r.erosionAnnotations(dataset.ErosionAbstentions, years, pal.Amber),
			r.erosionAnnotations(dataset.ErosionAgainst, years, pal.Green),
		},
	}

	c.Elements = []chartlib.Renderable{
		chartlib.Legend(&c, chartlib.Style{
			FillColor:   chartColor(pal.BGPanel),
			FontColor:   chartColor(pal.White),
			StrokeColor: slate,
		}),
	}

	var buf bytes.Buffer
	if err := c.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render erosion chart: %w", err)
	}
	return buf.Bytes(), nil
}

// erosionAnnotations labels each data point with its value in the series
// color.
func (r *Renderer) erosionAnnotations(values, years []float64, hexColor string) chartlib.AnnotationSeries {
	col := chartColor(hexColor)
	anns := make([]chartlib.Value2, len(values))
	for i := range values {
		anns[i] = chartlib.Value2{
			XValue: years[i],
			YValue: values[i],
			Label:  fmt.Sprintf("%.0f", values[i]),
		}
	}
	return chartlib.AnnotationSeries{
		Annotations: anns,
		Style: chartlib.Style{
			FontColor:   col,
			StrokeColor: col,
			FillColor:   chartColor(r.theme.Palette.BGPanel),
		},
	}
}
