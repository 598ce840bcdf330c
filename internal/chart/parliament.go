package chart

import (
	"bytes"
	"fmt"

	chartlib "github.com/wcharczuk/go-chart/v2"

	"github.com/ankek/dossier/internal/dataset"
)

// Parliament renders the European Parliament voting figure: pro-Israel vote
// share by political group (left panel) and by nationality (right panel),
// graded green/amber/red and composed side by side under one title.
func (r *Renderer) Parliament() ([]byte, error) {
	left, err := r.parliamentGroups()
	if err != nil {
		return nil, err
	}
	right, err := r.parliamentCountries()
	if err != nil {
		return nil, err
	}

	img, err := composePanels(left, right,
		"Votacion en Parlamento Europeo sobre Israel (71 votos, 2019-2022)",
		r.theme.Palette, r.theme.Scale)
	if err != nil {
		return nil, fmt.Errorf("parliament chart: %w", err)
	}
	return img, nil
}

// parliamentGroups draws the by-political-group panel: horizontal bars on a
// 0-100 axis, graded with the group threshold (60).
func (r *Renderer) parliamentGroups() ([]byte, error) {
	c, err := newCanvas(r.px(850), r.px(800), r.theme.Palette)
	if err != nil {
		return nil, fmt.Errorf("parliament group panel: %w", err)
	}

	s := r.theme.Scale
	w := float64(c.Width())
	h := float64(c.Height())

	left := 130.0 * s
	right := w - 90.0*s
	top := 90.0 * s
	bottom := h - 90.0*s
	xpos := func(v float64) float64 {
		return left + v/100*(right-left)
	}

	if err := c.useFont(true, 22*s); err != nil {
		return nil, err
	}
	c.text("Por Grupo Politico", c.pal.Cyan, w/2, 45*s, 0.5, 0.5)

	// Gridlines every 20 points.
	for v := 20.0; v <= 100; v += 20 {
		c.SetHexColor(c.pal.Grid)
		c.SetLineWidth(1)
		c.DrawLine(xpos(v), top, xpos(v), bottom)
		c.Stroke()
	}

	c.SetHexColor(c.pal.Slate)
	c.SetLineWidth(2)
	c.DrawLine(left, top, left, bottom)
	c.DrawLine(left, bottom, right, bottom)
	c.Stroke()

	rows := len(dataset.ParliamentGroups)
	rowH := (bottom - top) / float64(rows)
	barH := rowH * 0.68

	for i, group := range dataset.ParliamentGroups {
		pct := dataset.ParliamentGroupPcts[i]
		y := top + float64(i)*rowH + (rowH-barH)/2

		c.hbar(left, y, xpos(pct)-left, barH, r.theme.Palette.Grade(pct, 60))

		if err := c.useFont(false, 16*s); err != nil {
			return nil, err
		}
		c.text(group, c.pal.White, left-10*s, y+barH/2, 1, 0.4)

		if err := c.useFont(true, 15*s); err != nil {
			return nil, err
		}
		c.text(formatPct(pct), c.pal.White, xpos(pct)+8*s, y+barH/2, 0, 0.4)
	}

	if err := c.useFont(false, 15*s); err != nil {
		return nil, err
	}
	for v := 0.0; v <= 100; v += 20 {
		c.text(fmt.Sprintf("%.0f", v), c.pal.Slate, xpos(v), bottom+20*s, 0.5, 0.5)
	}
	c.text("% Votos Pro-Israel", c.pal.Slate, (left+right)/2, bottom+52*s, 0.5, 0.5)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode parliament group panel: %w", err)
	}
	return buf.Bytes(), nil
}

// parliamentCountries draws the by-nationality panel as a vertical bar
// chart, graded with the country threshold (70).
func (r *Renderer) parliamentCountries() ([]byte, error) {
	pal := r.theme.Palette
	slate := chartColor(pal.Slate)
	dark := chartColor(pal.BGDark)

	bars := make([]chartlib.Value, len(dataset.ParliamentCountries))
	for i, name := range dataset.ParliamentCountries {
		pct := dataset.ParliamentCountryPcts[i]
		bars[i] = chartlib.Value{
			Value: pct,
			Label: name,
			Style: chartlib.Style{
				FillColor:   chartColor(pal.Grade(pct, 70)),
				StrokeColor: chartColor(pal.White),
				StrokeWidth: 1,
			},
		}
	}

	bc := chartlib.BarChart{
		Title:      "Por Nacionalidad",
		TitleStyle: chartlib.Style{FontColor: chartColor(pal.Cyan), FontSize: 16},
		Background: chartlib.Style{FillColor: dark},
		Canvas:     chartlib.Style{FillColor: dark},
		Width:      r.px(850),
		Height:     r.px(800),
		BarWidth:   r.px(52),
		XAxis:      chartlib.Style{FontColor: slate, StrokeColor: slate},
		YAxis: chartlib.YAxis{
			Style:     chartlib.Style{FontColor: slate, StrokeColor: slate},
			Range:     &chartlib.ContinuousRange{Min: 0, Max: 100},
			GridMajorStyle: chartlib.Style{
				StrokeColor: chartColor(pal.Grid),
				StrokeWidth: 1,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render parliament country panel: %w", err)
	}
	return buf.Bytes(), nil
}
