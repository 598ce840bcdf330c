// Package report assembles the dossier: it renders the six charts, composes
// the narrative, tables and figures into an ordered block list, and hands
// the list to the document layout engine for pagination.
package report

import (
	"fmt"

	"github.com/ankek/dossier/internal/chart"
	"github.com/ankek/dossier/internal/dataset"
	"github.com/ankek/dossier/internal/document"
	"github.com/ankek/dossier/internal/interfaces"
	"github.com/ankek/dossier/internal/theme"
	"github.com/ankek/dossier/internal/validation"
)

// Charts holds the six rendered figures as encoded PNG buffers.
type Charts struct {
	Population []byte
	Scatter    []byte
	Parliament []byte
	Erosion    []byte
	Factors    []byte
	Opinion    []byte
}

// RenderCharts renders all six figures.
func RenderCharts(r interfaces.ChartRenderer) (*Charts, error) {
	var (
		c   Charts
		err error
	)
	steps := []struct {
		name   string
		dst    *[]byte
		render func() ([]byte, error)
	}{
		{"population", &c.Population, r.Population},
		{"scatter", &c.Scatter, r.Scatter},
		{"parliament", &c.Parliament, r.Parliament},
		{"erosion", &c.Erosion, r.Erosion},
		{"factors", &c.Factors, r.Factors},
		{"opinion", &c.Opinion, r.Opinion},
	}
	for _, s := range steps {
		if *s.dst, err = s.render(); err != nil {
			return nil, fmt.Errorf("failed to render %s chart: %w", s.name, err)
		}
		if len(*s.dst) == 0 {
			return nil, fmt.Errorf("%s chart rendered empty", s.name)
		}
	}
	return &c, nil
}

// Generate validates the dataset, renders the charts, composes the dossier
// and writes the PDF to the theme's output path.
func Generate(th *theme.Theme) error {
	if err := dataset.Validate(); err != nil {
		return err
	}
	if err := validation.ValidateOutputPath(th.Output); err != nil {
		return err
	}

	charts, err := RenderCharts(chart.New(th))
	if err != nil {
		return err
	}

	return Compose(th, charts).BuildFile(th.Output)
}

// Compose builds the full eight-section block list of the dossier.
func Compose(th *theme.Theme, charts *Charts) *document.Builder {
	pal := th.Palette
	b := document.NewBuilder(th)

	// Section 1: title, key stats, hypothesis.
	b.Add(
		document.Spacer{H: 10},
		document.Heading{Text: docTitle, Color: pal.Blue, Size: 22, Align: "C", SpaceAfter: 4},
		document.Paragraph{Text: docSubtitle, Color: pal.Slate, Size: 10, LineH: 5, Align: "C", SpaceAfter: 8},
		document.StatGrid{
			Cells: []document.StatCell{
				{Value: "~1.1M", Caption: "Judios en Europa", Sub: "Poblacion core, 2024", Color: pal.Blue},
				{Value: "27", Caption: "Paises UE", Sub: "Todos reconocen Israel", Color: pal.Amber},
				{Value: "15", Caption: "Reconocen Palestina", Sub: "De 27 miembros UE", Color: pal.Green},
				{Value: "2", Caption: "Votan \"No\" en ONU", Sub: "Hungria y Chequia", Color: pal.Red},
			},
			SpaceAfter: 6,
		},
		document.Heading{Text: "HIPOTESIS CENTRAL", Color: pal.Blue, Size: 14, SpaceBefore: 6, SpaceAfter: 3},
		document.Highlight{Text: hypothesisText, Border: pal.Blue, SpaceAfter: 4},
		document.PageBreak{},
	)

	// Section 2: population chart and the full demographic table.
	b.Add(
		document.Heading{Text: "POBLACION JUDIA Y POSTURA EN LA ONU", Color: pal.Blue, Size: 14, SpaceAfter: 3},
		document.Image{Name: "population", PNG: charts.Population, W: 170, H: 125},
		document.Paragraph{Text: populationSource, Color: pal.Slate, Size: 7.5, LineH: 3.5, Align: "L", SpaceAfter: 4},
		document.Heading{Text: "DATOS DEMOGRAFICOS COMPLETOS", Color: pal.Purple, Size: 14, SpaceAfter: 3},
		demographicsTable(pal),
		document.PageBreak{},
	)

	// Section 3: scatter plot and the most pro-Israel countries.
	b.Add(
		document.Heading{Text: "POBLACION JUDIA VS. NIVEL DE APOYO A ISRAEL", Color: pal.Cyan, Size: 14, SpaceAfter: 3},
		document.Paragraph{Text: scatterIntro, Color: pal.Body, Size: 9, LineH: 4.5, SpaceAfter: 2},
		document.Image{Name: "scatter", PNG: charts.Scatter, W: 170, H: 105},
		document.Highlight{Text: scatterFinding, Border: pal.Blue, SpaceAfter: 6},
		document.Heading{Text: "PAISES MAS PRO-ISRAEL EN EUROPA", Color: pal.Green, Size: 14, SpaceAfter: 3},
	)
	addProfiles(b, pal, proIsraelProfiles, pal.Green)
	b.Add(document.PageBreak{})

	// Section 4: least pro-Israel countries and the Parliament figure.
	b.Add(
		document.Heading{Text: "PAISES MENOS PRO-ISRAEL EN EUROPA", Color: pal.Red, Size: 14, SpaceAfter: 3},
	)
	addProfiles(b, pal, antiIsraelProfiles, pal.Red)
	b.Add(
		document.Spacer{H: 6},
		document.Heading{Text: "VOTACION EN EL PARLAMENTO EUROPEO (2019-2022)", Color: pal.Purple, Size: 14, SpaceAfter: 3},
		document.Image{Name: "parliament", PNG: charts.Parliament, W: 170, H: 90},
		document.Highlight{Text: parliamentFinding, Border: pal.Blue, SpaceAfter: 4},
		document.PageBreak{},
	)

	// Section 5: erosion of support and the recognition timeline.
	b.Add(
		document.Heading{Text: "EROSION DEL APOYO EUROPEO A ISRAEL (2017-2025)", Color: pal.Red, Size: 14, SpaceAfter: 3},
		document.Image{Name: "erosion", PNG: charts.Erosion, W: 170, H: 95},
		document.Highlight{Text: erosionTrend, Border: pal.Red, SpaceAfter: 4},
		document.Heading{Text: "CRONOLOGIA: RECONOCIMIENTO DE PALESTINA POR ESTADOS UE", Color: pal.Amber, Size: 14, SpaceAfter: 3},
		timelineTable(pal),
		document.Highlight{Text: timelineFact, Border: pal.Amber, SpaceAfter: 4},
		document.PageBreak{},
	)

	// Section 6: determining factors.
	b.Add(
		document.Heading{Text: "FACTORES DETERMINANTES DEL APOYO A ISRAEL", Color: pal.Purple, Size: 14, SpaceAfter: 3},
		document.Paragraph{Text: factorsIntro, Color: pal.Body, Size: 9, LineH: 4.5, SpaceAfter: 2},
		document.Image{Name: "factors", PNG: charts.Factors, W: 120, H: 120, SpaceAfter: 2},
	)
	for _, fn := range factorNotes {
		b.Add(
			document.Paragraph{Text: fn.Title, Color: factorColor(pal, fn.Color), Size: 9, LineH: 4, Bold: true},
			document.Paragraph{Text: fn.Detail, Color: pal.Slate, Size: 8, LineH: 3.8, SpaceAfter: 2},
		)
	}
	b.Add(document.PageBreak{})

	// Section 7: public opinion and hypothesis-contradicting cases.
	b.Add(
		document.Heading{Text: "OPINION PUBLICA EUROPEA SOBRE ISRAEL (YouGov, 2025)", Color: pal.Pink, Size: 14, SpaceAfter: 3},
		document.Image{Name: "opinion", PNG: charts.Opinion, W: 170, H: 95},
		document.Highlight{Text: opinionContext, Border: pal.Blue, SpaceAfter: 4},
		document.Heading{Text: "CASOS QUE CONTRADICEN LA HIPOTESIS", Color: pal.Amber, Size: 14, SpaceAfter: 3},
	)
	for _, cs := range contradictions {
		verdictColor := pal.Red
		if cs.Inverse {
			verdictColor = pal.Green
		}
		b.Add(
			document.Paragraph{
				Text:  fmt.Sprintf("%s (%s): %s", cs.Name, cs.Pop, cs.Detail),
				Color: pal.Body, Size: 9, LineH: 4.5,
			},
			document.Paragraph{
				Text:  "[" + cs.Verdict + "]",
				Color: verdictColor, Size: 9, LineH: 4.5, Bold: true, SpaceAfter: 2,
			},
		)
	}
	b.Add(document.PageBreak{})

	// Section 8: conclusions, methodology, sources.
	b.Add(
		document.Heading{Text: "CONCLUSIONES DEL ANALISIS", Color: pal.Amber, Size: 16, Align: "C", SpaceAfter: 4},
	)
	for i, c := range conclusions {
		b.Add(
			document.Paragraph{
				Text:  fmt.Sprintf("%d. %s", i+1, c.Title),
				Color: pal.White, Size: 10, LineH: 4.6, Bold: true, SpaceAfter: 1,
			},
			document.Paragraph{Text: c.Body, Color: pal.Body, Size: 8.5, LineH: 4.2, SpaceAfter: 4},
		)
	}
	b.Add(
		document.Highlight{Text: methodologyNote, Border: pal.Slate, SpaceAfter: 6},
		document.Heading{Text: "FUENTES Y REFERENCIAS", Color: pal.Blue, Size: 14, SpaceAfter: 3},
	)
	for _, src := range sources {
		b.Add(document.Paragraph{Text: src, Color: pal.Slate, Size: 7.5, LineH: 3.5, Align: "L", SpaceAfter: 1})
	}
	b.Add(
		document.Spacer{H: 8},
		document.Paragraph{Text: footerNote, Color: pal.Slate, Size: 7.5, LineH: 3.5, Align: "C"},
	)

	return b
}

// demographicsTable builds the 20-country data table, with the stance column
// colored by stance.
func demographicsTable(pal theme.Palette) document.Table {
	rows := make([][]string, len(dataset.Countries))
	for i := range dataset.Countries {
		rows[i] = []string{
			dataset.Countries[i],
			chart.FormatCount(dataset.Populations[i]),
			fmt.Sprintf("%.2f%%", dataset.PctPopulation[i]),
			dataset.SupportLevel[i].Label(),
		}
	}
	return document.Table{
		Header: []string{"Pais", "Pob. Judia", "% Pob.", "Postura ONU"},
		Rows:   rows,
		ColW:   []float64{35, 30, 22, 35},
		Aligns: []string{"L", "R", "R", "C"},
		CellColor: func(row, col int) string {
			if col == 3 {
				return pal.StanceColor(dataset.SupportLevel[row])
			}
			return ""
		},
		SpaceAfter: 2,
	}
}

// timelineTable builds the Palestine-recognition chronology with the year
// column in amber.
func timelineTable(pal theme.Palette) document.Table {
	rows := make([][]string, len(dataset.RecognitionTimeline))
	for i, ev := range dataset.RecognitionTimeline {
		rows[i] = []string{ev.When, ev.What}
	}
	return document.Table{
		Header: []string{"Fecha", "Acontecimiento"},
		Rows:   rows,
		ColW:   []float64{28, 150},
		Aligns: []string{"C", "L"},
		CellColor: func(row, col int) string {
			if col == 0 {
				return pal.Amber
			}
			return ""
		},
		SpaceAfter: 4,
	}
}

// addProfiles appends the name/rating line and detail line for each country
// profile.
func addProfiles(b *document.Builder, pal theme.Palette, profiles []countryProfile, accent string) {
	for _, p := range profiles {
		b.Add(
			document.Paragraph{
				Text:  fmt.Sprintf("%s (%s) - %s", p.Name, p.Pop, p.Rating),
				Color: accent, Size: 9, LineH: 4.3, Bold: true,
			},
			document.Paragraph{Text: p.Detail, Color: pal.Slate, Size: 8, LineH: 3.8, SpaceAfter: 2},
		)
	}
}

// factorColor resolves the palette entry named by a factor note.
func factorColor(pal theme.Palette, name string) string {
	switch name {
	case "purple":
		return pal.Purple
	case "blue":
		return pal.Blue
	case "amber":
		return pal.Amber
	case "green":
		return pal.Green
	case "red":
		return pal.Red
	default:
		return pal.Body
	}
}
