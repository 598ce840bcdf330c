// Package dataset holds the embedded statistical series the dossier is built
// from: Jewish population figures for twenty European countries, their UN
// voting stance toward Israel, European Parliament voting records, and the
// survey and timeline series backing the remaining charts. All values are
// fixed at authoring time and read-only.
package dataset

import (
	"fmt"
	"strings"
)

// Stance classifies a country's voting posture on UN resolutions critical of
// Israel. The codes follow the source data: voting for such a resolution is a
// vote against Israel.
type Stance int

const (
	// StanceFor votes for resolutions critical of Israel.
	StanceFor Stance = iota + 1
	// StanceAbstain abstains.
	StanceAbstain
	// StanceAgainst votes against such resolutions (pro-Israel).
	StanceAgainst
)

// Label returns the Spanish label used throughout the dossier.
func (s Stance) Label() string {
	switch s {
	case StanceFor:
		return "A favor"
	case StanceAbstain:
		return "Abstencion"
	case StanceAgainst:
		return "En contra"
	default:
		return "Desconocida"
	}
}

// Countries, Populations, SupportLevel and PctPopulation are parallel arrays:
// index i describes the same country in all four. Population figures are the
// "core" Jewish population estimates for 2024 (DellaPergola, American Jewish
// Year Book). Stances are from the September 2024 UNGA resolution vote.
var (
	Countries = []string{
		"Francia", "R. Unido", "Alemania", "Hungria", "P. Bajos", "Belgica",
		"Italia", "Suiza", "Suecia", "Espana", "Austria", "Rumania",
		"Polonia", "Dinamarca", "Grecia", "Chequia", "Irlanda", "Finlandia",
		"Noruega", "Portugal",
	}

	Populations = []int{
		438500, 313000, 125000, 45000, 35000, 29000, 26800, 20500,
		14900, 13000, 10300, 9400, 8000, 6400, 4500, 3900, 1600, 1300, 1300, 600,
	}

	SupportLevel = []Stance{
		StanceFor, StanceAbstain, StanceAbstain, StanceAgainst, StanceAbstain, StanceFor,
		StanceAbstain, StanceAbstain, StanceFor, StanceFor, StanceAbstain, StanceAbstain,
		StanceAbstain, StanceAbstain, StanceFor, StanceAgainst, StanceFor, StanceFor,
		StanceFor, StanceFor,
	}

	// PctPopulation is the Jewish share of each country's total population.
	PctPopulation = []float64{
		0.65, 0.46, 0.15, 0.46, 0.20, 0.25, 0.05, 0.23, 0.14, 0.03,
		0.11, 0.05, 0.02, 0.11, 0.04, 0.04, 0.03, 0.02, 0.02, 0.01,
	}
)

// European Parliament pro-Israel voting rates across 71 votes, 2019-2022
// (European Coalition for Israel rankings).
var (
	ParliamentGroups    = []string{"ECR", "ID", "EPP", "Renew", "S&D", "Verdes", "The Left"}
	ParliamentGroupPcts = []float64{90, 88, 60, 45, 18, 12, 5}

	ParliamentCountries = []string{
		"Chequia", "Hungria", "Polonia", "Italia", "Alemania",
		"Francia", "P. Bajos", "Belgica", "Espana", "Irlanda",
	}
	ParliamentCountryPcts = []float64{95, 90, 76, 65, 55, 40, 38, 30, 26, 14.6}
)

// Erosion of passive European support in UNGA votes: how many EU countries
// abstained, and how many voted against, per sampled year.
var (
	ErosionYears       = []int{2017, 2019, 2021, 2023, 2025}
	ErosionAbstentions = []float64{8, 10, 11, 13, 2}
	ErosionAgainst     = []float64{2, 2, 2, 2, 1}
)

// Relative weight of each factor driving national support for Israel,
// 0-100, per the published academic literature.
var (
	FactorLabels = []string{
		"Ideologia Politica", "Relaciones Comerciales", "Demografia Musulmana",
		"Experiencia Totalitaria", "Responsabilidad Historica", "Poblacion Judia",
	}
	FactorWeights = []float64{95, 65, 60, 55, 50, 15}
)

// YouGov EuroTrack, May 2025: net favorability toward Israel and the share
// sympathizing with the Israeli side.
var (
	OpinionCountries = []string{"Espana", "Dinamarca", "Italia", "Francia", "R. Unido", "Alemania"}
	OpinionNetFav    = []float64{-55, -54, -52, -48, -46, -44}
	OpinionSympathy  = []float64{15, 18, 7, 18, 16, 17}
)

// RecognitionEvent is one entry in the Palestine-recognition timeline.
type RecognitionEvent struct {
	When string
	What string
}

// RecognitionTimeline lists EU-state recognitions of Palestine in order.
var RecognitionTimeline = []RecognitionEvent{
	{"1988", "7 paises bloque sovietico: Bulgaria, Chequia, Polonia, Rumania, Eslovaquia, Hungria, Chipre."},
	{"2014", "Suecia: primer pais en reconocer Palestina siendo miembro UE. Gobierno socialdemocrata."},
	{"Mayo 2024", "Irlanda, Espana y Noruega reconocen Palestina simultaneamente. Oleada post-octubre 2023."},
	{"Junio 2024", "Eslovenia reconoce Palestina."},
	{"Sept. 2025", "Francia, Portugal, Luxemburgo y Malta reconocen Palestina. Francia tiene la mayor poblacion judia de Europa (438,500)."},
}

// Validate checks the structural precondition that every parallel series is
// equal in length and index-aligned. It reports all mismatches, not just the
// first.
func Validate() error {
	type pair struct {
		name string
		got  int
		want int
	}

	n := len(Countries)
	checks := []pair{
		{"populations", len(Populations), n},
		{"support levels", len(SupportLevel), n},
		{"population percentages", len(PctPopulation), n},
		{"parliament group percentages", len(ParliamentGroupPcts), len(ParliamentGroups)},
		{"parliament country percentages", len(ParliamentCountryPcts), len(ParliamentCountries)},
		{"erosion abstentions", len(ErosionAbstentions), len(ErosionYears)},
		{"erosion against votes", len(ErosionAgainst), len(ErosionYears)},
		{"factor weights", len(FactorWeights), len(FactorLabels)},
		{"opinion net favorability", len(OpinionNetFav), len(OpinionCountries)},
		{"opinion sympathy", len(OpinionSympathy), len(OpinionCountries)},
	}

	var bad []string
	for _, c := range checks {
		if c.got != c.want {
			bad = append(bad, fmt.Sprintf("%s: have %d values, want %d", c.name, c.got, c.want))
		}
	}
	for i, s := range SupportLevel {
		if s < StanceFor || s > StanceAgainst {
			bad = append(bad, fmt.Sprintf("support level %d: invalid stance code %d", i, s))
		}
	}

	if len(bad) > 0 {
		return fmt.Errorf("dataset is misaligned: %s", strings.Join(bad, "; "))
	}
	return nil
}
