// Package theme provides the shared cosmetic configuration for the dossier:
// the dark color palette, stance-to-color and percentage-to-color mappings,
// and the optional HCL theme file that can override palette entries and the
// output location.
package theme

import "github.com/ankek/dossier/internal/dataset"

// Palette is the named color set used by every chart and document block.
// Values are #rrggbb hex strings.
type Palette struct {
	BGDark  string
	BGPanel string
	Blue    string
	Amber   string
	Red     string
	Green   string
	Purple  string
	Cyan    string
	Pink    string
	Slate   string
	White   string

	// Body is the default body-text color, Grid the table grid and chart
	// grid color, RowAlt the zebra-stripe table row background.
	Body   string
	Grid   string
	RowAlt string
}

// Theme carries the palette plus the few rendering knobs the generator has.
type Theme struct {
	Palette Palette

	// Output is the path the assembled PDF is written to.
	Output string

	// Scale multiplies chart pixel dimensions. 1.0 renders the population
	// chart at 1600x1200.
	Scale float64
}

// DefaultOutput is the fixed output path used when no override is given.
const DefaultOutput = "europe-israel-jewish-analysis.pdf"

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Palette: Palette{
			BGDark:  "#0f172a",
			BGPanel: "#1e293b",
			Blue:    "#3b82f6",
			Amber:   "#f59e0b",
			Red:     "#ef4444",
			Green:   "#10b981",
			Purple:  "#8b5cf6",
			Cyan:    "#06b6d4",
			Pink:    "#ec4899",
			Slate:   "#94a3b8",
			White:   "#f8fafc",
			Body:    "#cbd5e1",
			Grid:    "#334155",
			RowAlt:  "#1a2332",
		},
		Output: DefaultOutput,
		Scale:  1.0,
	}
}

// StanceColor maps a voting stance to its chart color: red for votes against
// Israel, amber for abstention, green for pro-Israel votes.
func (p Palette) StanceColor(s dataset.Stance) string {
	switch s {
	case dataset.StanceFor:
		return p.Red
	case dataset.StanceAbstain:
		return p.Amber
	case dataset.StanceAgainst:
		return p.Green
	default:
		return p.Slate
	}
}

// Grade maps a pro-Israel vote percentage to a traffic-light color: green at
// or above hi, amber at or above 40, red below. Country series use hi=70,
// political-group series hi=60.
func (p Palette) Grade(pct, hi float64) string {
	switch {
	case pct >= hi:
		return p.Green
	case pct >= 40:
		return p.Amber
	default:
		return p.Red
	}
}
