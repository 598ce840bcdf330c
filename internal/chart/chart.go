// Package chart renders the six statistical figures of the dossier. Each
// renderer is an independent, stateless transformation from the embedded
// dataset to one encoded PNG image; they share only the cosmetic theme.
//
// Three backends are used, matching what each figure needs: a gg canvas for
// the hand-laid-out figures (log-scale horizontal bars, radar), gonum/plot
// for point and grouped-bar plots, and go-chart for line and vertical bar
// charts. All of them draw on the same dark palette.
package chart

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ankek/dossier/internal/theme"
)

// Renderer produces the dossier's chart images.
type Renderer struct {
	theme *theme.Theme
}

// New creates a Renderer drawing with the given theme.
func New(th *theme.Theme) *Renderer {
	return &Renderer{theme: th}
}

// px scales a base pixel dimension by the theme's chart scale.
func (r *Renderer) px(base int) int {
	return int(float64(base) * r.theme.Scale)
}

// chartColor converts a palette hex string to a go-chart drawing color.
func chartColor(hexColor string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hexColor, "#"))
}

var thousands = message.NewPrinter(language.English)

// FormatCount renders an integer with thousands separators, e.g. 438,500.
func FormatCount(n int) string {
	return thousands.Sprintf("%d", n)
}

// formatPct renders a percentage label, dropping a trailing ".0".
func formatPct(v float64) string {
	s := fmt.Sprintf("%.1f%%", v)
	return strings.Replace(s, ".0%", "%", 1)
}
