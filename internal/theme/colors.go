package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex converts a #rrggbb string to an opaque RGBA color.
func ParseHex(hexColor string) (color.RGBA, error) {
	h := strings.TrimPrefix(hexColor, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hexColor)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hexColor, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// MustHex is ParseHex for the compiled-in palette, where a bad value is a
// programming error.
func MustHex(hexColor string) color.RGBA {
	c, err := ParseHex(hexColor)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the color channels as ints, the form fpdf's color setters take.
func RGB(hexColor string) (r, g, b int) {
	c := MustHex(hexColor)
	return int(c.R), int(c.G), int(c.B)
}

// Lighten lightens a hex color by a percentage, moving each channel toward
// white.
func Lighten(hexColor string, percent int) string {
	r, g, b := channels(hexColor)

	factor := float64(percent) / 100.0
	r = int64(float64(r) + (255-float64(r))*factor)
	g = int64(float64(g) + (255-float64(g))*factor)
	b = int64(float64(b) + (255-float64(b))*factor)

	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

// Darken darkens a hex color by a percentage. The highlight-box backgrounds
// are derived from their border colors this way.
func Darken(hexColor string, percent int) string {
	r, g, b := channels(hexColor)

	factor := 1.0 - float64(percent)/100.0
	r = int64(float64(r) * factor)
	g = int64(float64(g) * factor)
	b = int64(float64(b) * factor)

	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

func channels(hexColor string) (r, g, b int64) {
	h := strings.TrimPrefix(hexColor, "#")
	if len(h) != 6 {
		return 0, 0, 0
	}
	r, _ = strconv.ParseInt(h[0:2], 16, 64)
	g, _ = strconv.ParseInt(h[2:4], 16, 64)
	b, _ = strconv.ParseInt(h[4:6], 16, 64)
	return r, g, b
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
