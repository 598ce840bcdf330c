package theme

import (
	"testing"

	"github.com/ankek/dossier/internal/dataset"
)

func TestDefault(t *testing.T) {
	th := Default()

	if th.Output != DefaultOutput {
		t.Errorf("Output = %s, want %s", th.Output, DefaultOutput)
	}
	if th.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", th.Scale)
	}
	if th.Palette.BGDark != "#0f172a" {
		t.Errorf("BGDark = %s, want #0f172a", th.Palette.BGDark)
	}
	if th.Palette.Green != "#10b981" {
		t.Errorf("Green = %s, want #10b981", th.Palette.Green)
	}
}

func TestStanceColor(t *testing.T) {
	p := Default().Palette

	tests := []struct {
		name   string
		stance dataset.Stance
		want   string
	}{
		{"votes for resolutions", dataset.StanceFor, p.Red},
		{"abstains", dataset.StanceAbstain, p.Amber},
		{"votes against resolutions", dataset.StanceAgainst, p.Green},
		{"unknown stance", dataset.Stance(0), p.Slate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.StanceColor(tt.stance); got != tt.want {
				t.Errorf("StanceColor(%d) = %s, want %s", tt.stance, got, tt.want)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	p := Default().Palette

	tests := []struct {
		name string
		pct  float64
		hi   float64
		want string
	}{
		{"well above country threshold", 95, 70, p.Green},
		{"exactly at country threshold", 70, 70, p.Green},
		{"mid band", 55, 70, p.Amber},
		{"exactly at amber floor", 40, 70, p.Amber},
		{"just below amber floor", 39.9, 70, p.Red},
		{"group threshold green", 60, 60, p.Green},
		{"group threshold amber", 45, 60, p.Amber},
		{"lowest series value", 5, 60, p.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Grade(tt.pct, tt.hi); got != tt.want {
				t.Errorf("Grade(%v, %v) = %s, want %s", tt.pct, tt.hi, got, tt.want)
			}
		})
	}
}
