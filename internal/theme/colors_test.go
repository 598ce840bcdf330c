package theme

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		hexColor string
		want     color.RGBA
		wantErr  bool
	}{
		{
			name:     "with hash prefix",
			hexColor: "#3b82f6",
			want:     color.RGBA{0x3b, 0x82, 0xf6, 255},
		},
		{
			name:     "without hash prefix",
			hexColor: "10b981",
			want:     color.RGBA{0x10, 0xb9, 0x81, 255},
		},
		{
			name:     "white",
			hexColor: "#ffffff",
			want:     color.RGBA{255, 255, 255, 255},
		},
		{
			name:     "black",
			hexColor: "#000000",
			want:     color.RGBA{0, 0, 0, 255},
		},
		{
			name:     "too short",
			hexColor: "#fff",
			wantErr:  true,
		},
		{
			name:     "empty",
			hexColor: "",
			wantErr:  true,
		},
		{
			name:     "non-hex digits",
			hexColor: "#zzzzzz",
			wantErr:  true,
		},
		{
			name:     "trailing non-hex digit",
			hexColor: "#3b82fg",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hexColor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hexColor, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.hexColor, got, tt.want)
			}
		})
	}
}

func TestMustHexPanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on an invalid color")
		}
	}()
	MustHex("not-a-color")
}

func TestRGB(t *testing.T) {
	r, g, b := RGB("#f59e0b")
	if r != 0xf5 || g != 0x9e || b != 0x0b {
		t.Errorf("RGB(#f59e0b) = (%d, %d, %d), want (245, 158, 11)", r, g, b)
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		name     string
		hexColor string
		percent  int
		want     string
	}{
		{"lighten black 50%", "#000000", 50, "#7f7f7f"},
		{"lighten by zero", "#3b82f6", 0, "#3b82f6"},
		{"lighten to white", "#123456", 100, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lighten(tt.hexColor, tt.percent); got != tt.want {
				t.Errorf("Lighten(%s, %d) = %s, want %s", tt.hexColor, tt.percent, got, tt.want)
			}
		})
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name     string
		hexColor string
		percent  int
		want     string
	}{
		{"darken white 50%", "#ffffff", 50, "#7f7f7f"},
		{"darken by zero", "#3b82f6", 0, "#3b82f6"},
		{"darken to black", "#3b82f6", 100, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Darken(tt.hexColor, tt.percent); got != tt.want {
				t.Errorf("Darken(%s, %d) = %s, want %s", tt.hexColor, tt.percent, got, tt.want)
			}
		})
	}
}

func TestDarkenedBorderStaysParseable(t *testing.T) {
	// Highlight boxes derive their background from the border this way.
	for _, hex := range []string{"#3b82f6", "#ef4444", "#f59e0b", "#94a3b8"} {
		if _, err := ParseHex(Darken(hex, 72)); err != nil {
			t.Errorf("Darken(%s, 72) produced unparseable color: %v", hex, err)
		}
	}
}
