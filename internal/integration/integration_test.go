package integration

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ankek/dossier/internal/chart"
	"github.com/ankek/dossier/internal/report"
	"github.com/ankek/dossier/internal/theme"
)

// TestFullPipeline runs the complete workflow from the embedded dataset to
// the assembled PDF, with and without a theme file.
func TestFullPipeline(t *testing.T) {
	tests := []struct {
		name        string
		themeFile   string
		wantMinSize int64
	}{
		{
			name:        "default theme",
			wantMinSize: 10 * 1024,
		},
		{
			name: "theme file overrides",
			themeFile: `
dossier {
  scale = 0.75

  palette {
    blue  = "#60a5fa"
    amber = "#fbbf24"
  }
}
`,
			wantMinSize: 10 * 1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			th := theme.Default()
			if tt.themeFile != "" {
				path := filepath.Join(tmpDir, "theme.hcl")
				if err := os.WriteFile(path, []byte(tt.themeFile), 0644); err != nil {
					t.Fatalf("Failed to write theme file: %v", err)
				}
				var err error
				th, err = theme.LoadFile(path)
				if err != nil {
					t.Fatalf("LoadFile() error = %v", err)
				}
			}
			th.Output = filepath.Join(tmpDir, "analysis.pdf")

			if err := report.Generate(th); err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			content, err := os.ReadFile(th.Output)
			if err != nil {
				t.Fatalf("Failed to read output file: %v", err)
			}
			if int64(len(content)) < tt.wantMinSize {
				t.Errorf("output PDF is %d bytes, want at least %d", len(content), tt.wantMinSize)
			}
			if !strings.HasPrefix(string(content), "%PDF-") {
				t.Error("output does not start with a PDF header")
			}
		})
	}
}

// TestChartExportEndToEnd renders every chart to disk and verifies each file
// decodes as a PNG.
func TestChartExportEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	r := chart.New(theme.Default())
	paths, err := r.WriteAll(tmpDir)
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if len(paths) != 6 {
		t.Fatalf("WriteAll() wrote %d files, want 6", len(paths))
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Failed to read %s: %v", path, err)
			continue
		}
		img, err := png.Decode(bytes.NewReader(content))
		if err != nil {
			t.Errorf("%s is not a valid PNG: %v", filepath.Base(path), err)
			continue
		}
		if img.Bounds().Empty() {
			t.Errorf("%s decoded to an empty image", filepath.Base(path))
		}
	}
}
