package document

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ankek/dossier/internal/theme"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3))); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestBuildWritesPDF(t *testing.T) {
	b := NewBuilder(theme.Default())
	b.Add(
		Heading{Text: "TITULO", Color: "#3b82f6", Size: 14, SpaceAfter: 3},
		Paragraph{Text: "Cuerpo del documento.", Color: "#cbd5e1", Size: 9, LineH: 4.5},
		Spacer{H: 4},
	)

	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}

	var buf bytes.Buffer
	if err := b.Build(&buf); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("Build() output does not start with a PDF header")
	}
}

func TestBuildFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	b := NewBuilder(theme.Default())
	b.Add(Heading{Text: "X", Color: "#f8fafc", Size: 12})

	if err := b.BuildFile(path); err != nil {
		t.Fatalf("BuildFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestPageBreak(t *testing.T) {
	b := NewBuilder(theme.Default())
	b.Add(
		Heading{Text: "Pagina uno", Color: "#f8fafc", Size: 12},
		PageBreak{},
		Heading{Text: "Pagina dos", Color: "#f8fafc", Size: 12},
	)

	pdf, err := b.layout()
	if err != nil {
		t.Fatalf("layout() error = %v", err)
	}
	if got := pdf.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
}

func TestKeepTogetherStartsNewPage(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"a", "b"}
	}
	table := Table{
		Header: []string{"Col1", "Col2"},
		Rows:   rows,
		ColW:   []float64{40, 40},
	}

	b := NewBuilder(theme.Default())
	// Push the cursor low enough that the unbreakable table cannot fit.
	b.Add(Spacer{H: 200}, table)

	pdf, err := b.layout()
	if err != nil {
		t.Fatalf("layout() error = %v", err)
	}
	if got := pdf.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2 (table should move to a fresh page)", got)
	}
}

func TestTableValidation(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{
			name: "width count mismatch",
			table: Table{
				Header: []string{"A", "B"},
				Rows:   [][]string{{"1", "2"}},
				ColW:   []float64{40},
			},
		},
		{
			name: "row cell count mismatch",
			table: Table{
				Header: []string{"A", "B"},
				Rows:   [][]string{{"only one"}},
				ColW:   []float64{40, 40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(theme.Default())
			b.Add(tt.table)
			if err := b.Build(&bytes.Buffer{}); err == nil {
				t.Error("Build() should fail for a malformed table")
			}
		})
	}
}

func TestImageBlock(t *testing.T) {
	b := NewBuilder(theme.Default())
	b.Add(Image{Name: "fixture", PNG: testPNG(t), W: 60, H: 45})

	if err := b.Build(&bytes.Buffer{}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}

func TestImageBlockEmpty(t *testing.T) {
	b := NewBuilder(theme.Default())
	b.Add(Image{Name: "empty", W: 60, H: 45})

	if err := b.Build(&bytes.Buffer{}); err == nil {
		t.Error("Build() should fail for an empty image")
	}
}

func TestStatGridEmpty(t *testing.T) {
	b := NewBuilder(theme.Default())
	b.Add(StatGrid{})

	if err := b.Build(&bytes.Buffer{}); err == nil {
		t.Error("Build() should fail for a stat grid without cells")
	}
}

func TestHeadingHeight(t *testing.T) {
	h := Heading{Text: "X", Size: 14, SpaceBefore: 6, SpaceAfter: 3}
	want := 6 + 14*0.48 + 3
	if got := h.height(nil); math.Abs(got-want) > 1e-9 {
		t.Errorf("height() = %v, want %v", got, want)
	}
}

func TestBreakableBlocks(t *testing.T) {
	// Only paragraphs may split across pages.
	if !(Paragraph{}).breakable() {
		t.Error("Paragraph should be breakable")
	}
	for name, blk := range map[string]Block{
		"heading":   Heading{},
		"highlight": Highlight{},
		"image":     Image{},
		"table":     Table{},
		"statgrid":  StatGrid{},
		"spacer":    Spacer{},
		"pagebreak": PageBreak{},
	} {
		if blk.breakable() {
			t.Errorf("%s should not be breakable", name)
		}
	}
}
