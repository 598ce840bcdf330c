package chart

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAll renders all six charts and writes each as a PNG file into dir,
// returning the paths written. Used by the charts subcommand for inspecting
// figures outside the assembled PDF.
func (r *Renderer) WriteAll(dir string) ([]string, error) {
	renderers := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"population.png", r.Population},
		{"scatter.png", r.Scatter},
		{"parliament.png", r.Parliament},
		{"erosion.png", r.Erosion},
		{"factors.png", r.Factors},
		{"opinion.png", r.Opinion},
	}

	var paths []string
	for _, cr := range renderers {
		data, err := cr.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", cr.name, err)
		}
		path := filepath.Join(dir, cr.name)
		if err := writeFile(path, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeFile writes data to a file
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
