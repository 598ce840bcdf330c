// Package interfaces defines interfaces for dependency injection and testing
package interfaces

// ChartRenderer produces the six dossier figures as encoded PNG images.
// Satisfied by chart.Renderer; report assembly depends on this so tests can
// substitute cheap stub images.
type ChartRenderer interface {
	// Population renders Jewish population by country on a log axis
	Population() ([]byte, error)

	// Scatter renders population against UN support level
	Scatter() ([]byte, error)

	// Parliament renders European Parliament voting by group and nationality
	Parliament() ([]byte, error)

	// Erosion renders the 2017-2025 support erosion lines
	Erosion() ([]byte, error)

	// Factors renders the support-factor radar
	Factors() ([]byte, error)

	// Opinion renders the public opinion survey bars
	Opinion() ([]byte, error)
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for security and accessibility
	ValidateOutputPath(path string) error

	// ValidateInputPath validates an input path (theme file or charts directory)
	ValidateInputPath(path string, mustBeDir bool) error
}
