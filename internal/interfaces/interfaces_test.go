package interfaces

import (
	"testing"
)

func TestInterfacesAreDefined(t *testing.T) {
	// This test verifies that all interfaces are properly defined
	// by checking that we can reference them without compile errors

	// ChartRenderer interface
	var _ ChartRenderer

	// PathValidator interface
	var _ PathValidator

	t.Log("All interfaces are properly defined")
}
