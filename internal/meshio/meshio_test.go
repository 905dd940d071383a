// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package meshio_test

import (
	"testing"

	"github.com/turtlefleet/controller/internal/meshio"
)

func TestValidateDimsAcceptsMatchingGrid(t *testing.T) {
	grid := make([][][]uint8, 2)
	for x := range grid {
		grid[x] = make([][]uint8, 3)
		for y := range grid[x] {
			grid[x][y] = make([]uint8, 4)
		}
	}
	if err := meshio.ValidateDims(grid, [3]int{2, 3, 4}); err != nil {
		t.Fatalf("ValidateDims: %v", err)
	}
}

func TestValidateDimsRejectsMismatch(t *testing.T) {
	grid := make([][][]uint8, 2)
	if err := meshio.ValidateDims(grid, [3]int{3, 0, 0}); err == nil {
		t.Fatalf("expected error for mismatched X dimension")
	}
}

func TestLoadVoxelGridReturnsNotImplementedError(t *testing.T) {
	if _, _, err := meshio.LoadVoxelGrid("model.vox"); err == nil {
		t.Fatalf("expected error, meshio is a stub")
	}
}
