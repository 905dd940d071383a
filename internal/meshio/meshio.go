// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package meshio

import (
	"fmt"
)

// LoadVoxelGrid is the seam for loading a mesh as a voxel grid. It is a
// stub: it reads nothing and always returns an error. Pre-voxelized JSON
// models are read by cmd/turtlectl instead. In the signature, dims is
// [X,Y,Z] and grid is indexed grid[x][y][z].
func LoadVoxelGrid(path string) (grid [][][]uint8, dims [3]int, err error) {
	return nil, [3]int{}, fmt.Errorf("meshio: %s: mesh-to-voxel conversion not implemented, load a pre-voxelized grid directly", path)
}

// ValidateDims checks that grid's shape matches the claimed dims, the one
// piece of real logic this seam owns.
func ValidateDims(grid [][][]uint8, dims [3]int) error {
	if len(grid) != dims[0] {
		return fmt.Errorf("meshio: grid X = %d, dims claim %d", len(grid), dims[0])
	}
	for x, plane := range grid {
		if len(plane) != dims[1] {
			return fmt.Errorf("meshio: grid[%d] Y = %d, dims claim %d", x, len(plane), dims[1])
		}
		for y, col := range plane {
			if len(col) != dims[2] {
				return fmt.Errorf("meshio: grid[%d][%d] Z = %d, dims claim %d", x, y, len(col), dims[2])
			}
		}
	}
	return nil
}
