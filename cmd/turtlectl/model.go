// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/turtlefleet/controller/internal/meshio"
)

// voxelFile is the on-disk shape of a model the build command consumes:
// a pre-voxelized grid, already reduced from whatever mesh format
// produced it. Converting an actual triangle mesh into this shape is out
// of scope; this command only reads the result.
type voxelFile struct {
	Dims [3]int     `json:"Dims"`
	Grid [][][]uint8 `json:"Grid"`
}

func loadVoxelFile(path string) (grid [][][]uint8, dims [3]int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dims, fmt.Errorf("model: %s: %w", path, err)
	}
	var vf voxelFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return nil, dims, fmt.Errorf("model: %s: %w", path, err)
	}
	if err := meshio.ValidateDims(vf.Grid, vf.Dims); err != nil {
		return nil, dims, err
	}
	return vf.Grid, vf.Dims, nil
}
