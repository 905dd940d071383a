// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelplan

// Node is a single non-empty voxel's horizontal coordinate.
type Node struct {
	X, Z int
}

// LayerNodes maps a y-level to the nodes occupying it.
type LayerNodes map[int][]Node

// ArrayModelToNodes reduces a 3D boolean-ish voxel grid (dims X,Y,Z) to a
// per-layer set of occupied (x,z) coordinates. A voxel is occupied when
// its block id is non-zero.
func ArrayModelToNodes(grid [][][]uint8, dims [3]int) LayerNodes {
	layers := make(LayerNodes)
	for y := 0; y < dims[1]; y++ {
		var nodes []Node
		for x := 0; x < dims[0]; x++ {
			for z := 0; z < dims[2]; z++ {
				if grid[x][y][z] != 0 {
					nodes = append(nodes, Node{X: x, Z: z})
				}
			}
		}
		if len(nodes) > 0 {
			layers[y] = nodes
		}
	}
	return layers
}

func manhattan(a, b Node) int {
	return absInt(a.X-b.X) + absInt(a.Z-b.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
