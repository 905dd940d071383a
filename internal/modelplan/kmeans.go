// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelplan

import "math/rand/v2"

// Centroid is an integer-valued k-means cluster center in the projected
// (x,z) density grid.
type Centroid struct {
	X, Z int
}

// KMeans clusters the projected 2D density grid built from every layer's
// nodes into k centroids. Centroids are seeded by sampling k indices from
// the lowest non-empty layer's node list using a PRNG seeded to seed, so
// every turtle that independently runs this against the same mesh
// converges on the same centroids — the seed contract spec.md §9 calls
// out as load-bearing. spec.md and the original Rust (model_arr[0]) both
// describe seeding from literal layer 0; LayerNodes only holds non-empty
// layers (ArrayModelToNodes drops the rest), so a model whose y=0 layer
// is empty has no entry to seed from at all, and this picks the lowest
// present layer instead of panicking/seeding from nothing.
func KMeans(layers LayerNodes, dims [3]int, k int, seed uint64, maxIter int) []Centroid {
	if k <= 0 {
		return nil
	}

	weight := make([][]int, dims[0])
	for x := range weight {
		weight[x] = make([]int, dims[2])
	}
	for _, nodes := range layers {
		for _, n := range nodes {
			weight[n.X][n.Z]++
		}
	}

	seedLayer := layers[lowestLayer(layers)]
	centroids := make([]Centroid, k)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range centroids {
		if len(seedLayer) == 0 {
			continue
		}
		pick := seedLayer[rng.IntN(len(seedLayer))]
		centroids[i] = Centroid{X: pick.X, Z: pick.Z}
	}

	for iter := 0; iter < maxIter; iter++ {
		sumX := make([]int, k)
		sumZ := make([]int, k)
		sumW := make([]int, k)

		for x := 0; x < dims[0]; x++ {
			for z := 0; z < dims[2]; z++ {
				w := weight[x][z]
				if w == 0 {
					continue
				}
				nearest := nearestCentroid(centroids, x, z)
				sumX[nearest] += x * w
				sumZ[nearest] += z * w
				sumW[nearest] += w
			}
		}

		changed := false
		for i := range centroids {
			if sumW[i] == 0 {
				continue
			}
			next := Centroid{X: sumX[i] / sumW[i], Z: sumZ[i] / sumW[i]}
			if next != centroids[i] {
				changed = true
			}
			centroids[i] = next
		}
		if !changed {
			break
		}
	}

	return centroids
}

func lowestLayer(layers LayerNodes) int {
	first := true
	var min int
	for y := range layers {
		if first || y < min {
			min = y
			first = false
		}
	}
	return min
}

func nearestCentroid(centroids []Centroid, x, z int) int {
	best := 0
	bestDist := -1
	for i, c := range centroids {
		dx, dz := x-c.X, z-c.Z
		dist := dx*dx + dz*dz
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// Grouping is one cluster's per-layer membership and total node count.
type Grouping struct {
	ByLayer LayerNodes
	Count   int
}

// CentroidsToGroupings assigns every node to its nearest centroid,
// producing one Grouping per centroid.
func CentroidsToGroupings(layers LayerNodes, centroids []Centroid) []Grouping {
	groupings := make([]Grouping, len(centroids))
	for i := range groupings {
		groupings[i] = Grouping{ByLayer: make(LayerNodes)}
	}
	for y, nodes := range layers {
		for _, n := range nodes {
			c := nearestCentroid(centroids, n.X, n.Z)
			groupings[c].ByLayer[y] = append(groupings[c].ByLayer[y], n)
			groupings[c].Count++
		}
	}
	return groupings
}
