// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelplan

// JoinPathsGreedily stitches paths (node indices into nodes) into one
// flat visit order, starting from start. At each step it picks whichever
// remaining path has its nearest endpoint (front or back) closest to the
// current position, reverses the path when the back endpoint won, and
// advances the current position to that path's far end.
func JoinPathsGreedily(start Node, paths [][]int, nodes []Node) []int {
	remaining := make([][]int, len(paths))
	copy(remaining, paths)

	current := start
	var result []int
	for len(remaining) > 0 {
		bestIdx := 0
		bestReversed := false
		bestDist := -1
		for idx, path := range remaining {
			front := nodes[path[0]]
			back := nodes[path[len(path)-1]]
			if df := manhattan(current, front); bestDist < 0 || df < bestDist {
				bestDist, bestIdx, bestReversed = df, idx, false
			}
			if db := manhattan(current, back); db < bestDist {
				bestDist, bestIdx, bestReversed = db, idx, true
			}
		}

		path := remaining[bestIdx]
		if bestReversed {
			path = reversed(path)
		}
		result = append(result, path...)
		current = nodes[path[len(path)-1]]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return result
}

func reversed(path []int) []int {
	out := make([]int, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}
	return out
}
