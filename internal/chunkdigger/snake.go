// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chunkdigger

import "github.com/turtlefleet/controller/internal/heading"

// Cell is one stop along a slab's snake-raster sweep: the world (x,z) and
// the heading the turtle should face while digging there.
type Cell struct {
	X, Z int
	Head heading.Head_e
}

// columnHeadingTable is spec.md §4.I's 8-row table transcribed verbatim,
// indexed [columnOdd][yOdd][xOdd] (odd=1, even=0), where columnOdd is the
// parity of the slab's number of x-columns (the table's x_even(count)),
// so there is no hand-wired boolean switch to get wrong:
//
//	| x_even(count) | y parity | x parity | heading |
//	|---|---|---|---|
//	| odd  | even | even | N |
//	| odd  | even | odd  | S |
//	| odd  | odd  | even | S |
//	| odd  | odd  | odd  | N |
//	| even | even | even | S |
//	| even | even | odd  | N |
//	| even | odd  | even | S |
//	| even | odd  | odd  | N |
//
// The table has no clean closed form — several XOR combinations of the
// three bits were tried and none reproduced all eight rows, so it is
// reproduced as given rather than derived.
var columnHeadingTable = [2][2][2]heading.Head_e{
	0: { // columnOdd = even
		0: {heading.S, heading.N}, // yOdd = even: xOdd even, odd
		1: {heading.S, heading.N}, // yOdd = odd:  xOdd even, odd
	},
	1: { // columnOdd = odd
		0: {heading.N, heading.S}, // yOdd = even: xOdd even, odd
		1: {heading.S, heading.N}, // yOdd = odd:  xOdd even, odd
	},
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// columnHeading is the z-sweep direction (N or S) for one x-column, keyed
// by the parity of the slab's column count (columnOdd), the slab's y
// (yOdd), and the column's world x coordinate (xOdd).
func columnHeading(columnOdd, yOdd, xOdd bool) heading.Head_e {
	return columnHeadingTable[boolIndex(columnOdd)][boolIndex(yOdd)][boolIndex(xOdd)]
}

// SlabOrder computes the snake-raster visiting order for one height-3
// slab spanning x in [p1.X, p2.X] and z in [p1.Z, p2.Z], at world y
// slabY. The x-sweep itself alternates direction with the slab's y
// parity, and each x-column's z-sweep direction comes from the
// columnHeading table, keeping the turtle's path contiguous.
func SlabOrder(p1X, p2X, p1Z, p2Z, slabY int) []Cell {
	yOdd := slabY%2 != 0

	xs := make([]int, 0, p2X-p1X+1)
	for x := p1X; x <= p2X; x++ {
		xs = append(xs, x)
	}
	if yOdd {
		for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}

	columnOdd := len(xs)%2 != 0
	var cells []Cell
	for _, x := range xs {
		xOdd := x%2 != 0
		head := columnHeading(columnOdd, yOdd, xOdd)

		if head == heading.N {
			for z := p2Z; z >= p1Z; z-- {
				cells = append(cells, Cell{X: x, Z: z, Head: head})
			}
		} else {
			for z := p1Z; z <= p2Z; z++ {
				cells = append(cells, Cell{X: x, Z: z, Head: head})
			}
		}
	}
	return cells
}
