// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldpos

import (
	"fmt"

	"github.com/turtlefleet/controller/internal/heading"
)

// Pos is an integer world coordinate.
type Pos struct {
	X, Y, Z int
}

// String implements the fmt.Stringer interface.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Sub returns the vector from b to a, i.e. a-b.
func (a Pos) Sub(b Pos) Pos {
	return Pos{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Equals reports whether a and b are the same world coordinate.
func (a Pos) Equals(b Pos) bool {
	return a == b
}

// PosH is a world coordinate plus the heading the turtle is facing.
type PosH struct {
	Pos
	Head heading.Head_e
}

// String implements the fmt.Stringer interface.
func (p PosH) String() string {
	return fmt.Sprintf("(%d,%d,%d,%s)", p.X, p.Y, p.Z, p.Head)
}

// HeadingFromDelta derives a heading from a displacement vector, using the
// gps-bootstrap rule: z decreasing is north, z increasing is south,
// otherwise x decreasing is west and anything else is east.
func HeadingFromDelta(d Pos) heading.Head_e {
	switch {
	case d.Z < 0:
		return heading.N
	case d.Z > 0:
		return heading.S
	case d.X < 0:
		return heading.W
	default:
		return heading.E
	}
}

// Step returns the unit vector a single forward step produces for h.
func Step(h heading.Head_e) Pos {
	switch h {
	case heading.N:
		return Pos{Z: -1}
	case heading.E:
		return Pos{X: 1}
	case heading.S:
		return Pos{Z: 1}
	case heading.W:
		return Pos{X: -1}
	}
	panic(fmt.Sprintf("assert(heading != %d)", h))
}

// Axis_e enumerates the three world axes for axis-ordered traversal.
type Axis_e int

const (
	AxisX Axis_e = iota
	AxisY
	AxisZ
)

// XYZ and friends are the axis-order permutations goto_nohead accepts.
var (
	XYZ = [3]Axis_e{AxisX, AxisY, AxisZ}
	XZY = [3]Axis_e{AxisX, AxisZ, AxisY}
	YXZ = [3]Axis_e{AxisY, AxisX, AxisZ}
	YZX = [3]Axis_e{AxisY, AxisZ, AxisX}
	ZXY = [3]Axis_e{AxisZ, AxisX, AxisY}
	ZYX = [3]Axis_e{AxisZ, AxisY, AxisX}
)
