// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package nav

import (
	"strconv"

	"github.com/turtlefleet/controller/cerrs"
	"github.com/turtlefleet/controller/internal/heading"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// State is the on-disk shape of positions/{id}.nav: four lines, x, y, z,
// heading, in that fixed order. Position is ground truth for where the
// turtle IS, updated only after the primitive driver confirms success.
type State struct {
	Pos  worldpos.Pos
	Head heading.Head_e
}

// DefaultState is the state a turtle starts with before its first GPS fix:
// the world origin, facing north.
func DefaultState() *State {
	return &State{Pos: worldpos.Pos{}, Head: heading.N}
}

// EncodeLines implements statestore.LineCodec.
func (s *State) EncodeLines() []string {
	return []string{
		strconv.Itoa(s.Pos.X),
		strconv.Itoa(s.Pos.Y),
		strconv.Itoa(s.Pos.Z),
		s.Head.String(),
	}
}

// DecodeLines implements statestore.LineCodec.
func (s *State) DecodeLines(lines []string) error {
	if len(lines) != 4 {
		return cerrs.ErrInvalidNavState
	}
	x, err := strconv.Atoi(lines[0])
	if err != nil {
		return err
	}
	y, err := strconv.Atoi(lines[1])
	if err != nil {
		return err
	}
	z, err := strconv.Atoi(lines[2])
	if err != nil {
		return err
	}
	h, err := heading.FromString(lines[3])
	if err != nil {
		return err
	}
	s.Pos = worldpos.Pos{X: x, Y: y, Z: z}
	s.Head = h
	return nil
}

// PosH returns the state as a combined position+heading value.
func (s *State) PosH() worldpos.PosH {
	return worldpos.PosH{Pos: s.Pos, Head: s.Head}
}
