// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelbuilder

import (
	"strconv"

	"github.com/turtlefleet/controller/cerrs"
)

// Progress is the on-disk shape of progress/{id}.modelbuilder: the y of
// the layer currently (or most recently) being built, and the offset
// (modulo MaxChests) of the chest the refill ritual last advanced to.
type Progress struct {
	StartLayer int
	StackCount int
}

// DefaultProgress is a builder that hasn't started yet.
func DefaultProgress() *Progress {
	return &Progress{}
}

// EncodeLines implements statestore.LineCodec.
func (p *Progress) EncodeLines() []string {
	return []string{strconv.Itoa(p.StartLayer), strconv.Itoa(p.StackCount)}
}

// DecodeLines implements statestore.LineCodec.
func (p *Progress) DecodeLines(lines []string) error {
	if len(lines) != 2 {
		return cerrs.ErrInvalidProgressState
	}
	layer, err := strconv.Atoi(lines[0])
	if err != nil {
		return err
	}
	stack, err := strconv.Atoi(lines[1])
	if err != nil {
		return err
	}
	p.StartLayer = layer
	p.StackCount = stack
	return nil
}
