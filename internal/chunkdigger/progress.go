// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chunkdigger

import (
	"strconv"

	"github.com/turtlefleet/controller/cerrs"
)

// Progress is the on-disk shape of progress/{id}.chunkdigger: which slab
// has been completed, and how far into the chest column the deposit
// ritual has advanced.
type Progress struct {
	Layer      int
	StackCount int
}

// DefaultProgress is a digger that hasn't started yet.
func DefaultProgress() *Progress {
	return &Progress{}
}

// EncodeLines implements statestore.LineCodec.
func (p *Progress) EncodeLines() []string {
	return []string{strconv.Itoa(p.Layer), strconv.Itoa(p.StackCount)}
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
	p.Layer = layer
	p.StackCount = stack
	return nil
}
