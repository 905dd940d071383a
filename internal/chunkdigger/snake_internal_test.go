// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chunkdigger

import (
	"testing"

	"github.com/turtlefleet/controller/internal/heading"
)

// TestColumnHeadingMatchesLiteralTable asserts columnHeading against
// spec.md §4.I's 8-row table verbatim, row by row, so a transcription
// error (swapped N/S, wrong bit) fails here instead of shipping silently.
func TestColumnHeadingMatchesLiteralTable(t *testing.T) {
	const (
		odd  = true
		even = false
	)
	cases := []struct {
		columnOdd, yOdd, xOdd bool
		want                  heading.Head_e
	}{
		{odd, even, even, heading.N},
		{odd, even, odd, heading.S},
		{odd, odd, even, heading.S},
		{odd, odd, odd, heading.N},
		{even, even, even, heading.S},
		{even, even, odd, heading.N},
		{even, odd, even, heading.S},
		{even, odd, odd, heading.N},
	}
	for _, c := range cases {
		got := columnHeading(c.columnOdd, c.yOdd, c.xOdd)
		if got != c.want {
			t.Errorf("columnHeading(columnOdd=%v, yOdd=%v, xOdd=%v) = %v, want %v",
				c.columnOdd, c.yOdd, c.xOdd, got, c.want)
		}
	}
}
