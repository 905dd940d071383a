// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package heading

import (
	"encoding/json"
	"fmt"

	"github.com/turtlefleet/controller/cerrs"
)

// Head_e is an enum for the four cardinal headings a turtle can face.
type Head_e int

const (
	N Head_e = iota
	E
	S
	W
)

// Heads is a helper for iterating over the headings in clockwise order.
var Heads = []Head_e{N, E, S, W}

// MarshalJSON implements the json.Marshaler interface.
func (h Head_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[h])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *Head_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *h, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("%w: %q", cerrs.ErrInvalidHeading, s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (h Head_e) String() string {
	if str, ok := EnumToString[h]; ok {
		return str
	}
	return fmt.Sprintf("Head(%d)", int(h))
}

var (
	EnumToString = map[Head_e]string{
		N: "n",
		E: "e",
		S: "s",
		W: "w",
	}
	StringToEnum = map[string]Head_e{
		"n": N,
		"e": E,
		"s": S,
		"w": W,
	}
)

// FromString parses the on-disk heading character ("n", "e", "s", "w").
func FromString(s string) (Head_e, error) {
	if h, ok := StringToEnum[s]; ok {
		return h, nil
	}
	return N, fmt.Errorf("%w: %q", cerrs.ErrInvalidHeading, s)
}

// Diff returns the signed rotation from a to b in {-1, 0, 1, 2}.
// Positive is clockwise (turnRight); -1 is counter-clockwise (turnLeft);
// 2 is the 180-degree case, always realized as two turnRight calls.
func (a Head_e) Diff(b Head_e) int {
	delta := (int(b) - int(a) + 4) % 4
	switch delta {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return -1
	}
	panic(fmt.Sprintf("assert(delta != %d)", delta))
}

// Right returns the heading one clockwise step from h.
func (h Head_e) Right() Head_e {
	return Head_e((int(h) + 1) % 4)
}

// Left returns the heading one counter-clockwise step from h.
func (h Head_e) Left() Head_e {
	return Head_e((int(h) + 3) % 4)
}
