// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package worldpos defines the integer world-coordinate types used by the
// navigation engine: Pos (a bare x,y,z triple) and PosH (a Pos plus a
// heading). N is -z, E is +x, S is +z, W is -x; up is +y.
package worldpos
