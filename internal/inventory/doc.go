// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package inventory mirrors a turtle's 16 inventory slots locally so a
// planner can place many blocks with one remote call each, per spec.md
// §4.F, falling back to a fresh remote query only when the local mirror
// turns out to be stale.
package inventory
