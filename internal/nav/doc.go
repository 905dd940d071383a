// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package nav implements the navigation engine of spec.md §4.E: GPS
// bootstrap, single-step movement with obstacle handling, heading
// rotation, and axis-ordered goto. Position is mutated only after the
// primitive driver confirms a move succeeded, and every mutation is
// persisted immediately — on restart the on-disk value is authoritative.
package nav
