// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package rendezvous implements the per-turtle bidirectional queue pair of
// spec.md §4.A: the planner pushes command strings and blocks for a typed
// reply; the transport's GET /next pops non-blockingly (returning "WAIT"
// when empty) and its POST /cmdcomplete pushes the reply. Exactly one
// command is ever in flight per turtle — the planner enforces that by
// always pairing Send with Recv before the next Send.
package rendezvous
