// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package transport implements the three HTTP endpoints of spec.md §6:
// POST /register/{id} spawns a planner goroutine for a turtle, GET
// /next/{id} non-blockingly pops its next pending command, and POST
// /cmdcomplete/{id} pushes the turtle's reply back to the waiting
// planner. The transport itself holds no planning state; it is a thin
// HTTP face on top of internal/registry and internal/rendezvous.
package transport
