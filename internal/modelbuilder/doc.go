// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package modelbuilder is the online, per-turtle consumer of
// internal/modelplan's output: it walks a model layer by layer from the
// top down, placing blocks along the planner's stitched visit order, and
// runs the refill ritual against a chest column whenever local inventory
// tracking says it has run dry.
package modelbuilder
