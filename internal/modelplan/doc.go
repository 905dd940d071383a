// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package modelplan is the offline geometric workload planner: voxelize a
// mesh into per-layer nodes, cluster the projected density grid by
// k-means, build a per-layer Kruskal MST, turn the MST into monotonic
// paths, and stitch the paths into one greedy visit order. Every function
// is pure — no I/O, no mutable package state — so independently running
// turtles converge on identical output given the same mesh and seed.
package modelplan
