// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package turtleapi implements the primitive driver of spec.md §4.C: a
// thin typed method surface over the rendezvous channel that emits the
// literal remote command strings and decodes their replies.
package turtleapi
