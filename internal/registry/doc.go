// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package registry tracks the live rendezvous.Channel for every turtle
// currently talking to the controller, keyed by turtle id. It is the
// meeting point between the transport's register handler (which Registers
// a turtle and hands the returned channel to that turtle's planner for the
// life of its run) and the transport's other handlers (which Lookup by id
// on every HTTP request).
package registry
