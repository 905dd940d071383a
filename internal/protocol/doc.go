// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package protocol implements the response codec of spec.md §4.B: the
// three-shape rendezvous reply (Ok/json, BadRequest, BadCode) and the typed
// decoders for Movement, Inspect, and Slot detail results.
package protocol
