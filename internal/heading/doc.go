// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package heading defines the Head_e enum for the four cardinal directions a
// turtle can face (N, E, S, W). It provides string conversion, JSON
// marshaling, and the signed-rotation arithmetic the navigation engine uses
// to realize turns.
package heading
