// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package statestore implements the uniform "load-from-file-or-initialize-
// then-save" discipline spec.md §4.D asks for: any struct that is just
// {path, fields} can satisfy LineCodec and get load/save for free, one
// field per line in a fixed order. Saves are truncate-and-write; a crash
// mid-write is acceptable because a retried turtle either reads the last
// good value or falls back to the zero value on its next load.
package statestore
