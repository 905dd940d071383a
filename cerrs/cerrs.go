// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes common error messages used throughout the application for
// domain-specific failures such as invalid slots, missing GPS, and malformed
// rendezvous replies. The Error type supports comparison via errors.Is().
package cerrs

// Error defines a constant error
type Error string

// Error implements the Errors interface
func (e Error) Error() string { return string(e) }

const (
	ErrBadCode              = Error("remote script error")
	ErrBadRequest           = Error("malformed request")
	ErrDecodeFailed         = Error("failed to decode response")
	ErrGPSUnavailable       = Error("gps locate failed")
	ErrInvalidHeading       = Error("invalid heading")
	ErrInvalidPath          = Error("invalid path")
	ErrNotADirectory        = Error("not a directory")
	ErrNotAFile             = Error("not a file")
	ErrNotImplemented       = Error("not implemented")
	ErrSlotOutOfRange       = Error("slot out of range")
	ErrTurtleNotRegistered  = Error("turtle not registered")
	ErrEmptyLayer           = Error("layer has no nodes")
	ErrInventoryEmpty       = Error("inventory is empty")
	ErrChestColumnExhausted = Error("chest column exhausted")
	ErrInvalidNavState      = Error("invalid nav state")
	ErrInvalidProgressState = Error("invalid progress state")
)
