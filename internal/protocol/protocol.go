// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/turtlefleet/controller/cerrs"
)

// Response codes, matching the wire contract of POST /cmdcomplete/{id}:
// {"code": int, "out": any}.
const (
	CodeOk         = 0
	CodeBadRequest = -1
	CodeBadCode    = -2
)

// Response is the raw payload a turtle posts to /cmdcomplete.
type Response struct {
	Code int             `json:"code"`
	Out  json.RawMessage `json:"out"`
}

// BadRequestError wraps a malformed-request reply from the remote turtle.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s: %s", cerrs.ErrBadRequest, e.Message)
}

func (e *BadRequestError) Unwrap() error { return cerrs.ErrBadRequest }

// BadCodeError wraps a remote-script-errored reply from the turtle.
type BadCodeError struct {
	Message string
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("%s: %s", cerrs.ErrBadCode, e.Message)
}

func (e *BadCodeError) Unwrap() error { return cerrs.ErrBadCode }

// Classify inspects a Response's code and either returns the raw JSON value
// (Ok) or a typed error (BadRequest/BadCode). The primitive driver
// propagates the error; navigation treats it like a failed movement.
func Classify(resp Response) (json.RawMessage, error) {
	switch resp.Code {
	case CodeOk:
		return resp.Out, nil
	case CodeBadRequest:
		var msg string
		if err := json.Unmarshal(resp.Out, &msg); err != nil {
			msg = string(resp.Out)
		}
		return nil, &BadRequestError{Message: msg}
	case CodeBadCode:
		var msg string
		if err := json.Unmarshal(resp.Out, &msg); err != nil {
			msg = string(resp.Out)
		}
		return nil, &BadCodeError{Message: msg}
	default:
		return nil, fmt.Errorf("%w: unknown response code %d", cerrs.ErrDecodeFailed, resp.Code)
	}
}

// Movement is the result of any turtle movement/turn/dig primitive.
type Movement struct {
	Success bool
	Message string
}

// DecodeMovement parses the Lua-style array of length 1 or 2: a bool,
// optionally followed by a string message.
func DecodeMovement(raw json.RawMessage) (Movement, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return Movement{}, fmt.Errorf("%w: movement: %v", cerrs.ErrDecodeFailed, err)
	}
	if len(arr) < 1 || len(arr) > 2 {
		return Movement{}, fmt.Errorf("%w: movement: want length 1 or 2, got %d", cerrs.ErrDecodeFailed, len(arr))
	}
	var m Movement
	if err := json.Unmarshal(arr[0], &m.Success); err != nil {
		return Movement{}, fmt.Errorf("%w: movement: success flag: %v", cerrs.ErrDecodeFailed, err)
	}
	if len(arr) == 2 {
		if err := json.Unmarshal(arr[1], &m.Message); err != nil {
			return Movement{}, fmt.Errorf("%w: movement: message: %v", cerrs.ErrDecodeFailed, err)
		}
	}
	return m, nil
}

// Inspect is the result of turtle.inspect{,Up,Down}(): the name of the
// block occupying the face, or an empty Name when Present is false.
type Inspect struct {
	Present bool
	Name    string
}

// DecodeInspect parses the [bool, obj] array; when bool is false there is
// no block and obj is ignored.
func DecodeInspect(raw json.RawMessage) (Inspect, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return Inspect{}, fmt.Errorf("%w: inspect: %v", cerrs.ErrDecodeFailed, err)
	}
	if len(arr) != 2 {
		return Inspect{}, fmt.Errorf("%w: inspect: want length 2, got %d", cerrs.ErrDecodeFailed, len(arr))
	}
	var present bool
	if err := json.Unmarshal(arr[0], &present); err != nil {
		return Inspect{}, fmt.Errorf("%w: inspect: present flag: %v", cerrs.ErrDecodeFailed, err)
	}
	if !present {
		return Inspect{Present: false}, nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(arr[1], &obj); err != nil {
		return Inspect{}, fmt.Errorf("%w: inspect: block: %v", cerrs.ErrDecodeFailed, err)
	}
	return Inspect{Present: true, Name: obj.Name}, nil
}

// SlotDetail is the item occupying one inventory slot.
type SlotDetail struct {
	Name  string
	Count int
}

// DecodeSlot parses the single-element-or-empty array getItemDetail
// returns: an empty array means no item; a one-object array carries
// {count, name}.
func DecodeSlot(raw json.RawMessage) (*SlotDetail, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("%w: slot: %v", cerrs.ErrDecodeFailed, err)
	}
	if len(arr) == 0 {
		return nil, nil
	}
	if len(arr) != 1 {
		return nil, fmt.Errorf("%w: slot: want length 0 or 1, got %d", cerrs.ErrDecodeFailed, len(arr))
	}
	var obj struct {
		Count int    `json:"count"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(arr[0], &obj); err != nil {
		return nil, fmt.Errorf("%w: slot: %v", cerrs.ErrDecodeFailed, err)
	}
	return &SlotDetail{Name: obj.Name, Count: obj.Count}, nil
}
