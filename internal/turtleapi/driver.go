// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package turtleapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/turtlefleet/controller/cerrs"
	"github.com/turtlefleet/controller/internal/heading"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/rendezvous"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// Driver is the typed wrapper a turtle's planner uses to talk to its
// rendezvous channel. It owns no navigation or inventory state of its own.
type Driver struct {
	ch  *rendezvous.Channel
	ctx context.Context
}

// New returns a Driver bound to ch. ctx governs how long Recv will wait;
// pass context.Background() for the spec-mandated "no timeout" behavior.
func New(ctx context.Context, ch *rendezvous.Channel) *Driver {
	return &Driver{ch: ch, ctx: ctx}
}

func (d *Driver) call(cmd string) (json.RawMessage, error) {
	d.ch.Send(cmd)
	resp, err := d.ch.Recv(d.ctx)
	if err != nil {
		return nil, err
	}
	return protocol.Classify(resp)
}

func (d *Driver) movement(cmd string) (protocol.Movement, error) {
	raw, err := d.call(cmd)
	if err != nil {
		return protocol.Movement{}, err
	}
	return protocol.DecodeMovement(raw)
}

func (d *Driver) inspect(cmd string) (protocol.Inspect, error) {
	raw, err := d.call(cmd)
	if err != nil {
		return protocol.Inspect{}, err
	}
	return protocol.DecodeInspect(raw)
}

func (d *Driver) Forward() (protocol.Movement, error) { return d.movement("turtle.forward()") }
func (d *Driver) Back() (protocol.Movement, error)     { return d.movement("turtle.back()") }
func (d *Driver) Up() (protocol.Movement, error)       { return d.movement("turtle.up()") }
func (d *Driver) Down() (protocol.Movement, error)     { return d.movement("turtle.down()") }

func (d *Driver) TurnLeft() (protocol.Movement, error)  { return d.movement("turtle.turnLeft()") }
func (d *Driver) TurnRight() (protocol.Movement, error) { return d.movement("turtle.turnRight()") }

func (d *Driver) Dig() (protocol.Movement, error)     { return d.movement("turtle.dig()") }
func (d *Driver) DigUp() (protocol.Movement, error)   { return d.movement("turtle.digUp()") }
func (d *Driver) DigDown() (protocol.Movement, error) { return d.movement("turtle.digDown()") }

func (d *Driver) Inspect() (protocol.Inspect, error)     { return d.inspect("turtle.inspect()") }
func (d *Driver) InspectUp() (protocol.Inspect, error)   { return d.inspect("turtle.inspectUp()") }
func (d *Driver) InspectDown() (protocol.Inspect, error) { return d.inspect("turtle.inspectDown()") }

// checkSlot enforces spec.md's invariant that an out-of-range slot index is
// a programmer error, not a recoverable condition.
func checkSlot(slot int) {
	if slot < 0 || slot >= 16 {
		panic(fmt.Sprintf("%s: %d", cerrs.ErrSlotOutOfRange, slot))
	}
}

// Select chooses the active inventory slot. slot is 0-based in the model;
// the wire protocol is 1-based, and that conversion lives here.
func (d *Driver) Select(slot int) error {
	checkSlot(slot)
	_, err := d.call(fmt.Sprintf("turtle.select(%d)", slot+1))
	return err
}

// GetItemDetail returns the slot's contents, or nil if the slot is empty.
func (d *Driver) GetItemDetail(slot int) (*protocol.SlotDetail, error) {
	checkSlot(slot)
	raw, err := d.call(fmt.Sprintf("turtle.getItemDetail(%d)", slot+1))
	if err != nil {
		return nil, err
	}
	return protocol.DecodeSlot(raw)
}

// Drop, DropUp, DropDown drop the selected slot's contents. The result is
// not specially typed (spec.md calls it "raw") — callers that care about
// success reuse DecodeMovement's shape, since the wire reply is the same
// [bool] / [bool, string] array the movement primitives use.
func (d *Driver) Drop() (protocol.Movement, error)     { return d.movement("turtle.drop()") }
func (d *Driver) DropUp() (protocol.Movement, error)   { return d.movement("turtle.dropUp()") }
func (d *Driver) DropDown() (protocol.Movement, error) { return d.movement("turtle.dropDown()") }

func (d *Driver) Suck() (protocol.Movement, error)     { return d.movement("turtle.suck()") }
func (d *Driver) SuckUp() (protocol.Movement, error)   { return d.movement("turtle.suckUp()") }
func (d *Driver) SuckDown() (protocol.Movement, error) { return d.movement("turtle.suckDown()") }

func (d *Driver) Place() (protocol.Movement, error)     { return d.movement("turtle.place()") }
func (d *Driver) PlaceUp() (protocol.Movement, error)   { return d.movement("turtle.placeUp()") }
func (d *Driver) PlaceDown() (protocol.Movement, error) { return d.movement("turtle.placeDown()") }

// GPS issues gps.locate() and returns the turtle's absolute position.
// Heading is always reported as N; gps_init derives the real heading from
// two successive locates. A missing GPS signal is fatal per spec.md §6.
func (d *Driver) GPS() (worldpos.PosH, error) {
	raw, err := d.call("gps.locate()")
	if err != nil {
		return worldpos.PosH{}, fmt.Errorf("%w: %v", cerrs.ErrGPSUnavailable, err)
	}
	var xyz [3]int
	if err := json.Unmarshal(raw, &xyz); err != nil {
		return worldpos.PosH{}, fmt.Errorf("%w: %v", cerrs.ErrGPSUnavailable, err)
	}
	return worldpos.PosH{
		Pos:  worldpos.Pos{X: xyz[0], Y: xyz[1], Z: xyz[2]},
		Head: heading.N,
	}, nil
}

// Print sends a human-readable message to the turtle's terminal.
func (d *Driver) Print(message string) error {
	_, err := d.call(fmt.Sprintf("print(%q)", message))
	return err
}

// Disconnect is a one-way signal: it enqueues the EXIT sentinel and does
// not wait for a reply.
func (d *Driver) Disconnect() {
	d.ch.Disconnect()
}
