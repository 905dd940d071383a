// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package nav

import (
	"math/rand/v2"

	"github.com/turtlefleet/controller/internal/heading"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/statestore"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// turtleNormalBlock is the block name a peer turtle presents when
// inspected, per spec.md §4.E's avoid_turtle policy.
const turtleNormalBlock = "computercraft:turtle_normal"

// Driver is the subset of turtleapi.Driver the navigation engine needs.
// Defined here so tests can supply a fake without standing up a real
// rendezvous.
type Driver interface {
	Forward() (protocol.Movement, error)
	Back() (protocol.Movement, error)
	Up() (protocol.Movement, error)
	Down() (protocol.Movement, error)
	TurnLeft() (protocol.Movement, error)
	TurnRight() (protocol.Movement, error)
	Dig() (protocol.Movement, error)
	DigUp() (protocol.Movement, error)
	DigDown() (protocol.Movement, error)
	Inspect() (protocol.Inspect, error)
	InspectUp() (protocol.Inspect, error)
	InspectDown() (protocol.Inspect, error)
	GPS() (worldpos.PosH, error)
}

// Engine owns one turtle's navigation state.
type Engine struct {
	path              string
	driver            Driver
	state             *State
	avoidOtherTurtles bool
}

// New loads (or initializes) the navigation state persisted at path and
// binds it to driver.
func New(path string, driver Driver, avoidOtherTurtles bool) (*Engine, error) {
	state, err := statestore.LoadOrInit(path, DefaultState)
	if err != nil {
		return nil, err
	}
	return &Engine{path: path, driver: driver, state: state, avoidOtherTurtles: avoidOtherTurtles}, nil
}

// Pos returns the current ground-truth position and heading.
func (e *Engine) Pos() worldpos.PosH {
	return e.state.PosH()
}

func (e *Engine) persist() error {
	return statestore.Save(e.path, e.state)
}

// GPSInit bootstraps position and heading from two gps.locate() fixes
// bracketing a single forward step, per spec.md §4.E.
func (e *Engine) GPSInit() error {
	p1, err := e.driver.GPS()
	if err != nil {
		return err
	}
	if err := e.MoveForward(); err != nil {
		return err
	}
	p2, err := e.driver.GPS()
	if err != nil {
		return err
	}
	e.state.Pos = p2.Pos
	e.state.Head = worldpos.HeadingFromDelta(p2.Pos.Sub(p1.Pos))
	return e.persist()
}

// Seed overwrites position and heading directly, bypassing GPS bootstrap,
// and persists the result. Used after a manual recalibration.
func (e *Engine) Seed(p worldpos.PosH) error {
	e.state.Pos = p.Pos
	e.state.Head = p.Head
	return e.persist()
}

// avoidTurtle reacts to a block detected at the face of motion. With
// avoidOtherTurtles disabled it always digs through. With it enabled, a
// peer turtle is handled with a 50% chance of a stateless up-forward-down
// side-step; any other block is dug. The other 50% of the turtle case is
// a deliberate no-op: the outer move loop simply retries.
func (e *Engine) avoidTurtle(insp protocol.Inspect, digFn func() (protocol.Movement, error)) {
	if !e.avoidOtherTurtles {
		_, _ = digFn()
		return
	}
	if insp.Present && insp.Name == turtleNormalBlock {
		if rand.IntN(2) == 0 {
			e.sidestep()
		}
		return
	}
	_, _ = digFn()
}

// sidestep climbs up, forward, and back down — a single best-effort
// attempt with no retry loop. Because this runs inside the obstacle
// check of MoveForward, which then retries the original forward primitive,
// a successful side-step can leave the turtle one cell further along its
// heading than goto_nohead expects; that drift is corrected by
// GotoNoHead's recursive re-goto, per spec.md §9.
func (e *Engine) sidestep() {
	if m, err := e.driver.Up(); err == nil && m.Success {
		e.state.Pos.Y++
		_ = e.persist()
	}
	if m, err := e.driver.Forward(); err == nil && m.Success {
		e.state.Pos = addPos(e.state.Pos, worldpos.Step(e.state.Head))
		_ = e.persist()
	}
	if m, err := e.driver.Down(); err == nil && m.Success {
		e.state.Pos.Y--
		_ = e.persist()
	}
}

// MoveForward steps once in the current heading, handling obstacles by
// invoking avoidTurtle, and loops until the primitive reports success.
// Transport/decode errors and reported failures both cause a retry; there
// is no bound on how long this can loop against a persistent obstacle.
func (e *Engine) MoveForward() error {
	for {
		insp, _ := e.driver.Inspect()
		if insp.Present {
			e.avoidTurtle(insp, e.driver.Dig)
		}
		m, err := e.driver.Forward()
		if err != nil {
			continue
		}
		if !m.Success {
			continue
		}
		break
	}
	e.state.Pos = addPos(e.state.Pos, worldpos.Step(e.state.Head))
	return e.persist()
}

// MoveUp steps up once, with the same obstacle-handling loop as
// MoveForward but inspecting/digging upward.
func (e *Engine) MoveUp() error {
	for {
		insp, _ := e.driver.InspectUp()
		if insp.Present {
			e.avoidTurtle(insp, e.driver.DigUp)
		}
		m, err := e.driver.Up()
		if err != nil {
			continue
		}
		if !m.Success {
			continue
		}
		break
	}
	e.state.Pos.Y++
	return e.persist()
}

// MoveDown steps down once, with the same obstacle-handling loop as
// MoveForward but inspecting/digging downward.
func (e *Engine) MoveDown() error {
	for {
		insp, _ := e.driver.InspectDown()
		if insp.Present {
			e.avoidTurtle(insp, e.driver.DigDown)
		}
		m, err := e.driver.Down()
		if err != nil {
			continue
		}
		if !m.Success {
			continue
		}
		break
	}
	e.state.Pos.Y--
	return e.persist()
}

// MoveBack is a single attempt with no obstacle handling — the turtle
// cannot inspect behind itself. On failure it returns without mutating
// position.
func (e *Engine) MoveBack() (protocol.Movement, error) {
	m, err := e.driver.Back()
	if err != nil {
		return m, err
	}
	if m.Success {
		step := worldpos.Step(e.state.Head)
		e.state.Pos = addPos(e.state.Pos, worldpos.Pos{X: -step.X, Y: -step.Y, Z: -step.Z})
		if err := e.persist(); err != nil {
			return m, err
		}
	}
	return m, nil
}

func addPos(a, b worldpos.Pos) worldpos.Pos {
	return worldpos.Pos{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// turnOnce rotates once, looping only on transport error (rotation has no
// obstacle to react to).
func (e *Engine) turnOnce(right bool) error {
	for {
		var m protocol.Movement
		var err error
		if right {
			m, err = e.driver.TurnRight()
		} else {
			m, err = e.driver.TurnLeft()
		}
		if err != nil {
			continue
		}
		if !m.Success {
			continue
		}
		break
	}
	if right {
		e.state.Head = e.state.Head.Right()
	} else {
		e.state.Head = e.state.Head.Left()
	}
	return e.persist()
}

// TurnHead realizes the rotation from the current heading to dst. The
// 180-degree case is always realized as two right turns, per spec.md §9 —
// whether left-left would sometimes be preferable is an open question the
// spec leaves unresolved, and this implementation does not second-guess it.
func (e *Engine) TurnHead(dst heading.Head_e) error {
	switch e.state.Head.Diff(dst) {
	case 0:
		return nil
	case 1:
		return e.turnOnce(true)
	case -1:
		return e.turnOnce(false)
	case 2:
		if err := e.turnOnce(true); err != nil {
			return err
		}
		return e.turnOnce(true)
	}
	panic("unreachable: Head.Diff returned value outside {-1,0,1,2}")
}

// GotoNoHead drives the turtle to dst, sweeping axes in the given order.
// If avoidOtherTurtles is enabled and a side-step during the sweep left
// position off-plan, it re-runs itself against the (possibly drifted)
// current position. There is no recursion bound, matching spec.md §9's
// documented open question about a pathological environment stack-
// overflowing here.
func (e *Engine) GotoNoHead(dst worldpos.Pos, order [3]worldpos.Axis_e) error {
	for _, axis := range order {
		switch axis {
		case worldpos.AxisX:
			if err := e.sweepX(dst.X); err != nil {
				return err
			}
		case worldpos.AxisZ:
			if err := e.sweepZ(dst.Z); err != nil {
				return err
			}
		case worldpos.AxisY:
			if err := e.sweepY(dst.Y); err != nil {
				return err
			}
		}
	}
	if e.avoidOtherTurtles && e.state.Pos != dst {
		return e.GotoNoHead(dst, order)
	}
	return nil
}

func (e *Engine) sweepX(targetX int) error {
	if e.state.Pos.X < targetX {
		if err := e.TurnHead(heading.E); err != nil {
			return err
		}
	} else if e.state.Pos.X > targetX {
		if err := e.TurnHead(heading.W); err != nil {
			return err
		}
	} else {
		return nil
	}
	for e.state.Pos.X != targetX {
		if err := e.MoveForward(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) sweepZ(targetZ int) error {
	if e.state.Pos.Z < targetZ {
		if err := e.TurnHead(heading.S); err != nil {
			return err
		}
	} else if e.state.Pos.Z > targetZ {
		if err := e.TurnHead(heading.N); err != nil {
			return err
		}
	} else {
		return nil
	}
	for e.state.Pos.Z != targetZ {
		if err := e.MoveForward(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) sweepY(targetY int) error {
	for e.state.Pos.Y < targetY {
		if err := e.MoveUp(); err != nil {
			return err
		}
	}
	for e.state.Pos.Y > targetY {
		if err := e.MoveDown(); err != nil {
			return err
		}
	}
	return nil
}

// GotoHead is GotoNoHead followed by a final rotation to dst.Head.
func (e *Engine) GotoHead(dst worldpos.PosH, order [3]worldpos.Axis_e) error {
	if err := e.GotoNoHead(dst.Pos, order); err != nil {
		return err
	}
	return e.TurnHead(dst.Head)
}
