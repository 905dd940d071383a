// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chunkdigger_test

import (
	"path/filepath"
	"testing"

	"github.com/turtlefleet/controller/internal/chunkdigger"
	"github.com/turtlefleet/controller/internal/heading"
	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/nav"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/worldpos"
)

func TestSlabOrderVisitsEveryCellOnce(t *testing.T) {
	cells := chunkdigger.SlabOrder(0, 2, 0, 2, 4)
	if len(cells) != 9 {
		t.Fatalf("cells = %d, want 9", len(cells))
	}
	seen := make(map[[2]int]bool)
	for _, c := range cells {
		key := [2]int{c.X, c.Z}
		if seen[key] {
			t.Fatalf("cell %v visited twice", key)
		}
		seen[key] = true
	}
}

func TestSlabOrderContiguousWithinColumn(t *testing.T) {
	cells := chunkdigger.SlabOrder(0, 1, 0, 3, 2)
	for i := 1; i < len(cells); i++ {
		if cells[i].X != cells[i-1].X {
			continue // column change; this test checks z-steps within a column only
		}
		dz := cells[i].Z - cells[i-1].Z
		if dz != 1 && dz != -1 {
			t.Fatalf("non-contiguous step within column at %d: %v -> %v", i, cells[i-1], cells[i])
		}
	}
}

type fakeDigTurtle struct {
	digUp, digDown, drops, places int
	slots                         [inventory.Slots]*protocol.SlotDetail
	selected                      int
}

func ok() (protocol.Movement, error) { return protocol.Movement{Success: true}, nil }

func (f *fakeDigTurtle) Forward() (protocol.Movement, error)      { return ok() }
func (f *fakeDigTurtle) Back() (protocol.Movement, error)         { return ok() }
func (f *fakeDigTurtle) Up() (protocol.Movement, error)           { return ok() }
func (f *fakeDigTurtle) Down() (protocol.Movement, error)         { return ok() }
func (f *fakeDigTurtle) TurnLeft() (protocol.Movement, error)     { return ok() }
func (f *fakeDigTurtle) TurnRight() (protocol.Movement, error)    { return ok() }
func (f *fakeDigTurtle) Dig() (protocol.Movement, error)          { return ok() }
func (f *fakeDigTurtle) DigUp() (protocol.Movement, error)        { f.digUp++; return ok() }
func (f *fakeDigTurtle) DigDown() (protocol.Movement, error)      { f.digDown++; return ok() }
func (f *fakeDigTurtle) Inspect() (protocol.Inspect, error)       { return protocol.Inspect{}, nil }
func (f *fakeDigTurtle) InspectUp() (protocol.Inspect, error)     { return protocol.Inspect{}, nil }
func (f *fakeDigTurtle) InspectDown() (protocol.Inspect, error)   { return protocol.Inspect{}, nil }
func (f *fakeDigTurtle) GPS() (worldpos.PosH, error)              { return worldpos.PosH{}, nil }
func (f *fakeDigTurtle) Select(slot int) error                    { f.selected = slot; return nil }
func (f *fakeDigTurtle) Drop() (protocol.Movement, error)         { f.drops++; f.slots[f.selected] = nil; return ok() }
func (f *fakeDigTurtle) PlaceDown() (protocol.Movement, error)    { f.places++; return ok() }
func (f *fakeDigTurtle) GetItemDetail(slot int) (*protocol.SlotDetail, error) {
	return f.slots[slot], nil
}

func TestRunSingleSlabNoFloor(t *testing.T) {
	f := &fakeDigTurtle{}
	dir := t.TempDir()
	engine, err := nav.New(filepath.Join(dir, "t.nav"), f, false)
	if err != nil {
		t.Fatalf("nav.New: %v", err)
	}
	if err := engine.Seed(worldpos.PosH{Head: heading.N}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	inv := inventory.New(f)
	cfg := chunkdigger.Config{
		P1:                   worldpos.Pos{X: 0, Y: 0, Z: 0},
		P2:                   worldpos.Pos{X: 1, Y: 2, Z: 1},
		Floor:                chunkdigger.FloorNone,
		ChestAnchor:          worldpos.Pos{X: 0, Y: 0, Z: 0},
		ChestSize:            27,
		MaxChests:            4,
		CheckInvEveryNBlocks: 999,
	}
	d, err := chunkdigger.New(filepath.Join(dir, "t.chunkdigger"), engine, f, inv, cfg)
	if err != nil {
		t.Fatalf("chunkdigger.New: %v", err)
	}
	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f.digUp != 4 || f.digDown != 4 {
		t.Fatalf("digUp=%d digDown=%d, want 4 each for a 2x2 slab", f.digUp, f.digDown)
	}
	if f.places != 0 {
		t.Fatalf("places = %d, want 0 for FloorNone", f.places)
	}
}
