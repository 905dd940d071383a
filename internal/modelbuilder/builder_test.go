// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelbuilder_test

import (
	"path/filepath"
	"testing"

	"github.com/turtlefleet/controller/internal/modelbuilder"
	"github.com/turtlefleet/controller/internal/modelplan"
	"github.com/turtlefleet/controller/internal/nav"
	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// fakeTurtle satisfies nav.Driver, modelbuilder.Driver, and
// inventory.SlotGetter all at once, so one fake can drive the whole
// builder stack end to end.
type fakeTurtle struct {
	suckCalls   int
	placeCalls  int
	dropCalls   int
	selected    int
	slots       [inventory.Slots]*protocol.SlotDetail
}

func ok() (protocol.Movement, error) { return protocol.Movement{Success: true}, nil }

func (f *fakeTurtle) Forward() (protocol.Movement, error)  { return ok() }
func (f *fakeTurtle) Back() (protocol.Movement, error)     { return ok() }
func (f *fakeTurtle) Up() (protocol.Movement, error)       { return ok() }
func (f *fakeTurtle) Down() (protocol.Movement, error)     { return ok() }
func (f *fakeTurtle) TurnLeft() (protocol.Movement, error) { return ok() }
func (f *fakeTurtle) TurnRight() (protocol.Movement, error) {
	return ok()
}
func (f *fakeTurtle) Dig() (protocol.Movement, error)     { return ok() }
func (f *fakeTurtle) DigUp() (protocol.Movement, error)   { return ok() }
func (f *fakeTurtle) DigDown() (protocol.Movement, error) { return ok() }

func (f *fakeTurtle) Inspect() (protocol.Inspect, error)     { return protocol.Inspect{}, nil }
func (f *fakeTurtle) InspectUp() (protocol.Inspect, error)   { return protocol.Inspect{}, nil }
func (f *fakeTurtle) InspectDown() (protocol.Inspect, error) { return protocol.Inspect{}, nil }

func (f *fakeTurtle) GPS() (worldpos.PosH, error) { return worldpos.PosH{}, nil }

func (f *fakeTurtle) Select(slot int) error { f.selected = slot; return nil }
func (f *fakeTurtle) Drop() (protocol.Movement, error) {
	f.dropCalls++
	f.slots[f.selected] = nil
	return ok()
}
func (f *fakeTurtle) SuckDown() (protocol.Movement, error) {
	f.suckCalls++
	f.slots[f.suckCalls-1] = &protocol.SlotDetail{Name: "minecraft:cobblestone", Count: 64}
	return ok()
}
func (f *fakeTurtle) PlaceUp() (protocol.Movement, error) { f.placeCalls++; return ok() }

func (f *fakeTurtle) GetItemDetail(slot int) (*protocol.SlotDetail, error) {
	return f.slots[slot], nil
}

func newBuilder(t *testing.T, f *fakeTurtle, cfg modelbuilder.Config) (*modelbuilder.Builder, *nav.Engine) {
	t.Helper()
	dir := t.TempDir()
	engine, err := nav.New(filepath.Join(dir, "turtle.nav"), f, false)
	if err != nil {
		t.Fatalf("nav.New: %v", err)
	}
	if err := engine.Seed(worldpos.PosH{Pos: cfg.StartPos}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	inv := inventory.New(f)
	b, err := modelbuilder.New(filepath.Join(dir, "turtle.modelbuilder"), engine, f, inv, cfg)
	if err != nil {
		t.Fatalf("modelbuilder.New: %v", err)
	}
	return b, engine
}

func TestRefillRitualReturnsToSavedPositionAfterFillingUp(t *testing.T) {
	f := &fakeTurtle{}
	cfg := modelbuilder.Config{
		StartPos:      worldpos.Pos{X: 10, Y: 60, Z: 3},
		TurtleIndex:   2,
		MaxChests:     4,
		AllowedBlocks: map[string]bool{"minecraft:cobblestone": true},
	}
	b, engine := newBuilder(t, f, cfg)
	if err := engine.Seed(worldpos.PosH{Pos: worldpos.Pos{X: 10, Y: 70, Z: 3}}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	before := engine.Pos()
	if err := b.Refill(); err != nil {
		t.Fatalf("refill ritual: %v", err)
	}
	after := engine.Pos()
	if before.Pos != after.Pos {
		t.Fatalf("position = %+v, want return to %+v", after.Pos, before.Pos)
	}
	if f.suckCalls != inventory.Slots {
		t.Fatalf("suck_down calls = %d, want %d", f.suckCalls, inventory.Slots)
	}
}

func TestBuildModelSkipsEmptyLayers(t *testing.T) {
	f := &fakeTurtle{}
	cfg := modelbuilder.Config{
		StartPos:      worldpos.Pos{X: 0, Y: 0, Z: 0},
		AllowedBlocks: map[string]bool{"minecraft:cobblestone": true},
		MaxChests:     1,
	}
	// pre-fill inventory so no refill ritual triggers.
	for i := range f.slots {
		f.slots[i] = &protocol.SlotDetail{Name: "minecraft:cobblestone", Count: 64}
	}
	b, _ := newBuilder(t, f, cfg)

	layers := modelplan.LayerNodes{
		1: {{X: 0, Z: 0}},
	}
	if err := b.BuildModel(layers, [3]int{1, 2, 1}); err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	if f.placeCalls != 1 {
		t.Fatalf("place_up calls = %d, want 1", f.placeCalls)
	}
}
