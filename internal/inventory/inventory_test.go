// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package inventory_test

import (
	"testing"

	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/protocol"
)

type fakeDriver struct {
	remote   [inventory.Slots]*protocol.SlotDetail
	requests int
}

func (f *fakeDriver) GetItemDetail(slot int) (*protocol.SlotDetail, error) {
	f.requests++
	return f.remote[slot], nil
}

func TestFullUpdateAndIsFull(t *testing.T) {
	f := &fakeDriver{}
	for i := range f.remote {
		f.remote[i] = &protocol.SlotDetail{Name: "minecraft:cobblestone", Count: 64}
	}
	inv := inventory.New(f)
	if err := inv.FullUpdate(); err != nil {
		t.Fatalf("FullUpdate: %v", err)
	}
	if !inv.IsFull() {
		t.Fatalf("expected full inventory")
	}
}

func TestIsFullFalseWithEmptySlot(t *testing.T) {
	f := &fakeDriver{}
	inv := inventory.New(f)
	if err := inv.FullUpdate(); err != nil {
		t.Fatalf("FullUpdate: %v", err)
	}
	if inv.IsFull() {
		t.Fatalf("expected not full")
	}
}

func TestReduceCountDecrementsLocally(t *testing.T) {
	f := &fakeDriver{}
	f.remote[0] = &protocol.SlotDetail{Name: "minecraft:stone", Count: 2}
	inv := inventory.New(f)
	inv.Set(0, &protocol.SlotDetail{Name: "minecraft:stone", Count: 2})

	slot, remaining, found, err := inv.ReduceCountAndOrFindNext(0)
	if err != nil || !found {
		t.Fatalf("ReduceCountAndOrFindNext: remaining=%d found=%v err=%v", remaining, found, err)
	}
	if slot != 0 {
		t.Fatalf("slot = %d, want 0", slot)
	}
	if remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
	if f.requests != 0 {
		t.Fatalf("expected no remote calls when cache has count>0, got %d", f.requests)
	}
}

func TestReduceCountAdvancesOnStaleZero(t *testing.T) {
	f := &fakeDriver{}
	f.remote[1] = &protocol.SlotDetail{Name: "minecraft:dirt", Count: 5}
	inv := inventory.New(f)
	inv.Set(0, &protocol.SlotDetail{Name: "minecraft:stone", Count: 0})

	slot, remaining, found, err := inv.ReduceCountAndOrFindNext(0)
	if err != nil || !found {
		t.Fatalf("ReduceCountAndOrFindNext: remaining=%d found=%v err=%v", remaining, found, err)
	}
	if slot != 1 {
		t.Fatalf("slot = %d, want 1", slot)
	}
	if remaining != 4 {
		t.Fatalf("remaining = %d, want 4", remaining)
	}
}

func TestReduceCountEmptyInventoryVisitsAllSlotsOnce(t *testing.T) {
	f := &fakeDriver{}
	inv := inventory.New(f)

	_, _, found, err := inv.ReduceCountAndOrFindNext(3)
	if err != nil {
		t.Fatalf("ReduceCountAndOrFindNext: %v", err)
	}
	if found {
		t.Fatalf("expected not found for empty inventory")
	}
	if f.requests != inventory.Slots {
		t.Fatalf("requests = %d, want %d", f.requests, inventory.Slots)
	}
}
