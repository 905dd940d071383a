// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package inventory

import (
	"github.com/turtlefleet/controller/internal/protocol"
)

// Slots is the number of slots a turtle has, per spec.md §6.
const Slots = 16

// SlotGetter is the subset of turtleapi.Driver the inventory mirror needs.
type SlotGetter interface {
	GetItemDetail(slot int) (*protocol.SlotDetail, error)
}

// Inventory is a local mirror of a turtle's 16 slots.
type Inventory struct {
	driver SlotGetter
	slots  [Slots]*protocol.SlotDetail
}

// New returns an empty Inventory bound to driver.
func New(driver SlotGetter) *Inventory {
	return &Inventory{driver: driver}
}

// FullUpdate queries every slot from the remote turtle.
func (inv *Inventory) FullUpdate() error {
	for s := 0; s < Slots; s++ {
		detail, err := inv.driver.GetItemDetail(s)
		if err != nil {
			return err
		}
		inv.slots[s] = detail
	}
	return nil
}

// IsFull reports whether every slot is occupied.
func (inv *Inventory) IsFull() bool {
	for _, s := range inv.slots {
		if s == nil {
			return false
		}
	}
	return true
}

// Slot returns the locally mirrored detail for slot, or nil if empty.
func (inv *Inventory) Slot(slot int) *protocol.SlotDetail {
	return inv.slots[slot]
}

// Set overwrites the local mirror for slot, used after a refill/deposit
// ritual re-synchronizes state the driver doesn't tell us about directly.
func (inv *Inventory) Set(slot int, detail *protocol.SlotDetail) {
	inv.slots[slot] = detail
}

// ReduceCountAndOrFindNext decrements a usable slot's locally cached count
// by one and returns its index and remaining count, starting the search
// at startSlot. found is false iff every slot is empty, in which case no
// more than Slots remote calls are made (one fresh query per slot at
// most) and the caller should run the refill ritual.
func (inv *Inventory) ReduceCountAndOrFindNext(startSlot int) (slot int, remaining int, found bool, err error) {
	idx := startSlot
	for visited := 0; visited < Slots; visited++ {
		s := inv.slots[idx]
		if s != nil && s.Count > 0 {
			s.Count--
			return idx, s.Count, true, nil
		}
		if s != nil && s.Count == 0 {
			// cached stale: the remote slot may have been refilled or
			// emptied since our last full update.
			inv.slots[idx] = nil
		}
		fresh, getErr := inv.driver.GetItemDetail(idx)
		if getErr != nil {
			return 0, 0, false, getErr
		}
		inv.slots[idx] = fresh
		if fresh != nil && fresh.Count > 0 {
			fresh.Count--
			return idx, fresh.Count, true, nil
		}
		idx = (idx + 1) % Slots
	}
	return 0, 0, false, nil
}
