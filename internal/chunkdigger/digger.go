// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chunkdigger

import (
	"log"

	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/nav"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/statestore"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// FloorPolicy selects what, if anything, the digger places beneath it
// after clearing a cell.
type FloorPolicy int

const (
	FloorNone FloorPolicy = iota
	FloorAny
	FloorSpecific
)

// Driver is the subset of turtleapi.Driver the digger needs beyond
// navigation and inventory mirroring.
type Driver interface {
	Select(slot int) error
	Drop() (protocol.Movement, error)
	DigUp() (protocol.Movement, error)
	DigDown() (protocol.Movement, error)
	PlaceDown() (protocol.Movement, error)
}

// Config is the per-turtle dig configuration spec.md §4.I calls for. P1
// and P2 must already be normalized (each component of P1 <= P2).
type Config struct {
	P1, P2               worldpos.Pos
	Floor                FloorPolicy
	FloorBlock           string
	ChestAnchor          worldpos.Pos
	ChestSize            int
	MaxChests            int
	CheckInvEveryNBlocks int
}

// Digger drives one turtle through a chunk, slab by slab.
type Digger struct {
	path     string
	progress *Progress
	engine   *nav.Engine
	driver   Driver
	inv      *inventory.Inventory
	cfg      Config
	floorIdx int
}

// New loads (or initializes) dig progress persisted at path.
func New(path string, engine *nav.Engine, driver Driver, inv *inventory.Inventory, cfg Config) (*Digger, error) {
	progress, err := statestore.LoadOrInit(path, DefaultProgress)
	if err != nil {
		return nil, err
	}
	return &Digger{path: path, progress: progress, engine: engine, driver: driver, inv: inv, cfg: cfg}, nil
}

func (d *Digger) persist() error {
	return statestore.Save(d.path, d.progress)
}

// Run digs every full height-3 slab from the persisted layer (0 on first
// run) to the top of the box. When the box height is not a multiple of 3,
// the rows above the last full slab are not dug.
func (d *Digger) Run() error {
	slabCount := (d.cfg.P2.Y - d.cfg.P1.Y + 1) / 3
	for slab := d.progress.Layer; slab < slabCount; slab++ {
		if err := d.digSlab(slab); err != nil {
			return err
		}
		d.progress.Layer = slab + 1
		if err := d.persist(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Digger) digSlab(slab int) error {
	slabY := d.cfg.P1.Y + slab*3 + 1
	cells := SlabOrder(d.cfg.P1.X, d.cfg.P2.X, d.cfg.P1.Z, d.cfg.P2.Z, slabY)

	rowLen := d.cfg.P2.Z - d.cfg.P1.Z + 1
	for i, cell := range cells {
		dst := worldpos.PosH{Pos: worldpos.Pos{X: cell.X, Y: slabY, Z: cell.Z}, Head: cell.Head}
		if err := d.engine.GotoHead(dst, worldpos.XZY); err != nil {
			return err
		}
		if _, err := d.driver.DigUp(); err != nil {
			return err
		}
		if _, err := d.driver.DigDown(); err != nil {
			return err
		}
		if err := d.placeFloor(); err != nil {
			return err
		}

		endOfRow := rowLen == 0 || (i+1)%rowLen == 0
		if endOfRow || (d.cfg.CheckInvEveryNBlocks > 0 && (i+1)%d.cfg.CheckInvEveryNBlocks == 0) {
			if err := d.depositRitual(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Digger) placeFloor() error {
	switch d.cfg.Floor {
	case FloorNone:
		return nil
	case FloorSpecific:
		return d.placeNamed(d.cfg.FloorBlock)
	default: // FloorAny
		return d.placeRoundRobin()
	}
}

func (d *Digger) placeNamed(name string) error {
	if err := d.inv.FullUpdate(); err != nil {
		return err
	}
	for slot := 0; slot < inventory.Slots; slot++ {
		if s := d.inv.Slot(slot); s != nil && s.Name == name && s.Count > 0 {
			if err := d.driver.Select(slot); err != nil {
				return err
			}
			_, err := d.driver.PlaceDown()
			return err
		}
	}
	log.Printf("[chunkdigger] out of %q for floor placement\n", name)
	return nil
}

// placeRoundRobin cycles forward through slots looking for any occupied
// one, logging and skipping the placement when none is found rather than
// actually blocking on a human prompt — there is no interactive terminal
// attached to this controller.
func (d *Digger) placeRoundRobin() error {
	if err := d.inv.FullUpdate(); err != nil {
		return err
	}
	for attempt := 0; attempt < inventory.Slots; attempt++ {
		slot := d.floorIdx % inventory.Slots
		d.floorIdx++
		if s := d.inv.Slot(slot); s != nil && s.Count > 0 {
			if err := d.driver.Select(slot); err != nil {
				return err
			}
			_, err := d.driver.PlaceDown()
			return err
		}
	}
	log.Println("[chunkdigger] inventory empty, nothing to place for floor")
	return nil
}

// depositRitual saves position, goes to the chest column, drops
// slot-by-slot, spilling to the next chest when one fills mid-drop, then
// returns to the saved position. Symmetric to modelbuilder's refill
// ritual, but moving material out instead of in.
func (d *Digger) depositRitual() error {
	saved := d.engine.Pos()
	chestOffset := d.progress.StackCount % d.cfg.MaxChests
	chestPos := worldpos.Pos{X: d.cfg.ChestAnchor.X, Y: d.cfg.ChestAnchor.Y, Z: d.cfg.ChestAnchor.Z + chestOffset}

	if err := d.engine.GotoNoHead(chestPos, worldpos.XYZ); err != nil {
		return err
	}

	if err := d.inv.FullUpdate(); err != nil {
		return err
	}
	deposited := 0
	for slot := 0; slot < inventory.Slots; slot++ {
		if d.inv.Slot(slot) == nil {
			continue
		}
		if err := d.driver.Select(slot); err != nil {
			return err
		}
		m, err := d.driver.Drop()
		if err != nil {
			return err
		}
		if !m.Success {
			chestOffset = (chestOffset + 1) % d.cfg.MaxChests
			d.progress.StackCount = chestOffset
			if err := d.persist(); err != nil {
				return err
			}
			chestPos.Z = d.cfg.ChestAnchor.Z + chestOffset
			if err := d.engine.GotoNoHead(chestPos, worldpos.XYZ); err != nil {
				return err
			}
			slot-- // retry this slot against the new chest
			continue
		}
		d.inv.Set(slot, nil)
		deposited++
		if deposited >= d.cfg.ChestSize {
			chestOffset = (chestOffset + 1) % d.cfg.MaxChests
			d.progress.StackCount = chestOffset
			if err := d.persist(); err != nil {
				return err
			}
			chestPos.Z = d.cfg.ChestAnchor.Z + chestOffset
			if err := d.engine.GotoNoHead(chestPos, worldpos.XYZ); err != nil {
				return err
			}
			deposited = 0
		}
	}

	d.progress.StackCount = chestOffset
	if err := d.persist(); err != nil {
		return err
	}

	return d.engine.GotoNoHead(saved.Pos, worldpos.XYZ)
}
