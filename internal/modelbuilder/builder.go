// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package modelbuilder

import (
	"log"
	"time"

	"github.com/turtlefleet/controller/cerrs"
	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/modelplan"
	"github.com/turtlefleet/controller/internal/nav"
	"github.com/turtlefleet/controller/internal/protocol"
	"github.com/turtlefleet/controller/internal/statestore"
	"github.com/turtlefleet/controller/internal/worldpos"
)

// Driver is the subset of turtleapi.Driver the builder needs beyond
// navigation and inventory mirroring.
type Driver interface {
	Select(slot int) error
	Drop() (protocol.Movement, error)
	SuckDown() (protocol.Movement, error)
	PlaceUp() (protocol.Movement, error)
}

// Config is the per-turtle build configuration spec.md §4.H calls for.
type Config struct {
	StartPos      worldpos.Pos
	TurtleIndex   int
	MaxChests     int
	AllowedBlocks map[string]bool
}

// Builder drives one turtle through a model, layer by layer, topmost
// first, refilling from a chest column whenever inventory runs dry.
type Builder struct {
	path     string
	progress *Progress
	engine   *nav.Engine
	driver   Driver
	inv      *inventory.Inventory
	cfg      Config
	currSlot int
}

// New loads (or initializes) build progress persisted at path.
func New(path string, engine *nav.Engine, driver Driver, inv *inventory.Inventory, cfg Config) (*Builder, error) {
	progress, err := statestore.LoadOrInit(path, DefaultProgress)
	if err != nil {
		return nil, err
	}
	return &Builder{path: path, progress: progress, engine: engine, driver: driver, inv: inv, cfg: cfg}, nil
}

func (b *Builder) persist() error {
	return statestore.Save(b.path, b.progress)
}

// BuildModel walks every non-empty layer of layers from the highest y
// down to the lowest, placing a block at each node the planner visits.
func (b *Builder) BuildModel(layers modelplan.LayerNodes, dims [3]int) error {
	for y := dims[1] - 1; y >= 0; y-- {
		nodes, ok := layers[y]
		if !ok || len(nodes) == 0 {
			continue
		}
		b.progress.StartLayer = y
		if err := b.persist(); err != nil {
			return err
		}
		if err := b.buildLayer(nodes, y); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) buildLayer(nodes []modelplan.Node, y int) error {
	here := b.engine.Pos()
	mst := modelplan.NodesToMST(nodes)
	paths := modelplan.MSTToPaths(len(nodes), mst.Adjacency)
	order := modelplan.JoinPathsGreedily(modelplan.Node{X: here.X, Z: here.Z}, paths, nodes)

	for _, idx := range order {
		if err := b.refillTick(); err != nil {
			return err
		}
		node := nodes[idx]
		if err := b.engine.GotoNoHead(worldpos.Pos{X: node.X, Y: y, Z: node.Z}, worldpos.XYZ); err != nil {
			return err
		}
		if _, err := b.driver.PlaceUp(); err != nil {
			return err
		}
	}
	return nil
}

// refillTick decrements the current slot and selects it; on exhaustion it
// runs the refill ritual once and retries.
func (b *Builder) refillTick() error {
	slot, _, found, err := b.inv.ReduceCountAndOrFindNext(b.currSlot)
	if err != nil {
		return err
	}
	if !found {
		if err := b.refillRitual(); err != nil {
			return err
		}
		slot, _, found, err = b.inv.ReduceCountAndOrFindNext(b.currSlot)
		if err != nil {
			return err
		}
		if !found {
			// The refill ritual loops against the world until the chest
			// column is non-empty, so this should be unreachable.
			return cerrs.ErrInventoryEmpty
		}
	}
	b.currSlot = slot
	return b.driver.Select(slot)
}

// Refill runs the refill ritual on demand, bypassing the usual
// inventory-exhaustion trigger. Exposed for manual recovery.
func (b *Builder) Refill() error {
	return b.refillRitual()
}

// refillRitual drops disallowed items, descends to the chest column,
// sucks 16 slots' worth of material, and returns to the saved position,
// per spec.md §4.H.
func (b *Builder) refillRitual() error {
	if err := b.dropDisallowed(); err != nil {
		return err
	}

	saved := b.engine.Pos()

	chestX := b.cfg.StartPos.X + b.cfg.TurtleIndex
	if err := b.engine.GotoNoHead(worldpos.Pos{X: saved.X, Y: b.cfg.StartPos.Y, Z: saved.Z}, worldpos.XYZ); err != nil {
		return err
	}
	if err := b.engine.GotoNoHead(worldpos.Pos{X: chestX, Y: b.cfg.StartPos.Y, Z: b.cfg.StartPos.Z}, worldpos.XYZ); err != nil {
		return err
	}

	for {
		if err := b.suckChestColumn(chestX); err != nil {
			return err
		}
		if err := b.dropDisallowed(); err != nil {
			return err
		}
		if err := b.inv.FullUpdate(); err != nil {
			return err
		}
		if b.inv.IsFull() {
			break
		}
		log.Printf("[modelbuilder] chest column empty at x=%d, sleeping\n", chestX)
		time.Sleep(10 * time.Second)
	}

	if err := b.engine.GotoNoHead(worldpos.Pos{X: chestX, Y: b.cfg.StartPos.Y, Z: saved.Z}, worldpos.XYZ); err != nil {
		return err
	}
	if err := b.engine.GotoNoHead(worldpos.Pos{X: saved.X, Y: b.cfg.StartPos.Y, Z: saved.Z}, worldpos.XYZ); err != nil {
		return err
	}
	return b.engine.GotoNoHead(saved.Pos, worldpos.XYZ)
}

// suckChestColumn pulls 16 slots' worth of items from the chest at
// chestOffset, advancing to the next chest (mod MaxChests) whenever
// suck_down reports failure (that chest is empty).
func (b *Builder) suckChestColumn(chestX int) error {
	chestOffset := b.progress.StackCount % b.cfg.MaxChests
	for i := 0; i < inventory.Slots; i++ {
		for {
			m, err := b.driver.SuckDown()
			if err != nil {
				return err
			}
			if m.Success {
				break
			}
			chestOffset = (chestOffset + 1) % b.cfg.MaxChests
			b.progress.StackCount = chestOffset
			if err := b.persist(); err != nil {
				return err
			}
			if err := b.engine.GotoNoHead(worldpos.Pos{X: chestX, Y: b.cfg.StartPos.Y, Z: b.cfg.StartPos.Z + chestOffset}, worldpos.XYZ); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) dropDisallowed() error {
	if err := b.inv.FullUpdate(); err != nil {
		return err
	}
	for slot := 0; slot < inventory.Slots; slot++ {
		detail := b.inv.Slot(slot)
		if detail == nil || b.cfg.AllowedBlocks[detail.Name] {
			continue
		}
		if err := b.driver.Select(slot); err != nil {
			return err
		}
		if _, err := b.driver.Drop(); err != nil {
			return err
		}
		b.inv.Set(slot, nil)
	}
	return nil
}
