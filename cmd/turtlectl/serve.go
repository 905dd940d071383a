// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/turtlefleet/controller/internal/chunkdigger"
	"github.com/turtlefleet/controller/internal/config"
	"github.com/turtlefleet/controller/internal/inventory"
	"github.com/turtlefleet/controller/internal/modelbuilder"
	"github.com/turtlefleet/controller/internal/modelplan"
	"github.com/turtlefleet/controller/internal/nav"
	"github.com/turtlefleet/controller/internal/registry"
	"github.com/turtlefleet/controller/internal/server"
	"github.com/turtlefleet/controller/internal/transport"
	"github.com/turtlefleet/controller/internal/turtleapi"
	"github.com/turtlefleet/controller/internal/worldpos"
)

var argsServe struct {
	configFile string
	host       string
	port       string

	mode string // "build" or "dig"

	// build mode
	modelPath     string
	turtleIndex   int
	allowedBlocks string

	// dig mode
	p1, p2      string
	floor       string
	floorBlock  string
	chestAnchor string
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "serve the turtle rendezvous HTTP API",
	Long:  `Start the long-poll HTTP controller and drive every connecting turtle through a build or dig plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(argsServe.configFile, argsServe.configFile != "")
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		if argsServe.host != "" {
			cfg.Server.Host = argsServe.host
		}
		if argsServe.port != "" {
			cfg.Server.Port = argsServe.port
		}

		planner, err := buildPlanner(cfg)
		if err != nil {
			return err
		}

		reg := registry.New()
		app := transport.New(reg, planner)

		srvOptions := server.Options{
			server.WithApp(app),
			server.WithHost(cfg.Server.Host),
			server.WithPort(cfg.Server.Port),
		}
		s, err := server.New(srvOptions...)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}

		log.Printf("serve: mode=%s listening on %s\n", argsServe.mode, s.BaseURL())
		if err := http.ListenAndServe(s.Addr, s.Router()); err != nil {
			log.Fatal(err)
		}
		return nil
	},
}

func init() {
	cmdServe.Flags().StringVar(&argsServe.configFile, "config", "", "path to JSON config file")
	cmdServe.Flags().StringVar(&argsServe.host, "host", "", "listen host, overrides config")
	cmdServe.Flags().StringVar(&argsServe.port, "port", "", "listen port, overrides config")
	cmdServe.Flags().StringVar(&argsServe.mode, "mode", "build", "plan to run per connecting turtle: build or dig")

	cmdServe.Flags().StringVar(&argsServe.modelPath, "model", "", "build mode: path to a pre-voxelized model JSON file")
	cmdServe.Flags().IntVar(&argsServe.turtleIndex, "turtle-index", 0, "build mode: this turtle's offset into the refill chest column")
	cmdServe.Flags().StringVar(&argsServe.allowedBlocks, "allowed-blocks", "", "build mode: comma-separated whitelist of block names to keep")

	cmdServe.Flags().StringVar(&argsServe.p1, "p1", "0,0,0", "dig mode: box corner, x,y,z")
	cmdServe.Flags().StringVar(&argsServe.p2, "p2", "15,15,15", "dig mode: box corner, x,y,z")
	cmdServe.Flags().StringVar(&argsServe.floor, "floor", "none", "dig mode: floor policy: none, any, specific")
	cmdServe.Flags().StringVar(&argsServe.floorBlock, "floor-block", "", "dig mode: block name for --floor=specific")
	cmdServe.Flags().StringVar(&argsServe.chestAnchor, "chest-anchor", "0,0,0", "dig mode: deposit chest column anchor, x,y,z")
}

func parsePos(s string) (worldpos.Pos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return worldpos.Pos{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return worldpos.Pos{}, fmt.Errorf("%q: %w", s, err)
		}
		vals[i] = v
	}
	return worldpos.Pos{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

func navPath(cfg *config.Config, id uint64) string {
	return filepath.Join(cfg.DataDir, "positions", fmt.Sprintf("%d.nav", id))
}

func progressPath(cfg *config.Config, id uint64, ext string) string {
	return filepath.Join(cfg.DataDir, "progress", fmt.Sprintf("%d.%s", id, ext))
}

// buildPlanner returns the Planner the transport spawns on every
// /register/{id}, closing over the config and CLI flags for the selected
// mode so every connecting turtle runs the same plan.
func buildPlanner(cfg *config.Config) (transport.Planner, error) {
	switch argsServe.mode {
	case "build":
		return buildModelPlanner(cfg)
	case "dig":
		return buildDiggerPlanner(cfg)
	default:
		return nil, fmt.Errorf("serve: unknown --mode %q, want build or dig", argsServe.mode)
	}
}

func buildModelPlanner(cfg *config.Config) (transport.Planner, error) {
	if argsServe.modelPath == "" {
		return nil, fmt.Errorf("serve: --model is required for --mode=build")
	}
	grid, dims, err := loadVoxelFile(argsServe.modelPath)
	if err != nil {
		return nil, err
	}
	layers := modelplan.ArrayModelToNodes(grid, dims)

	allowed := make(map[string]bool)
	for _, name := range cfg.AllowedBlocks {
		allowed[name] = true
	}
	if argsServe.allowedBlocks != "" {
		for _, name := range strings.Split(argsServe.allowedBlocks, ",") {
			allowed[strings.TrimSpace(name)] = true
		}
	}

	return func(id uint64, driver *turtleapi.Driver) {
		defer driver.Disconnect()

		engine, err := nav.New(navPath(cfg, id), driver, cfg.AvoidOtherTurtles)
		if err != nil {
			log.Printf("[turtle %d] nav.New: %v\n", id, err)
			return
		}
		if err := engine.GPSInit(); err != nil {
			log.Printf("[turtle %d] GPSInit: %v\n", id, err)
			return
		}
		start := engine.Pos()

		inv := inventory.New(driver)
		bcfg := modelbuilder.Config{
			StartPos:      start.Pos,
			TurtleIndex:   argsServe.turtleIndex,
			MaxChests:     cfg.MaxChests,
			AllowedBlocks: allowed,
		}
		b, err := modelbuilder.New(progressPath(cfg, id, "modelbuilder"), engine, driver, inv, bcfg)
		if err != nil {
			log.Printf("[turtle %d] modelbuilder.New: %v\n", id, err)
			return
		}
		if err := b.BuildModel(layers, dims); err != nil {
			log.Printf("[turtle %d] BuildModel: %v\n", id, err)
		}
	}, nil
}

func buildDiggerPlanner(cfg *config.Config) (transport.Planner, error) {
	p1, err := parsePos(argsServe.p1)
	if err != nil {
		return nil, fmt.Errorf("serve: --p1: %w", err)
	}
	p2, err := parsePos(argsServe.p2)
	if err != nil {
		return nil, fmt.Errorf("serve: --p2: %w", err)
	}
	anchor, err := parsePos(argsServe.chestAnchor)
	if err != nil {
		return nil, fmt.Errorf("serve: --chest-anchor: %w", err)
	}
	var floor chunkdigger.FloorPolicy
	switch argsServe.floor {
	case "none":
		floor = chunkdigger.FloorNone
	case "any":
		floor = chunkdigger.FloorAny
	case "specific":
		floor = chunkdigger.FloorSpecific
		if argsServe.floorBlock == "" {
			return nil, fmt.Errorf("serve: --floor=specific requires --floor-block")
		}
	default:
		return nil, fmt.Errorf("serve: unknown --floor %q, want none, any, or specific", argsServe.floor)
	}

	return func(id uint64, driver *turtleapi.Driver) {
		defer driver.Disconnect()

		engine, err := nav.New(navPath(cfg, id), driver, cfg.AvoidOtherTurtles)
		if err != nil {
			log.Printf("[turtle %d] nav.New: %v\n", id, err)
			return
		}
		if err := engine.GPSInit(); err != nil {
			log.Printf("[turtle %d] GPSInit: %v\n", id, err)
			return
		}

		inv := inventory.New(driver)
		dcfg := chunkdigger.Config{
			P1:                   p1,
			P2:                   p2,
			Floor:                floor,
			FloorBlock:           argsServe.floorBlock,
			ChestAnchor:          anchor,
			ChestSize:            cfg.ChestSlotsEach,
			MaxChests:            cfg.MaxChests,
			CheckInvEveryNBlocks: cfg.CheckInvEveryNBlocks,
		}
		d, err := chunkdigger.New(progressPath(cfg, id, "chunkdigger"), engine, driver, inv, dcfg)
		if err != nil {
			log.Printf("[turtle %d] chunkdigger.New: %v\n", id, err)
			return
		}
		if err := d.Run(); err != nil {
			log.Printf("[turtle %d] Run: %v\n", id, err)
		}
	}, nil
}
