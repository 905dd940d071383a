// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config loads the controller's configuration from a JSON file,
// falling back to documented defaults when the file is absent. A malformed
// file is reported as an error.
package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/turtlefleet/controller/cerrs"
)

// Config holds every constant spec.md says a rewrite should expose as a
// builder input rather than bake in.
type Config struct {
	// DataDir is the root directory containing positions/ and progress/.
	DataDir string `json:"DataDir,omitempty"`

	// TurtleSlots is the number of inventory slots a turtle has (16).
	TurtleSlots int `json:"TurtleSlots,omitempty"`

	// PollInterval is how often a turtle is expected to poll GET /next.
	// It does not gate the controller (GET /next never blocks), and no
	// package of the controller reads it.
	PollInterval time.Duration `json:"PollInterval,omitempty"`

	// KMeansSeed is the fixed PRNG seed so every turtle that independently
	// loads the same mesh computes the same clustering.
	KMeansSeed uint64 `json:"KMeansSeed,omitempty"`

	// KMeansMaxIter bounds the k-means refinement loop.
	KMeansMaxIter int `json:"KMeansMaxIter,omitempty"`

	// MaxChests is the length of the chest column at the build/dig anchor.
	MaxChests int `json:"MaxChests,omitempty"`

	// ChestSlotsEach is the number of slots a single chest holds.
	ChestSlotsEach int `json:"ChestSlotsEach,omitempty"`

	// CheckInvEveryNBlocks controls how often the chunk digger pauses to
	// run the deposit ritual mid-slab.
	CheckInvEveryNBlocks int `json:"CheckInvEveryNBlocks,omitempty"`

	// AllowedBlocks is the whitelist of item names a builder turtle may
	// hold; anything else is dropped forward during the refill ritual.
	AllowedBlocks []string `json:"AllowedBlocks,omitempty"`

	// AvoidOtherTurtles toggles the side-step obstacle policy versus
	// always digging through.
	AvoidOtherTurtles bool `json:"AvoidOtherTurtles,omitempty"`

	Server ServerConfig `json:"Server"`
}

type ServerConfig struct {
	Host string `json:"Host,omitempty"`
	Port string `json:"Port,omitempty"`
}

// Default returns the configuration spec.md §6 pins when no file overrides it.
func Default() *Config {
	return &Config{
		DataDir:              "data",
		TurtleSlots:          16,
		PollInterval:         100 * time.Millisecond,
		KMeansSeed:           0xC0FFEE,
		KMeansMaxIter:        10000,
		MaxChests:            4,
		ChestSlotsEach:       27,
		CheckInvEveryNBlocks: 32,
		AvoidOtherTurtles:    false,
		Server: ServerConfig{
			Host: "localhost",
			Port: "3000",
		},
	}
}

// Load reads a JSON config file, overlaying it onto Default(). A missing
// file is not an error; a malformed one is.
func Load(name string, debug bool) (*Config, error) {
	cfg := Default()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: not found, using defaults\n", name)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.IsDir() {
		return cfg, cerrs.ErrNotADirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	if debug {
		log.Printf("[config] %q: loaded\n", name)
	}
	return cfg, nil
}
