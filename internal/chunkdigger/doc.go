// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package chunkdigger is the online per-turtle chunk-mining variant: it
// snake-rasters a 3D box in height-3 slabs, digging up and down at every
// cell, optionally laying a floor, and periodically depositing mined
// material into a chest column.
package chunkdigger
