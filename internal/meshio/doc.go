// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package meshio defines the seam between an external mesh-to-voxel
// converter and internal/modelplan. Triangulated-mesh import is out of
// scope per spec.md's Non-goals; this package only pins the function
// signature a future converter would satisfy (LoadVoxelGrid, a stub that
// always returns an error) and ValidateDims, which checks a grid's shape
// against its claimed dims.
package meshio
