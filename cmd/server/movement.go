package main

import (
	"math"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// maxStepLength caps one tick's displacement. Client ticks at a sane rate
// stay far below it; a burst after a hung tab cannot tunnel through walls.
const maxStepLength = 1.0

// MovementValidatorImpl clamps the requested step and tests the target
// against the current floor's nav mesh, sliding along one axis when the
// diagonal target is blocked so walls feel smooth instead of sticky.
type MovementValidatorImpl struct {
	logger Logger
}

func NewMovementValidator(logger Logger) *MovementValidatorImpl {
	return &MovementValidatorImpl{logger: logger}
}

func (mv *MovementValidatorImpl) ValidateMove(world *World, pos ExplorerPosition, dx, dz float64) (float64, float64, error) {
	if !geometry.IsFinite(dx) || !geometry.IsFinite(dz) {
		return 0, 0, movementErrorf("invalid-vector", "non-finite displacement (%v, %v)", dx, dz)
	}
	if dx == 0 && dz == 0 {
		return 0, 0, movementErrorf("invalid-vector", "no movement specified")
	}

	if length := math.Hypot(dx, dz); length > maxStepLength {
		scale := maxStepLength / length
		dx *= scale
		dz *= scale
	}

	mesh := world.NavMeshFor(pos.Floor)
	tx, tz := pos.X+dx, pos.Z+dz
	if mesh.Contains(tx, tz) {
		return tx, tz, nil
	}
	// Slide: try the X component alone, then the Z component alone.
	if dx != 0 && mesh.Contains(pos.X+dx, pos.Z) {
		return pos.X + dx, pos.Z, nil
	}
	if dz != 0 && mesh.Contains(pos.X, pos.Z+dz) {
		return pos.X, pos.Z + dz, nil
	}
	return 0, 0, movementErrorf("blocked", "target (%v, %v) is outside the navigable area", tx, tz)
}
