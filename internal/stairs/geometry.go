package stairs

import (
	"math"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// Geometry describes one straight stair flight linking the ground and upper
// floors, in the same XZ world space as the floor plan. BottomZ is the foot
// of the flight, TopZ the last tread; the landing plate extends past TopZ in
// the climb direction. Direction is +1 when climbing runs toward positive Z
// and -1 toward negative Z.
type Geometry struct {
	CenterX     float64
	HalfWidth   float64
	BottomZ     float64
	TopZ        float64
	LandingMinZ float64
	LandingMaxZ float64
	TotalRise   float64
	Direction   float64
}

// NewGeometry derives the landing extent from the landing depth and returns
// the runtime geometry. Direction values other than -1 are treated as +1.
func NewGeometry(centerX, halfWidth, bottomZ, topZ, landingDepth, totalRise float64, direction int) Geometry {
	dir := 1.0
	if direction < 0 {
		dir = -1.0
	}
	landingFar := topZ + dir*landingDepth
	return Geometry{
		CenterX:     centerX,
		HalfWidth:   halfWidth,
		BottomZ:     bottomZ,
		TopZ:        topZ,
		LandingMinZ: math.Min(topZ, landingFar),
		LandingMaxZ: math.Max(topZ, landingFar),
		TotalRise:   totalRise,
		Direction:   dir,
	}
}

// WithinWidth reports whether x lies inside the stairwell laterally, with
// the given margin added to each side. Non-finite inputs are never within.
func (g Geometry) WithinWidth(x, margin float64) bool {
	if !geometry.IsFinite(x) || !geometry.IsFinite(margin) {
		return false
	}
	return math.Abs(x-g.CenterX) <= g.HalfWidth+margin
}

// WithinLanding reports whether the point stands on the landing plate at
// the top of the flight, with the given margin applied laterally and along
// Z on the far side of the plate.
func (g Geometry) WithinLanding(x, z, margin float64) bool {
	if !geometry.IsFinite(z) {
		return false
	}
	return g.WithinWidth(x, margin) && z >= g.LandingMinZ-margin && z <= g.TopZ+margin
}

// RampHeight returns the walking height of the flight surface under the
// point: zero at the foot, TotalRise at the last tread, clamped at both
// ends. Points laterally outside the stairwell (margin applied) and any
// degenerate geometry (zero run, non-finite result) yield zero.
func (g Geometry) RampHeight(x, z, margin float64) float64 {
	if !g.WithinWidth(x, margin) || !geometry.IsFinite(z) {
		return 0
	}
	run := g.BottomZ - g.TopZ
	if math.Abs(run) < 1e-9 {
		return 0
	}
	h := geometry.Clamp((g.BottomZ-z)/run, 0, 1) * g.TotalRise
	if !geometry.IsFinite(h) {
		return 0
	}
	return h
}

// NavAreaRect returns a walkable rectangle covering the whole stair
// footprint, flight and landing, grown by the given margins. It is meant to
// be appended to a floor's nav mesh as an extra zone so crossing the stair
// never tests outside the mesh, whichever floor is active.
func (g Geometry) NavAreaRect(marginX, marginZ float64) geometry.Bounds {
	minZ := math.Min(g.BottomZ, math.Min(g.TopZ, g.LandingMinZ))
	maxZ := math.Max(g.BottomZ, math.Max(g.TopZ, g.LandingMaxZ))
	return geometry.Bounds{
		MinX: g.CenterX - g.HalfWidth - marginX,
		MaxX: g.CenterX + g.HalfWidth + marginX,
		MinZ: minZ - marginZ,
		MaxZ: maxZ + marginZ,
	}
}
