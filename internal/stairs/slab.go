package stairs

import (
	"fmt"
	"math"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// Slab is the physical landing platform at the top of the flight: its
// footprint on the XZ plane, the height of its walking surface, and the
// plate thickness below that surface. Scene construction turns it into a
// box mesh; this package only fixes its dimensions.
type Slab struct {
	Footprint geometry.Bounds
	TopY      float64
	Thickness float64
}

// LandingSlab sizes the landing platform for the flight. Depth runs from
// the last tread outward in the climb direction; it may exceed the landing
// trigger extent so the plate overhangs the adjoining hallway. Unlike the
// tolerant zone generators, a slab that cannot physically exist is a
// configuration error and is returned as one: malformed authored geometry
// here would produce a hole under the explorer's feet at the top of the
// stairs.
func LandingSlab(g Geometry, depth, thickness float64) (Slab, error) {
	if !geometry.IsFinite(depth) || depth <= 0 {
		return Slab{}, fmt.Errorf("landing slab depth must be positive, got %v", depth)
	}
	if !geometry.IsFinite(thickness) || thickness <= 0 {
		return Slab{}, fmt.Errorf("landing slab thickness must be positive, got %v", thickness)
	}
	if !geometry.IsFinite(g.HalfWidth) || g.HalfWidth <= 0 {
		return Slab{}, fmt.Errorf("landing slab needs a positive stair half width, got %v", g.HalfWidth)
	}
	if !geometry.IsFinite(g.TotalRise) || g.TotalRise <= 0 {
		return Slab{}, fmt.Errorf("landing slab needs a positive total rise, got %v", g.TotalRise)
	}
	far := g.TopZ + g.Direction*depth
	fp := geometry.Bounds{
		MinX: g.CenterX - g.HalfWidth,
		MaxX: g.CenterX + g.HalfWidth,
		MinZ: math.Min(g.TopZ, far),
		MaxZ: math.Max(g.TopZ, far),
	}
	if fp.IsDegenerate() {
		return Slab{}, fmt.Errorf("landing slab footprint is degenerate: %+v", fp)
	}
	return Slab{Footprint: fp, TopY: g.TotalRise, Thickness: thickness}, nil
}
