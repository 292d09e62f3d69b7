package floorplan

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

const (
	// defaultDepthFactor sizes a zone's reach through the wall as a
	// multiple of the plan's wall thickness when no depth is given.
	defaultDepthFactor = 2.0
	// defaultSidePadding widens clearance strips past the jambs so an
	// approach at a shallow angle still lands inside the strip.
	defaultSidePadding = 0.6
	defaultZoneEpsilon = 1e-4
)

// ClearanceZone is the walkable strip kept free of furniture on one room's
// side of a doorway. One zone is emitted per authored doorway per room, so
// an opening shared by two rooms yields a strip in each.
type ClearanceZone struct {
	RoomID  string            `json:"room"`
	Wall    WallSide          `json:"wall"`
	Doorway NormalizedDoorway `json:"doorway"`
	Bounds  geometry.Bounds   `json:"bounds"`
}

// PassageZone is the walkable rectangle spanning a doorway's wall gap,
// linking the interiors on both sides. One zone is emitted per deduplicated
// opening.
type PassageZone struct {
	Doorway NormalizedDoorway `json:"doorway"`
	Bounds  geometry.Bounds   `json:"bounds"`
}

// ClearanceOptions tunes clearance strip synthesis. Zero values select the
// plan-derived defaults; Epsilon values at or below zero select the default
// tolerance.
type ClearanceOptions struct {
	// Depth is how far the strip reaches into the room from the wall
	// plane. Zero means twice the plan's wall thickness.
	Depth float64
	// SidePadding extends the strip past each doorway jamb. Zero means
	// the default padding.
	SidePadding float64
	// Epsilon is the overhang past the wall plane that absorbs seam
	// drift between the strip and the adjoining passage zone.
	Epsilon float64
}

func (o ClearanceOptions) withDefaults(p *Plan) ClearanceOptions {
	if o.Depth == 0 {
		o.Depth = defaultDepthFactor * p.WallThickness
	}
	if o.SidePadding == 0 {
		o.SidePadding = defaultSidePadding
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultZoneEpsilon
	}
	return o
}

// PassageOptions tunes passage zone synthesis. A zero Depth selects twice
// the plan's wall thickness; Padding is applied literally, so negative
// values narrow the zone below the doorway width.
type PassageOptions struct {
	// Depth is the zone's extent perpendicular to the wall, centered on
	// the wall plane. Zero means twice the plan's wall thickness.
	Depth float64
	// Padding widens the zone along the wall beyond the doorway width.
	Padding float64
	// Epsilon extends the zone perpendicular to the wall so it overlaps
	// the room interiors on both sides.
	Epsilon float64
}

func (o PassageOptions) withDefaults(p *Plan) PassageOptions {
	if o.Depth == 0 {
		o.Depth = defaultDepthFactor * p.WallThickness
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultZoneEpsilon
	}
	return o
}

// DoorwayClearanceZones synthesizes the keep-clear strip on each room's
// side of its authored doorways. Strips are clamped to the room interior
// along both axes, except for an epsilon overhang past the wall plane that
// keeps them flush with the matching passage zone. Strips whose area
// collapses under clamping are dropped. Output order follows room then
// doorway declaration order.
func DoorwayClearanceZones(p *Plan, opts ClearanceOptions) []ClearanceZone {
	opts = opts.withDefaults(p)
	var out []ClearanceZone
	for i := range p.Rooms {
		room := &p.Rooms[i]
		for _, d := range room.Doorways {
			nd := normalizeDoorway(room, d)
			if !geometry.IsFinite(nd.CenterX) || !geometry.IsFinite(nd.CenterZ) || !geometry.IsFinite(nd.Width) {
				continue
			}
			bounds, ok := clearanceBounds(room.Bounds, d.Wall, nd, opts)
			if !ok {
				continue
			}
			out = append(out, ClearanceZone{
				RoomID:  room.ID,
				Wall:    d.Wall,
				Doorway: nd,
				Bounds:  bounds,
			})
		}
	}
	return out
}

// clearanceBounds builds one strip rectangle. It reports false when the
// strip has no interior extent along either axis.
func clearanceBounds(room geometry.Bounds, wall WallSide, nd NormalizedDoorway, opts ClearanceOptions) (geometry.Bounds, bool) {
	half := nd.Width / 2
	var b geometry.Bounds
	if WallAxis(wall) == geometry.Horizontal {
		b.MinX = geometry.Clamp(nd.CenterX-half-opts.SidePadding, room.MinX, room.MaxX)
		b.MaxX = geometry.Clamp(nd.CenterX+half+opts.SidePadding, room.MinX, room.MaxX)
		if wall == WallNorth {
			b.MinZ = maxf(room.MaxZ-opts.Depth, room.MinZ)
			b.MaxZ = room.MaxZ + opts.Epsilon
		} else {
			b.MinZ = room.MinZ - opts.Epsilon
			b.MaxZ = minf(room.MinZ+opts.Depth, room.MaxZ)
		}
		if b.MaxX-b.MinX <= 0 || b.MaxZ-b.MinZ <= opts.Epsilon {
			return geometry.Bounds{}, false
		}
		return b, true
	}
	b.MinZ = geometry.Clamp(nd.CenterZ-half-opts.SidePadding, room.MinZ, room.MaxZ)
	b.MaxZ = geometry.Clamp(nd.CenterZ+half+opts.SidePadding, room.MinZ, room.MaxZ)
	if wall == WallEast {
		b.MinX = maxf(room.MaxX-opts.Depth, room.MinX)
		b.MaxX = room.MaxX + opts.Epsilon
	} else {
		b.MinX = room.MinX - opts.Epsilon
		b.MaxX = minf(room.MinX+opts.Depth, room.MaxX)
	}
	if b.MaxZ-b.MinZ <= 0 || b.MaxX-b.MinX <= opts.Epsilon {
		return geometry.Bounds{}, false
	}
	return b, true
}

// DoorwayPassageZones synthesizes one wall-gap rectangle per deduplicated
// doorway on the plan. The zone straddles the wall plane by half the depth
// on each side plus an epsilon overhang into the adjoining interiors; along
// the wall it spans the doorway width plus padding with no overhang. Zones
// whose span collapses (for example under a large negative padding) are
// dropped. Output order follows NormalizeDoorways order.
func DoorwayPassageZones(p *Plan, opts PassageOptions) []PassageZone {
	opts = opts.withDefaults(p)
	doorways := NormalizeDoorways(p.Rooms)
	out := make([]PassageZone, 0, len(doorways))
	for _, nd := range doorways {
		half := nd.Width/2 + opts.Padding
		reach := opts.Depth/2 + opts.Epsilon
		var b geometry.Bounds
		if nd.Axis == geometry.Horizontal {
			b = geometry.Bounds{
				MinX: nd.CenterX - half,
				MaxX: nd.CenterX + half,
				MinZ: nd.CenterZ - reach,
				MaxZ: nd.CenterZ + reach,
			}
		} else {
			b = geometry.Bounds{
				MinX: nd.CenterX - reach,
				MaxX: nd.CenterX + reach,
				MinZ: nd.CenterZ - half,
				MaxZ: nd.CenterZ + half,
			}
		}
		if b.MaxX-b.MinX <= 0 || b.MaxZ-b.MinZ <= 0 {
			continue
		}
		out = append(out, PassageZone{Doorway: nd, Bounds: b})
	}
	return out
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
