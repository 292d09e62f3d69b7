package floorplan

import (
	"fmt"
	"sort"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// NormalizedDoorway is a wall opening in world coordinates, independent of
// which room declared it. Horizontal doorways sit in a wall that runs along
// X (CenterZ is the wall plane); vertical doorways sit in a wall that runs
// along Z (CenterX is the wall plane).
type NormalizedDoorway struct {
	Axis    geometry.Axis `json:"axis"`
	CenterX float64       `json:"centerX"`
	CenterZ float64       `json:"centerZ"`
	Width   float64       `json:"width"`
}

// WallAxis reports the run axis of a wall side. North and south walls run
// along X, east and west walls along Z.
func WallAxis(w WallSide) geometry.Axis {
	switch w {
	case WallNorth, WallSouth:
		return geometry.Horizontal
	default:
		return geometry.Vertical
	}
}

// wallPlane returns the fixed world coordinate of the given wall of a room.
func wallPlane(b geometry.Bounds, w WallSide) float64 {
	switch w {
	case WallNorth:
		return b.MaxZ
	case WallSouth:
		return b.MinZ
	case WallEast:
		return b.MaxX
	default:
		return b.MinX
	}
}

// normalizeDoorway converts a room-local doorway into world coordinates.
// Start and End may arrive in either order.
func normalizeDoorway(room *Room, d Doorway) NormalizedDoorway {
	lo, hi := d.Start, d.End
	if hi < lo {
		lo, hi = hi, lo
	}
	center := (lo + hi) / 2
	width := hi - lo
	plane := wallPlane(room.Bounds, d.Wall)
	if WallAxis(d.Wall) == geometry.Horizontal {
		return NormalizedDoorway{Axis: geometry.Horizontal, CenterX: center, CenterZ: plane, Width: width}
	}
	return NormalizedDoorway{Axis: geometry.Vertical, CenterX: plane, CenterZ: center, Width: width}
}

// dedupKey quantizes a normalized doorway to millimeter precision so the
// same physical opening declared by both adjoining rooms collapses to one
// entry even when the authored offsets drift by float noise.
func dedupKey(nd NormalizedDoorway) string {
	return fmt.Sprintf("%s|%.3f|%.3f|%.3f", nd.Axis, nd.CenterX, nd.CenterZ, nd.Width)
}

// NormalizeDoorways flattens every room's authored doorways into a single
// deduplicated, deterministically ordered slice of world-space openings.
// Non-finite doorways are dropped; zero-width ones pass through and are
// filtered by degeneracy checks in downstream consumers. The result is
// stable across runs for the same input, and running it twice over the
// same rooms yields deep-equal output.
func NormalizeDoorways(rooms []Room) []NormalizedDoorway {
	seen := make(map[string]struct{})
	var out []NormalizedDoorway
	for i := range rooms {
		room := &rooms[i]
		for _, d := range room.Doorways {
			nd := normalizeDoorway(room, d)
			if !geometry.IsFinite(nd.CenterX) || !geometry.IsFinite(nd.CenterZ) || !geometry.IsFinite(nd.Width) {
				continue
			}
			key := dedupKey(nd)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, nd)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Axis != b.Axis {
			return a.Axis == geometry.Horizontal
		}
		if a.CenterZ != b.CenterZ {
			return a.CenterZ < b.CenterZ
		}
		if a.CenterX != b.CenterX {
			return a.CenterX < b.CenterX
		}
		return a.Width < b.Width
	})
	return out
}
