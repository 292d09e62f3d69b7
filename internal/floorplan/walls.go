package floorplan

import (
	"sort"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

const wallSegmentEpsilon = 1e-6

// WallSegment is a solid stretch of one room wall, what remains after the
// room's doorway openings are cut out. Fixed is the wall plane coordinate;
// From and To run along the wall's axis with From < To.
type WallSegment struct {
	RoomID string
	Wall   WallSide
	Axis   geometry.Axis
	Fixed  float64
	From   float64
	To     float64
}

type span struct{ lo, hi float64 }

// WallSegments cuts the room's doorway openings out of its four walls and
// returns the remaining solid runs. Openings are clamped to the wall's
// extent, overlapping openings merge, and slivers at or below tolerance are
// dropped. Walls are visited north, south, east, west, and segments on each
// wall are ordered by position, so output is deterministic.
func WallSegments(room *Room) []WallSegment {
	var out []WallSegment
	for _, wall := range []WallSide{WallNorth, WallSouth, WallEast, WallWest} {
		axis := WallAxis(wall)
		var runLo, runHi float64
		if axis == geometry.Horizontal {
			runLo, runHi = room.Bounds.MinX, room.Bounds.MaxX
		} else {
			runLo, runHi = room.Bounds.MinZ, room.Bounds.MaxZ
		}
		openings := wallOpenings(room, wall, runLo, runHi)
		fixed := wallPlane(room.Bounds, wall)
		cursor := runLo
		for _, o := range openings {
			if o.lo-cursor > wallSegmentEpsilon {
				out = append(out, WallSegment{
					RoomID: room.ID, Wall: wall, Axis: axis,
					Fixed: fixed, From: cursor, To: o.lo,
				})
			}
			if o.hi > cursor {
				cursor = o.hi
			}
		}
		if runHi-cursor > wallSegmentEpsilon {
			out = append(out, WallSegment{
				RoomID: room.ID, Wall: wall, Axis: axis,
				Fixed: fixed, From: cursor, To: runHi,
			})
		}
	}
	return out
}

// wallOpenings collects the room's openings on one wall, clamped to the
// wall run, sorted and merged.
func wallOpenings(room *Room, wall WallSide, runLo, runHi float64) []span {
	var spans []span
	for _, d := range room.Doorways {
		if d.Wall != wall {
			continue
		}
		lo, hi := d.Start, d.End
		if hi < lo {
			lo, hi = hi, lo
		}
		lo = geometry.Clamp(lo, runLo, runHi)
		hi = geometry.Clamp(hi, runLo, runHi)
		if hi-lo <= wallSegmentEpsilon {
			continue
		}
		spans = append(spans, span{lo, hi})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	merged := spans[:0]
	for _, s := range spans {
		if n := len(merged); n > 0 && s.lo <= merged[n-1].hi {
			if s.hi > merged[n-1].hi {
				merged[n-1].hi = s.hi
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
