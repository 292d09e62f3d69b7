package floorplan

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// WallSide names the room wall a doorway sits on. North is the room's far
// (max Z) wall, south the near (min Z) wall, east max X, west min X.
type WallSide string

const (
	WallNorth WallSide = "north"
	WallSouth WallSide = "south"
	WallEast  WallSide = "east"
	WallWest  WallSide = "west"
)

// FloorID identifies one of the two walkable levels.
type FloorID string

const (
	FloorGround FloorID = "ground"
	FloorUpper  FloorID = "upper"
)

// Doorway is a room-local opening declared on one wall. Start and End are
// unordered offsets along the wall's run axis (world units, not relative to
// the room corner). Adjoining rooms typically declare the same opening once
// each; normalization collapses the pair.
type Doorway struct {
	Wall  WallSide `json:"wall"`
	Start float64  `json:"start"`
	End   float64  `json:"end"`
}

// Room is a rectangular interior with its authored doorways.
type Room struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Floor    FloorID         `json:"floor"`
	Bounds   geometry.Bounds `json:"bounds"`
	Doorways []Doorway       `json:"doorways"`
}

// PointOfInterest marks a showcase spot inside a room. It is static plan
// data consumed by the minimap and the client snapshot.
type PointOfInterest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Floor  FloorID `json:"floor"`
	RoomID string  `json:"room"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
}

// StairSpec is the authored stair block connecting the two floors. It stays
// plain data here; the stairs package derives runtime geometry from it.
type StairSpec struct {
	CenterX      float64 `json:"centerX"`
	HalfWidth    float64 `json:"halfWidth"`
	BottomZ      float64 `json:"bottomZ"`
	TopZ         float64 `json:"topZ"`
	LandingDepth float64 `json:"landingDepth"`
	TotalRise    float64 `json:"totalRise"`
	Direction    int     `json:"direction"`
}

// Plan is the immutable authored floor plan. It is loaded once at startup;
// every derived structure (normalized doorways, zones, nav meshes) is
// computed from it and the plan itself is never mutated afterwards.
type Plan struct {
	ID            string            `json:"id"`
	WallThickness float64           `json:"wallThickness"`
	Rooms         []Room            `json:"rooms"`
	Stair         *StairSpec        `json:"stair,omitempty"`
	POIs          []PointOfInterest `json:"pois,omitempty"`
}

// FloorRooms returns the rooms on the given floor, in declaration order.
func (p *Plan) FloorRooms(f FloorID) []Room {
	var out []Room
	for _, r := range p.Rooms {
		if r.Floor == f {
			out = append(out, r)
		}
	}
	return out
}

// ForFloor returns a view of the plan restricted to one floor's rooms. The
// stair, POIs and wall thickness carry over unchanged.
func (p *Plan) ForFloor(f FloorID) *Plan {
	return &Plan{
		ID:            p.ID,
		WallThickness: p.WallThickness,
		Rooms:         p.FloorRooms(f),
		Stair:         p.Stair,
		POIs:          p.POIs,
	}
}

// RoomAt returns the first room on the given floor containing the point, or
// nil when the point is outside every room (in a passage zone, on the stair
// footprint, or off the mesh entirely).
func (p *Plan) RoomAt(f FloorID, x, z float64) *Room {
	for i := range p.Rooms {
		r := &p.Rooms[i]
		if r.Floor != f {
			continue
		}
		if r.Bounds.Contains(x, z) {
			return r
		}
	}
	return nil
}

// Floors lists the floor ids present in the plan, ground first.
func (p *Plan) Floors() []FloorID {
	present := make(map[FloorID]bool, 2)
	for _, r := range p.Rooms {
		present[r.Floor] = true
	}
	out := make([]FloorID, 0, 2)
	for _, f := range []FloorID{FloorGround, FloorUpper} {
		if present[f] {
			out = append(out, f)
		}
	}
	return out
}
