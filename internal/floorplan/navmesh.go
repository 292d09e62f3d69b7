package floorplan

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

const defaultNavEpsilon = 1e-5

// NavMeshOptions configures nav mesh construction for one floor.
type NavMeshOptions struct {
	// Passage tunes the doorway gap rectangles merged into the mesh.
	Passage PassageOptions
	// ExtraZones are appended verbatim, for walkable areas the plan's
	// rooms do not cover (stair footprints, landings, a patio).
	ExtraZones []geometry.Bounds
	// Epsilon is the containment tolerance. Values at or below zero
	// select the default.
	Epsilon float64
}

// NavMesh answers point-in-walkable-area queries for one floor. It is a
// flat union of axis-aligned rectangles: every room interior, every doorway
// passage zone, and any extra zones supplied at construction. It is
// immutable after construction and safe for concurrent readers.
type NavMesh struct {
	polygons []geometry.Bounds
	epsilon  float64
}

// NewNavMesh builds the walkable union for the plan's rooms. Callers
// hosting multiple floors build one mesh per floor from Plan.ForFloor.
// Degenerate rectangles are kept but can never satisfy containment, so they
// are harmless.
func NewNavMesh(p *Plan, opts NavMeshOptions) *NavMesh {
	eps := opts.Epsilon
	if eps <= 0 {
		eps = defaultNavEpsilon
	}
	passages := DoorwayPassageZones(p, opts.Passage)
	polygons := make([]geometry.Bounds, 0, len(p.Rooms)+len(passages)+len(opts.ExtraZones))
	for _, r := range p.Rooms {
		polygons = append(polygons, r.Bounds)
	}
	for _, pz := range passages {
		polygons = append(polygons, pz.Bounds)
	}
	polygons = append(polygons, opts.ExtraZones...)
	return &NavMesh{polygons: polygons, epsilon: eps}
}

// Contains reports whether the point lies inside any walkable rectangle,
// with the mesh tolerance applied outward on every edge. Non-finite points
// are never contained.
func (m *NavMesh) Contains(x, z float64) bool {
	for _, b := range m.polygons {
		if b.ContainsWithin(x, z, m.epsilon) {
			return true
		}
	}
	return false
}

// Epsilon returns the containment tolerance in use.
func (m *NavMesh) Epsilon() float64 {
	return m.epsilon
}

// Polygons returns a copy of the mesh's rectangles, for rendering and
// debug overlays. Mutating the copy does not affect the mesh.
func (m *NavMesh) Polygons() []geometry.Bounds {
	out := make([]geometry.Bounds, len(m.polygons))
	copy(out, m.polygons)
	return out
}
