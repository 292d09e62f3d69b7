package main

import (
	"fmt"
	"sync"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/config"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/stairs"
)

// World is all derived spatial data, computed once at startup from the
// authored plan and read-only afterwards. Any number of handler goroutines
// may consult it concurrently.
type World struct {
	Plan           *floorplan.Plan
	Doorways       []floorplan.NormalizedDoorway
	ClearanceZones []floorplan.ClearanceZone
	PassageZones   []floorplan.PassageZone
	NavMeshes      map[floorplan.FloorID]*floorplan.NavMesh
	Stair          *stairs.Geometry
	StairBehavior  stairs.Behavior
	LandingSlab    *stairs.Slab
}

// ExplorerPosition is the single piece of mutable state in the subsystem:
// where the explorer stands, which floor the predictor last assigned, and
// which room (if any) contains the point.
type ExplorerPosition struct {
	X      float64
	Z      float64
	Floor  floorplan.FloorID
	RoomID string
}

// ExplorerState holds the entities moving through the world, plus the
// session variables mirrored to clients (HUD toggles and the like).
type ExplorerState struct {
	Lock      sync.Mutex
	Entities  map[string]ExplorerPosition
	Variables map[string]any
}

// buildWorld derives every static structure from the plan: normalized
// doorways, both zone families, one nav mesh per floor (each floor's rooms
// plus the shared stair footprint), and the stair runtime geometry with
// its landing slab. A plan without a stair yields a single-floor world
// with no predictor.
func buildWorld(cfg *config.Config, plan *floorplan.Plan) (*World, error) {
	w := &World{
		Plan:           plan,
		Doorways:       floorplan.NormalizeDoorways(plan.Rooms),
		ClearanceZones: floorplan.DoorwayClearanceZones(plan, floorplan.ClearanceOptions{}),
		NavMeshes:      make(map[floorplan.FloorID]*floorplan.NavMesh),
	}

	passageOpts := floorplan.PassageOptions{
		Depth:   cfg.Zones.PassageDepth,
		Padding: cfg.Zones.PassagePadding,
	}
	w.PassageZones = floorplan.DoorwayPassageZones(plan, passageOpts)

	var extraZones []geometry.Bounds
	if s := plan.Stair; s != nil {
		g := stairs.NewGeometry(s.CenterX, s.HalfWidth, s.BottomZ, s.TopZ, s.LandingDepth, s.TotalRise, s.Direction)
		w.Stair = &g
		w.StairBehavior = stairs.Behavior{
			TransitionMargin:     cfg.Stairs.TransitionMargin,
			LandingTriggerMargin: cfg.Stairs.LandingTriggerMargin,
			StepRise:             s.TotalRise / float64(cfg.Stairs.StepCount),
		}
		slab, err := stairs.LandingSlab(g, cfg.Stairs.LandingSlabDepth, cfg.Stairs.LandingSlabThickness)
		if err != nil {
			return nil, fmt.Errorf("failed to build landing slab: %w", err)
		}
		w.LandingSlab = &slab
		extraZones = append(extraZones, g.NavAreaRect(cfg.Stairs.NavMarginX, cfg.Stairs.NavMarginZ))
	}

	for _, floor := range plan.Floors() {
		w.NavMeshes[floor] = floorplan.NewNavMesh(plan.ForFloor(floor), floorplan.NavMeshOptions{
			Passage:    passageOpts,
			ExtraZones: extraZones,
		})
	}
	if len(w.NavMeshes) == 0 {
		return nil, fmt.Errorf("plan %q has no floors", plan.ID)
	}
	return w, nil
}

// NavMeshFor returns the nav mesh for the floor, falling back to the
// ground mesh for an unknown floor id.
func (w *World) NavMeshFor(floor floorplan.FloorID) *floorplan.NavMesh {
	if m, ok := w.NavMeshes[floor]; ok {
		return m
	}
	return w.NavMeshes[floorplan.FloorGround]
}

// startPosition places the explorer at the first ground-floor room's
// center, or the first room of any floor when the ground is empty.
func startPosition(plan *floorplan.Plan) ExplorerPosition {
	rooms := plan.FloorRooms(floorplan.FloorGround)
	floor := floorplan.FloorID(floorplan.FloorGround)
	if len(rooms) == 0 {
		rooms = plan.Rooms
		floor = rooms[0].Floor
	}
	r := rooms[0]
	return ExplorerPosition{
		X:      r.Bounds.CenterX(),
		Z:      r.Bounds.CenterZ(),
		Floor:  floor,
		RoomID: r.ID,
	}
}
