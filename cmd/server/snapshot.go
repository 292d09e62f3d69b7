package main

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
)

const protocolVersion = "v1"

func rectLite(b geometry.Bounds) protocol.RectLite {
	return protocol.RectLite{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ}
}

// buildSnapshot assembles the client boot state: the full static plan plus
// every entity's current position. Called per index request; everything
// except the entity list is immutable, so no lock is held while walking
// the plan.
func buildSnapshot(world *World, state *ExplorerState) protocol.Snapshot {
	plan := world.Plan

	floors := make([]string, 0, 2)
	for _, f := range plan.Floors() {
		floors = append(floors, string(f))
	}

	rooms := make([]protocol.RoomLite, 0, len(plan.Rooms))
	var walls []protocol.WallSegmentLite
	for i := range plan.Rooms {
		room := &plan.Rooms[i]
		rooms = append(rooms, protocol.RoomLite{
			ID:     room.ID,
			Name:   room.Name,
			Floor:  string(room.Floor),
			Bounds: rectLite(room.Bounds),
		})
		for _, seg := range floorplan.WallSegments(room) {
			walls = append(walls, protocol.WallSegmentLite{
				RoomID: seg.RoomID,
				Axis:   string(seg.Axis),
				Fixed:  seg.Fixed,
				From:   seg.From,
				To:     seg.To,
			})
		}
	}

	navPolygons := make(map[string][]protocol.RectLite, len(world.NavMeshes))
	for floor, mesh := range world.NavMeshes {
		polys := mesh.Polygons()
		rects := make([]protocol.RectLite, 0, len(polys))
		for _, b := range polys {
			rects = append(rects, rectLite(b))
		}
		navPolygons[string(floor)] = rects
	}

	pois := make([]protocol.PoiLite, 0, len(plan.POIs))
	for _, poi := range plan.POIs {
		pois = append(pois, protocol.PoiLite{
			ID:    poi.ID,
			Name:  poi.Name,
			Floor: string(poi.Floor),
			X:     poi.X,
			Z:     poi.Z,
		})
	}

	var stair *protocol.StairLite
	if g := world.Stair; g != nil {
		landingZ := g.LandingMinZ
		if g.Direction > 0 {
			landingZ = g.LandingMaxZ
		}
		stair = &protocol.StairLite{
			CenterX:   g.CenterX,
			HalfWidth: g.HalfWidth,
			BottomZ:   g.BottomZ,
			TopZ:      g.TopZ,
			LandingZ:  landingZ,
		}
	}

	state.Lock.Lock()
	entities := make([]protocol.EntityLite, 0, len(state.Entities))
	for id, pos := range state.Entities {
		entities = append(entities, protocol.EntityLite{
			ID:    id,
			Kind:  "explorer",
			X:     pos.X,
			Z:     pos.Z,
			Floor: string(pos.Floor),
		})
	}
	variables := make(map[string]any, len(state.Variables))
	for k, v := range state.Variables {
		variables[k] = v
	}
	state.Lock.Unlock()

	return protocol.Snapshot{
		PlanID:          plan.ID,
		LastEventID:     0,
		Floors:          floors,
		Rooms:           rooms,
		WallSegments:    walls,
		NavPolygons:     navPolygons,
		POIs:            pois,
		Stair:           stair,
		Entities:        entities,
		Variables:       variables,
		ProtocolVersion: protocolVersion,
	}
}
