package main

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/metrics"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/stairs"
)

// EngineImpl implements ExplorerEngine. The world is shared-immutable; the
// state lock serializes position updates from concurrent connections.
type EngineImpl struct {
	world     *World
	state     *ExplorerState
	validator MovementValidator
	logger    Logger
	metrics   *metrics.Metrics
}

func NewEngine(world *World, state *ExplorerState, validator MovementValidator, logger Logger, m *metrics.Metrics) *EngineImpl {
	return &EngineImpl{
		world:     world,
		state:     state,
		validator: validator,
		logger:    logger,
		metrics:   m,
	}
}

func (e *EngineImpl) GetState() *ExplorerState {
	return e.state
}

// SessionVariables returns a copy of the session variables; callers may
// annotate the copy freely before sending it out.
func (e *EngineImpl) SessionVariables() map[string]any {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()
	vars := make(map[string]any, len(e.state.Variables))
	for k, v := range e.state.Variables {
		vars[k] = v
	}
	return vars
}

func (e *EngineImpl) ProcessMove(req protocol.RequestMove) (*MoveResult, error) {
	e.state.Lock.Lock()
	pos, ok := e.state.Entities[req.EntityID]
	e.state.Lock.Unlock()
	if !ok {
		e.countRejected("unknown-entity")
		return nil, movementErrorf("unknown-entity", "entity %q not found", req.EntityID)
	}

	x, z, err := e.validator.ValidateMove(e.world, pos, req.DX, req.DZ)
	if err != nil {
		if me, isMove := err.(*MovementError); isMove {
			e.countRejected(me.Reason)
		}
		return nil, err
	}

	return e.commit(req.EntityID, pos, x, z)
}

func (e *EngineImpl) ProcessTeleport(req protocol.RequestTeleport) (*MoveResult, error) {
	e.state.Lock.Lock()
	pos, ok := e.state.Entities[req.EntityID]
	e.state.Lock.Unlock()
	if !ok {
		e.countRejected("unknown-entity")
		return nil, movementErrorf("unknown-entity", "entity %q not found", req.EntityID)
	}

	var target *floorplan.PointOfInterest
	for i := range e.world.Plan.POIs {
		if e.world.Plan.POIs[i].ID == req.PoiID {
			target = &e.world.Plan.POIs[i]
			break
		}
	}
	if target == nil {
		e.countRejected("unknown-poi")
		return nil, movementErrorf("unknown-poi", "poi %q not found", req.PoiID)
	}
	if !e.world.NavMeshFor(target.Floor).Contains(target.X, target.Z) {
		e.countRejected("blocked")
		return nil, movementErrorf("blocked", "poi %q is outside the navigable area", req.PoiID)
	}

	// A teleport lands on the POI's floor directly; the predictor takes
	// over again from there on the next tick.
	pos.Floor = target.Floor
	return e.commit(req.EntityID, pos, target.X, target.Z)
}

// commit finalizes an accepted position: runs the stair predictor with the
// caller-held floor, resolves the containing room, stores the new position
// and assembles the outgoing patches.
func (e *EngineImpl) commit(entityID string, pos ExplorerPosition, x, z float64) (*MoveResult, error) {
	floor := pos.Floor
	if e.world.Stair != nil {
		floor = stairs.PredictFloor(*e.world.Stair, e.world.StairBehavior, x, z, pos.Floor)
	}

	roomID, roomName := "", ""
	if room := e.world.Plan.RoomAt(floor, x, z); room != nil {
		roomID, roomName = room.ID, room.Name
	}

	result := &MoveResult{
		EntityUpdated: &protocol.EntityUpdated{ID: entityID, X: x, Z: z, Floor: string(floor)},
	}
	if floor != pos.Floor {
		result.FloorChanged = &protocol.FloorChanged{EntityID: entityID, Floor: string(floor)}
		e.logger.Printf("entity %s floor %s -> %s at (%.2f, %.2f)", entityID, pos.Floor, floor, x, z)
		if e.metrics != nil {
			e.metrics.FloorTransitions.WithLabelValues(string(floor)).Inc()
		}
	}
	if roomID != pos.RoomID {
		result.RoomEntered = &protocol.RoomEntered{EntityID: entityID, RoomID: roomID, RoomName: roomName}
		if e.metrics != nil && roomID != "" {
			e.metrics.RoomEntries.Inc()
		}
	}

	e.state.Lock.Lock()
	e.state.Entities[entityID] = ExplorerPosition{X: x, Z: z, Floor: floor, RoomID: roomID}
	e.state.Lock.Unlock()

	if e.metrics != nil {
		e.metrics.Moves.Inc()
	}
	return result, nil
}

func (e *EngineImpl) countRejected(reason string) {
	if e.metrics != nil {
		e.metrics.RejectedMoves.WithLabelValues(reason).Inc()
	}
}
