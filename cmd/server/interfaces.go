package main

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// ExplorerEngine processes movement intents against the immutable world
// and the explorer's mutable position.
type ExplorerEngine interface {
	ProcessMove(req protocol.RequestMove) (*MoveResult, error)
	ProcessTeleport(req protocol.RequestTeleport) (*MoveResult, error)
	SessionVariables() map[string]any
	GetState() *ExplorerState
}

// MoveResult contains the patches produced by one accepted movement tick.
// FloorChanged and RoomEntered are nil on ticks that cross no boundary.
type MoveResult struct {
	EntityUpdated *protocol.EntityUpdated
	FloorChanged  *protocol.FloorChanged
	RoomEntered   *protocol.RoomEntered
}

// MovementValidator clamps and slides a requested displacement against the
// floor's nav mesh.
type MovementValidator interface {
	ValidateMove(world *World, pos ExplorerPosition, dx, dz float64) (float64, float64, error)
}
