package main

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/ws"
)

// BroadcasterImpl implements Broadcaster using the WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload interface{}) {
	seq := b.sequence.Next()
	envelope := protocol.PatchEnvelope{
		Sequence: seq,
		EventID:  0,
		Type:     eventType,
		Payload:  payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(data)
}

// LoggerImpl implements Logger using the standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using an atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return atomic.LoadUint64(&sg.counter)
}

// IntentHandlers routes decoded intents into the engine and broadcasts the
// resulting patches.
type IntentHandlers struct {
	engine      ExplorerEngine
	broadcaster Broadcaster
	logger      Logger
}

func NewIntentHandlers(engine ExplorerEngine, broadcaster Broadcaster, logger Logger) *IntentHandlers {
	return &IntentHandlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *IntentHandlers) broadcastResult(result *MoveResult) {
	if result.EntityUpdated != nil {
		h.broadcaster.BroadcastEvent("EntityUpdated", *result.EntityUpdated)
	}
	if result.FloorChanged != nil {
		h.broadcaster.BroadcastEvent("FloorChanged", *result.FloorChanged)
	}
	if result.RoomEntered != nil {
		h.broadcaster.BroadcastEvent("RoomEntered", *result.RoomEntered)
	}
}

// HandleClientConnected replays the current session variables when a client
// joins, so its HUD starts in sync with clients that saw earlier changes.
func (h *IntentHandlers) HandleClientConnected(clientID string) {
	vars := h.engine.SessionVariables()
	h.broadcaster.BroadcastEvent("VariablesChanged", protocol.VariablesChanged{Entries: vars})
	h.logger.Printf("client %s joined, replayed %d session variables", clientID, len(vars))
}

func (h *IntentHandlers) HandleRequestMove(req protocol.RequestMove) error {
	result, err := h.engine.ProcessMove(req)
	if err != nil {
		// Rejected moves are routine (walking into a wall); log and
		// drop rather than surfacing an error to the client.
		h.logger.Printf("move rejected: %v", err)
		return err
	}
	h.broadcastResult(result)
	return nil
}

func (h *IntentHandlers) HandleRequestTeleport(req protocol.RequestTeleport) error {
	result, err := h.engine.ProcessTeleport(req)
	if err != nil {
		h.logger.Printf("teleport rejected: %v", err)
		return err
	}
	h.broadcastResult(result)
	return nil
}

func (h *IntentHandlers) HandleWebSocketMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Type {
	case "RequestMove":
		var req protocol.RequestMove
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestMove(req)

	case "RequestTeleport":
		var req protocol.RequestTeleport
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestTeleport(req)

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return nil
	}
}
