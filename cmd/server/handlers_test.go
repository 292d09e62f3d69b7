package main

import (
	"encoding/json"
	"testing"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
)

type MockEngine struct {
	moveResult     *MoveResult
	teleportResult *MoveResult
	variables      map[string]any
	err            error
	moveCalls      int
	teleportCalls  int
}

func (m *MockEngine) ProcessMove(req protocol.RequestMove) (*MoveResult, error) {
	m.moveCalls++
	return m.moveResult, m.err
}

func (m *MockEngine) ProcessTeleport(req protocol.RequestTeleport) (*MoveResult, error) {
	m.teleportCalls++
	return m.teleportResult, m.err
}

func (m *MockEngine) SessionVariables() map[string]any {
	if m.variables == nil {
		return map[string]any{}
	}
	return m.variables
}

func (m *MockEngine) GetState() *ExplorerState { return nil }

func intentJSON(t *testing.T, intentType string, payload any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	data, err := json.Marshal(protocol.IntentEnvelope{Type: intentType, Payload: raw})
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}
	return data
}

func TestHandleWebSocketMessage_RequestMoveBroadcastsPatches(t *testing.T) {
	engine := &MockEngine{
		moveResult: &MoveResult{
			EntityUpdated: &protocol.EntityUpdated{ID: "explorer-1", X: 1, Z: 2, Floor: "ground"},
			FloorChanged:  &protocol.FloorChanged{EntityID: "explorer-1", Floor: "ground"},
			RoomEntered:   &protocol.RoomEntered{EntityID: "explorer-1", RoomID: "atrium"},
		},
	}
	broadcaster := &MockBroadcaster{}
	h := NewIntentHandlers(engine, broadcaster, &MockLogger{})

	msg := intentJSON(t, "RequestMove", protocol.RequestMove{EntityID: "explorer-1", DX: 0.1, DZ: 0})
	if err := h.HandleWebSocketMessage(msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.moveCalls != 1 {
		t.Errorf("expected 1 move call, got %d", engine.moveCalls)
	}
	want := []string{"EntityUpdated", "FloorChanged", "RoomEntered"}
	if len(broadcaster.events) != len(want) {
		t.Fatalf("expected events %v, got %v", want, broadcaster.events)
	}
	for i, ev := range want {
		if broadcaster.events[i] != ev {
			t.Errorf("event %d: expected %s, got %s", i, ev, broadcaster.events[i])
		}
	}
}

func TestHandleWebSocketMessage_QuietPatchesOmitted(t *testing.T) {
	engine := &MockEngine{
		moveResult: &MoveResult{
			EntityUpdated: &protocol.EntityUpdated{ID: "explorer-1", X: 1, Z: 2, Floor: "ground"},
		},
	}
	broadcaster := &MockBroadcaster{}
	h := NewIntentHandlers(engine, broadcaster, &MockLogger{})

	msg := intentJSON(t, "RequestMove", protocol.RequestMove{EntityID: "explorer-1", DX: 0.1, DZ: 0})
	if err := h.HandleWebSocketMessage(msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(broadcaster.events) != 1 || broadcaster.events[0] != "EntityUpdated" {
		t.Errorf("expected only EntityUpdated, got %v", broadcaster.events)
	}
}

func TestHandleWebSocketMessage_RejectedMoveBroadcastsNothing(t *testing.T) {
	engine := &MockEngine{err: movementErrorf("blocked", "wall")}
	broadcaster := &MockBroadcaster{}
	h := NewIntentHandlers(engine, broadcaster, &MockLogger{})

	msg := intentJSON(t, "RequestMove", protocol.RequestMove{EntityID: "explorer-1", DX: 0.1, DZ: 0})
	if err := h.HandleWebSocketMessage(msg); err == nil {
		t.Fatal("expected error to propagate")
	}
	if len(broadcaster.events) != 0 {
		t.Errorf("expected no broadcasts on rejection, got %v", broadcaster.events)
	}
}

func TestHandleWebSocketMessage_Teleport(t *testing.T) {
	engine := &MockEngine{
		teleportResult: &MoveResult{
			EntityUpdated: &protocol.EntityUpdated{ID: "explorer-1", X: 4, Z: 3, Floor: "ground"},
		},
	}
	h := NewIntentHandlers(engine, &MockBroadcaster{}, &MockLogger{})

	msg := intentJSON(t, "RequestTeleport", protocol.RequestTeleport{EntityID: "explorer-1", PoiID: "desk"})
	if err := h.HandleWebSocketMessage(msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.teleportCalls != 1 {
		t.Errorf("expected 1 teleport call, got %d", engine.teleportCalls)
	}
}

func TestHandleWebSocketMessage_UnknownTypeIgnored(t *testing.T) {
	engine := &MockEngine{}
	h := NewIntentHandlers(engine, &MockBroadcaster{}, &MockLogger{})

	msg := intentJSON(t, "RequestDance", map[string]string{})
	if err := h.HandleWebSocketMessage(msg); err != nil {
		t.Errorf("unknown intent should be ignored, got %v", err)
	}
	if engine.moveCalls != 0 || engine.teleportCalls != 0 {
		t.Error("unknown intent must not reach the engine")
	}
}

func TestHandleClientConnected_ReplaysSessionVariables(t *testing.T) {
	engine := &MockEngine{variables: map[string]any{"ui.debug": true}}
	broadcaster := &MockBroadcaster{}
	h := NewIntentHandlers(engine, broadcaster, &MockLogger{})

	h.HandleClientConnected("client-1")

	if len(broadcaster.events) != 1 || broadcaster.events[0] != "VariablesChanged" {
		t.Fatalf("expected a single VariablesChanged broadcast, got %v", broadcaster.events)
	}
	payload, ok := broadcaster.payloads[0].(protocol.VariablesChanged)
	if !ok {
		t.Fatalf("expected VariablesChanged payload, got %T", broadcaster.payloads[0])
	}
	if debug, ok := payload.Entries["ui.debug"].(bool); !ok || !debug {
		t.Errorf("expected ui.debug=true in entries, got %v", payload.Entries)
	}
}

func TestHandleWebSocketMessage_MalformedJSON(t *testing.T) {
	h := NewIntentHandlers(&MockEngine{}, &MockBroadcaster{}, &MockLogger{})
	if err := h.HandleWebSocketMessage([]byte("{not json")); err == nil {
		t.Error("expected error for malformed envelope")
	}
}
