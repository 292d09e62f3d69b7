package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// VariablesChanged carries session variable updates; the full set is also
// replayed to every client that connects mid-session.
type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

// EntityUpdated carries an entity's accepted position after a movement
// tick. Floor is included so clients can keep their entity markers on the
// correct level without waiting for a FloorChanged patch.
type EntityUpdated struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Floor string  `json:"floor"`
}

// FloorChanged is emitted only on the tick the stair predictor flips the
// entity's floor; clients use it to swap room visibility and audio beds.
type FloorChanged struct {
	EntityID string `json:"entityId"`
	Floor    string `json:"floor"`
}

// RoomEntered marks the entity crossing into a different room, or leaving
// every room (RoomID empty while in a doorway gap or on the stair).
type RoomEntered struct {
	EntityID string `json:"entityId"`
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
}
