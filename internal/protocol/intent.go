package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestMove asks the movement system to displace an entity by (DX, DZ)
// world units this tick. The server clamps the step length and slides the
// result along the nav mesh before accepting it.
type RequestMove struct {
	EntityID string  `json:"entityId"`
	DX       float64 `json:"dx"`
	DZ       float64 `json:"dz"`
}

// RequestTeleport jumps an entity to a point of interest, used by the
// client's minimap shortcuts. The destination still has to be walkable.
type RequestTeleport struct {
	EntityID string `json:"entityId"`
	PoiID    string `json:"poiId"`
}
