package protocol

// RectLite is a wire-friendly axis-aligned rectangle on the XZ plane.
type RectLite struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinZ float64 `json:"minZ"`
	MaxZ float64 `json:"maxZ"`
}

type RoomLite struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Floor  string   `json:"floor"`
	Bounds RectLite `json:"bounds"`
}

type WallSegmentLite struct {
	RoomID string  `json:"roomId"`
	Axis   string  `json:"axis"`
	Fixed  float64 `json:"fixed"`
	From   float64 `json:"from"`
	To     float64 `json:"to"`
}

type PoiLite struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Floor string  `json:"floor"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
}

type StairLite struct {
	CenterX   float64 `json:"centerX"`
	HalfWidth float64 `json:"halfWidth"`
	BottomZ   float64 `json:"bottomZ"`
	TopZ      float64 `json:"topZ"`
	LandingZ  float64 `json:"landingZ"`
}

type EntityLite struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Floor string  `json:"floor"`
}

// Snapshot is the full client-facing world state embedded in the index
// page: static plan data plus the explorer's current position. Patches
// received over the stream are applied on top of it.
type Snapshot struct {
	PlanID          string                `json:"planId"`
	LastEventID     int64                 `json:"lastEventId"`
	Floors          []string              `json:"floors"`
	Rooms           []RoomLite            `json:"rooms"`
	WallSegments    []WallSegmentLite     `json:"wallSegments"`
	NavPolygons     map[string][]RectLite `json:"navPolygons"`
	POIs            []PoiLite             `json:"pois"`
	Stair           *StairLite            `json:"stair,omitempty"`
	Entities        []EntityLite          `json:"entities"`
	Variables       map[string]any        `json:"variables"`
	ProtocolVersion string                `json:"protocolVersion"`
}
