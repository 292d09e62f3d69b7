package floorplan

import (
	"math"
	"reflect"
	"testing"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

// createSharedDoorwayRooms returns two rooms stacked along Z that both
// declare the same opening in the wall they share at z=0.
func createSharedDoorwayRooms() []Room {
	return []Room{
		{
			ID:     "hall",
			Floor:  FloorGround,
			Bounds: geometry.Bounds{MinX: 0, MaxX: 6, MinZ: 0, MaxZ: 4},
			Doorways: []Doorway{
				{Wall: WallSouth, Start: 2, End: 3.2},
			},
		},
		{
			ID:     "den",
			Floor:  FloorGround,
			Bounds: geometry.Bounds{MinX: 0, MaxX: 6, MinZ: -3, MaxZ: 0},
			Doorways: []Doorway{
				{Wall: WallNorth, Start: 3.2, End: 2},
			},
		},
	}
}

func TestNormalizeDoorways_DedupAcrossRooms(t *testing.T) {
	rooms := createSharedDoorwayRooms()

	doorways := NormalizeDoorways(rooms)

	if len(doorways) != 1 {
		t.Fatalf("expected shared opening to dedup to 1 doorway, got %d", len(doorways))
	}
	d := doorways[0]
	if d.Axis != geometry.Horizontal {
		t.Errorf("expected horizontal axis, got %q", d.Axis)
	}
	if !almostEqual(d.CenterX, 2.6) || !almostEqual(d.CenterZ, 0) {
		t.Errorf("expected center (2.6, 0), got (%v, %v)", d.CenterX, d.CenterZ)
	}
	if !almostEqual(d.Width, 1.2) {
		t.Errorf("expected width 1.2, got %v", d.Width)
	}
}

func TestNormalizeDoorways_IdempotentAndPure(t *testing.T) {
	rooms := createSharedDoorwayRooms()
	before := make([]Room, len(rooms))
	copy(before, rooms)

	first := NormalizeDoorways(rooms)
	second := NormalizeDoorways(rooms)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected repeated normalization to match: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(rooms, before) {
		t.Error("expected input rooms to be unmodified")
	}
}

func TestNormalizeDoorways_DeterministicOrder(t *testing.T) {
	room := Room{
		ID:     "studio",
		Floor:  FloorGround,
		Bounds: geometry.Bounds{MinX: 0, MaxX: 6, MinZ: 0, MaxZ: 4},
		Doorways: []Doorway{
			{Wall: WallEast, Start: 1, End: 2},
			{Wall: WallNorth, Start: 0.5, End: 1.5},
			{Wall: WallSouth, Start: 2, End: 3.2},
		},
	}

	doorways := NormalizeDoorways([]Room{room})

	if len(doorways) != 3 {
		t.Fatalf("expected 3 doorways, got %d", len(doorways))
	}
	if doorways[0].Axis != geometry.Horizontal || !almostEqual(doorways[0].CenterZ, 0) {
		t.Errorf("expected south doorway first, got %+v", doorways[0])
	}
	if doorways[1].Axis != geometry.Horizontal || !almostEqual(doorways[1].CenterZ, 4) {
		t.Errorf("expected north doorway second, got %+v", doorways[1])
	}
	if doorways[2].Axis != geometry.Vertical || !almostEqual(doorways[2].CenterX, 6) {
		t.Errorf("expected east doorway last, got %+v", doorways[2])
	}
}

func TestNormalizeDoorways_QuantizationAbsorbsAuthoringNoise(t *testing.T) {
	rooms := createSharedDoorwayRooms()
	// Sub-millimeter drift between the two declarations must still
	// collapse to one opening.
	rooms[1].Doorways[0] = Doorway{Wall: WallNorth, Start: 2.0000004, End: 3.2000004}

	doorways := NormalizeDoorways(rooms)

	if len(doorways) != 1 {
		t.Fatalf("expected drifted declarations to dedup to 1 doorway, got %d", len(doorways))
	}
}

func TestNormalizeDoorways_ZeroWidthPassesThrough(t *testing.T) {
	room := Room{
		ID:     "closet",
		Floor:  FloorGround,
		Bounds: geometry.Bounds{MinX: 0, MaxX: 2, MinZ: 0, MaxZ: 2},
		Doorways: []Doorway{
			{Wall: WallSouth, Start: 1, End: 1},
		},
	}

	doorways := NormalizeDoorways([]Room{room})

	if len(doorways) != 1 {
		t.Fatalf("expected zero-width doorway to pass through, got %d doorways", len(doorways))
	}
	if doorways[0].Width != 0 {
		t.Errorf("expected width 0, got %v", doorways[0].Width)
	}
}

func TestNormalizeDoorways_DropsNonFinite(t *testing.T) {
	room := Room{
		ID:     "void",
		Floor:  FloorGround,
		Bounds: geometry.Bounds{MinX: 0, MaxX: 2, MinZ: 0, MaxZ: 2},
		Doorways: []Doorway{
			{Wall: WallSouth, Start: math.NaN(), End: 1},
			{Wall: WallNorth, Start: 0.5, End: math.Inf(1)},
		},
	}

	doorways := NormalizeDoorways([]Room{room})

	if len(doorways) != 0 {
		t.Errorf("expected non-finite doorways to be dropped, got %d", len(doorways))
	}
}

func TestNormalizeDoorways_FirstDeclarationWins(t *testing.T) {
	rooms := createSharedDoorwayRooms()

	doorways := NormalizeDoorways(rooms)
	reversed := NormalizeDoorways([]Room{rooms[1], rooms[0]})

	if !reflect.DeepEqual(doorways, reversed) {
		t.Errorf("expected room order not to change the result: %+v vs %+v", doorways, reversed)
	}
}
