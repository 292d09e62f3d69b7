package minimap

import (
	"image/color"
	"testing"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/stairs"
)

func testPlan() *floorplan.Plan {
	return &floorplan.Plan{
		ID:            "test-house",
		WallThickness: 0.1,
		Rooms: []floorplan.Room{
			{
				ID:     "hall",
				Name:   "Hall",
				Floor:  floorplan.FloorGround,
				Bounds: geometry.Bounds{MinX: 0, MaxX: 6, MinZ: 0, MaxZ: 4},
			},
			{
				ID:     "loft",
				Name:   "Loft",
				Floor:  floorplan.FloorUpper,
				Bounds: geometry.Bounds{MinX: 0, MaxX: 6, MinZ: -6, MaxZ: -2},
			},
		},
		POIs: []floorplan.PointOfInterest{
			{ID: "desk", Name: "Desk", Floor: floorplan.FloorGround, RoomID: "hall", X: 3, Z: 2},
		},
	}
}

func TestRender_FramesBothFloorsIdentically(t *testing.T) {
	p := testPlan()
	g := stairs.NewGeometry(3, 1, 0, -2, 1, 3, -1)

	ground := Render(p, floorplan.FloorGround, &g, Options{Scale: 10})
	upper := Render(p, floorplan.FloorUpper, &g, Options{Scale: 10})

	if ground.Bounds() != upper.Bounds() {
		t.Errorf("floors rendered at different sizes: %v vs %v", ground.Bounds(), upper.Bounds())
	}
	if ground.Bounds().Dx() == 0 || ground.Bounds().Dy() == 0 {
		t.Fatalf("empty render: %v", ground.Bounds())
	}
}

func TestRender_RoomInteriorFilledOtherFloorNot(t *testing.T) {
	p := testPlan()

	img := Render(p, floorplan.FloorGround, nil, Options{Scale: 10, Margin: 1})

	// World (3, 2) is inside the ground hall; world (3, -4) is inside
	// the upper loft, which must not be filled on the ground render.
	inside := img.NRGBAAt(pixelX(3, 10), pixelY(2, 4, 1, 10))
	outside := img.NRGBAAt(pixelX(3, 10), pixelY(-4, 4, 1, 10))
	if inside == (color.NRGBA{}) || inside == background {
		t.Errorf("expected room fill inside the hall, got %v", inside)
	}
	if outside != background {
		t.Errorf("expected background over the other floor's room, got %v", outside)
	}
}

// pixelX/pixelY mirror the renderer's world-to-image transform for a plan
// whose extent starts at MinX=0 with the given max Z and margin.
func pixelX(x, scale float64) int {
	return int((x + 1) * scale)
}

func pixelY(z, maxZ, margin, scale float64) int {
	return int((maxZ + margin - z) * scale)
}

func TestWritePNG(t *testing.T) {
	p := testPlan()
	img := Render(p, floorplan.FloorGround, nil, Options{Scale: 4})

	path := t.TempDir() + "/map.png"
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
