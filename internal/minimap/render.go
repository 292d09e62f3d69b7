package minimap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/stairs"
)

// Options tunes the static minimap rendering. Scale is pixels per world
// unit; Margin is a world-unit border around the plan's extent.
type Options struct {
	Scale      float64
	Margin     float64
	DrawZones  bool
	DrawLabels bool
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 40
	}
	if o.Margin <= 0 {
		o.Margin = 1
	}
	return o
}

var (
	background   = color.NRGBA{24, 24, 28, 255}
	roomFill     = color.NRGBA{52, 56, 64, 255}
	wallColor    = color.NRGBA{210, 210, 215, 255}
	passageTint  = color.NRGBA{0, 255, 0, 56}
	clearTint    = color.NRGBA{0, 160, 255, 40}
	stairFill    = color.NRGBA{150, 110, 40, 255}
	landingFill  = color.NRGBA{185, 140, 60, 255}
	poiColor     = color.NRGBA{255, 220, 0, 255}
	labelColor   = color.NRGBA{235, 235, 235, 255}
)

// frame maps world XZ coordinates onto image pixels, north (max Z) up.
type frame struct {
	minX, maxZ float64
	scale      float64
}

func (f frame) pt(x, z float64) image.Point {
	return image.Point{
		X: int(math.Round((x - f.minX) * f.scale)),
		Y: int(math.Round((f.maxZ - z) * f.scale)),
	}
}

func (f frame) rect(b geometry.Bounds) image.Rectangle {
	tl := f.pt(b.MinX, b.MaxZ)
	br := f.pt(b.MaxX, b.MinZ)
	return image.Rect(tl.X, tl.Y, br.X, br.Y)
}

// Render draws one floor of the plan to an image: room fills, solid wall
// runs with their doorway gaps, optional zone tints, the stair footprint
// with its landing plate and the floor's points of interest. It is a pure
// consumer of the plan's derived data and never mutates the plan.
func Render(p *floorplan.Plan, floor floorplan.FloorID, stair *stairs.Geometry, opts Options) *image.NRGBA {
	opts = opts.withDefaults()

	extent := planExtent(p, stair)
	f := frame{
		minX:  extent.MinX - opts.Margin,
		maxZ:  extent.MaxZ + opts.Margin,
		scale: opts.Scale,
	}
	w := int(math.Ceil((extent.Width() + 2*opts.Margin) * opts.Scale))
	h := int(math.Ceil((extent.Depth() + 2*opts.Margin) * opts.Scale))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	rooms := p.FloorRooms(floor)
	for _, room := range rooms {
		draw.Draw(img, f.rect(room.Bounds), image.NewUniform(roomFill), image.Point{}, draw.Src)
	}

	if opts.DrawZones {
		view := p.ForFloor(floor)
		for _, pz := range floorplan.DoorwayPassageZones(view, floorplan.PassageOptions{}) {
			draw.Draw(img, f.rect(pz.Bounds), image.NewUniform(passageTint), image.Point{}, draw.Over)
		}
		for _, cz := range floorplan.DoorwayClearanceZones(view, floorplan.ClearanceOptions{}) {
			draw.Draw(img, f.rect(cz.Bounds), image.NewUniform(clearTint), image.Point{}, draw.Over)
		}
	}

	if stair != nil {
		flight := geometry.Bounds{
			MinX: stair.CenterX - stair.HalfWidth,
			MaxX: stair.CenterX + stair.HalfWidth,
			MinZ: math.Min(stair.BottomZ, stair.TopZ),
			MaxZ: math.Max(stair.BottomZ, stair.TopZ),
		}
		landing := geometry.Bounds{
			MinX: flight.MinX,
			MaxX: flight.MaxX,
			MinZ: stair.LandingMinZ,
			MaxZ: stair.LandingMaxZ,
		}
		draw.Draw(img, f.rect(flight), image.NewUniform(stairFill), image.Point{}, draw.Src)
		draw.Draw(img, f.rect(landing), image.NewUniform(landingFill), image.Point{}, draw.Src)
	}

	wallPx := maxi(1, int(math.Round(p.WallThickness*opts.Scale)))
	for i := range rooms {
		for _, seg := range floorplan.WallSegments(&rooms[i]) {
			drawWallSegment(img, f, seg, wallPx)
		}
	}

	for _, poi := range p.POIs {
		if poi.Floor != floor {
			continue
		}
		c := f.pt(poi.X, poi.Z)
		r := image.Rect(c.X-3, c.Y-3, c.X+3, c.Y+3)
		draw.Draw(img, r, image.NewUniform(poiColor), image.Point{}, draw.Src)
		if opts.DrawLabels {
			drawLabel(img, c.X+6, c.Y+4, poi.Name)
		}
	}

	if opts.DrawLabels {
		for _, room := range rooms {
			c := f.pt(room.Bounds.CenterX(), room.Bounds.CenterZ())
			drawLabel(img, c.X-4*len(room.Name), c.Y, room.Name)
		}
	}

	return img
}

// WritePNG encodes the image to a PNG file.
func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create minimap file: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode minimap PNG: %w", err)
	}
	return nil
}

// planExtent is the union of every room's bounds on any floor, plus the
// stair footprint, so both floors render into identically framed images.
func planExtent(p *floorplan.Plan, stair *stairs.Geometry) geometry.Bounds {
	ext := geometry.Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
	grow := func(b geometry.Bounds) {
		ext.MinX = math.Min(ext.MinX, b.MinX)
		ext.MaxX = math.Max(ext.MaxX, b.MaxX)
		ext.MinZ = math.Min(ext.MinZ, b.MinZ)
		ext.MaxZ = math.Max(ext.MaxZ, b.MaxZ)
	}
	for _, room := range p.Rooms {
		grow(room.Bounds)
	}
	if stair != nil {
		grow(stair.NavAreaRect(0, 0))
	}
	if ext.IsDegenerate() {
		return geometry.Bounds{MinX: 0, MaxX: 1, MinZ: 0, MaxZ: 1}
	}
	return ext
}

func drawWallSegment(img *image.NRGBA, f frame, seg floorplan.WallSegment, thick int) {
	var r image.Rectangle
	if seg.Axis == geometry.Horizontal {
		a := f.pt(seg.From, seg.Fixed)
		b := f.pt(seg.To, seg.Fixed)
		r = image.Rect(a.X, a.Y-thick/2, b.X, a.Y+thick-thick/2)
	} else {
		a := f.pt(seg.Fixed, seg.To)
		b := f.pt(seg.Fixed, seg.From)
		r = image.Rect(a.X-thick/2, a.Y, a.X+thick-thick/2, b.Y)
	}
	draw.Draw(img, r, image.NewUniform(wallColor), image.Point{}, draw.Src)
}

func drawLabel(img *image.NRGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: inconsolata.Regular8x16,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
