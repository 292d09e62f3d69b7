package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/minimap"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/stairs"
)

func main() {
	planPath := flag.String("plan", "content/plan.json", "floor plan JSON file")
	outPrefix := flag.String("out", "minimap", "output PNG path prefix; floor id is appended")
	scale := flag.Float64("scale", 40, "pixels per world unit")
	zones := flag.Bool("zones", false, "overlay passage and clearance zones")
	labels := flag.Bool("labels", true, "draw room and POI labels")
	flag.Parse()

	plan, err := floorplan.LoadPlanFromFile(*planPath)
	if err != nil {
		log.Fatalf("failed to load plan: %v", err)
	}

	var stair *stairs.Geometry
	if s := plan.Stair; s != nil {
		g := stairs.NewGeometry(s.CenterX, s.HalfWidth, s.BottomZ, s.TopZ, s.LandingDepth, s.TotalRise, s.Direction)
		stair = &g
	}

	opts := minimap.Options{Scale: *scale, DrawZones: *zones, DrawLabels: *labels}
	for _, floor := range plan.Floors() {
		img := minimap.Render(plan, floor, stair, opts)
		path := fmt.Sprintf("%s-%s.png", *outPrefix, floor)
		if err := minimap.WritePNG(path, img); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
}
