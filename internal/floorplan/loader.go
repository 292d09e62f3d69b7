package floorplan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// LoadPlanFromFile loads and validates a floor plan from a JSON file.
func LoadPlanFromFile(filepath string) (*Plan, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}

	applyPlanDefaults(&plan)
	if err := ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("invalid plan %q: %w", plan.ID, err)
	}

	return &plan, nil
}

// applyPlanDefaults fills omitted floor ids. Rooms and POIs without a floor
// belong to the ground floor.
func applyPlanDefaults(p *Plan) {
	for i := range p.Rooms {
		if p.Rooms[i].Floor == "" {
			p.Rooms[i].Floor = FloorGround
		}
	}
	for i := range p.POIs {
		if p.POIs[i].Floor == "" {
			p.POIs[i].Floor = FloorGround
		}
	}
}

// ValidatePlan checks structural integrity of a plan: positive finite wall
// thickness, at least one room, unique room ids, well-formed bounds, known
// wall sides and floors, a sane stair block, and POIs referencing rooms
// that exist. It returns the first problem found.
func ValidatePlan(p *Plan) error {
	if !geometry.IsFinite(p.WallThickness) || p.WallThickness <= 0 {
		return fmt.Errorf("wall thickness must be positive, got %v", p.WallThickness)
	}
	if len(p.Rooms) == 0 {
		return fmt.Errorf("plan has no rooms")
	}

	ids := make(map[string]bool, len(p.Rooms))
	for i := range p.Rooms {
		room := &p.Rooms[i]
		if room.ID == "" {
			return fmt.Errorf("room %d has no id", i)
		}
		if ids[room.ID] {
			return fmt.Errorf("duplicate room id %q", room.ID)
		}
		ids[room.ID] = true
		if room.Floor != FloorGround && room.Floor != FloorUpper {
			return fmt.Errorf("room %q has unknown floor %q", room.ID, room.Floor)
		}
		if room.Bounds.IsDegenerate() {
			return fmt.Errorf("room %q has degenerate bounds %+v", room.ID, room.Bounds)
		}
		for j, d := range room.Doorways {
			switch d.Wall {
			case WallNorth, WallSouth, WallEast, WallWest:
			default:
				return fmt.Errorf("room %q doorway %d has unknown wall %q", room.ID, j, d.Wall)
			}
			if !geometry.IsFinite(d.Start) || !geometry.IsFinite(d.End) {
				return fmt.Errorf("room %q doorway %d has non-finite extent", room.ID, j)
			}
		}
	}

	if s := p.Stair; s != nil {
		// Both directions validate, but the floor predictor's descent
		// rules are tuned for flights climbing toward negative Z
		// (direction -1); see stairs.PredictFloor.
		if s.Direction != 1 && s.Direction != -1 {
			return fmt.Errorf("stair direction must be 1 or -1, got %d", s.Direction)
		}
		if !geometry.IsFinite(s.HalfWidth) || s.HalfWidth <= 0 {
			return fmt.Errorf("stair half width must be positive, got %v", s.HalfWidth)
		}
		if !geometry.IsFinite(s.TotalRise) || s.TotalRise <= 0 {
			return fmt.Errorf("stair total rise must be positive, got %v", s.TotalRise)
		}
		if !geometry.IsFinite(s.LandingDepth) || s.LandingDepth <= 0 {
			return fmt.Errorf("stair landing depth must be positive, got %v", s.LandingDepth)
		}
		if s.BottomZ == s.TopZ {
			return fmt.Errorf("stair bottom and top must differ, both %v", s.BottomZ)
		}
	}

	for i, poi := range p.POIs {
		if poi.RoomID != "" && !ids[poi.RoomID] {
			return fmt.Errorf("poi %d (%q) references unknown room %q", i, poi.ID, poi.RoomID)
		}
		if poi.Floor != FloorGround && poi.Floor != FloorUpper {
			return fmt.Errorf("poi %d (%q) has unknown floor %q", i, poi.ID, poi.Floor)
		}
	}

	return nil
}
