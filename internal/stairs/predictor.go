package stairs

import (
	"github.com/futuroptimist/danielsmith.io-sub004/internal/floorplan"
	"github.com/futuroptimist/danielsmith.io-sub004/internal/geometry"
)

// Behavior carries the predictor's tuning. TransitionMargin is the generous
// band around the stairwell inside which floor transitions are considered
// at all; LandingTriggerMargin is the much tighter band that decides "on
// the landing plate"; StepRise is the height of one tread and scales the
// ramp-progress thresholds.
type Behavior struct {
	TransitionMargin     float64
	LandingTriggerMargin float64
	StepRise             float64
}

// The predictor is a dual-threshold state machine: leaving a floor takes a
// stricter test than entering it, so a point dithering on a boundary never
// flips the floor id back and forth between ticks. The factors below scale
// the raw margins and the tread rise into those paired thresholds.
const (
	// descendExitRiseFactor: fraction of one tread the ramp must drop
	// below full rise before the landing counts as measurably left.
	descendExitRiseFactor = 0.1
	// ascendEnterRiseFactor: fraction of one tread short of full rise at
	// which a climbing point already counts as arrived on top.
	ascendEnterRiseFactor = 0.25
	// exitWidthFactor scales TransitionMargin into the narrowed exit
	// half-width, and the overshoot past the foot of the flight that
	// confirms a descent.
	exitWidthFactor = 0.5
)

// PredictFloor decides which floor a moving point occupies, given the floor
// it occupied on the previous tick. It is pure: the caller persists the
// returned value and feeds it back on the next call. Non-finite coordinates
// leave the floor unchanged.
//
// The descent confirmations compare z against BottomZ directly rather than
// through Direction, so they assume a flight climbing toward negative Z
// (Direction -1, foot at the larger z). A Direction 1 flight still resolves
// ascents correctly, but its descent hysteresis weakens near the top of
// the flight, where z >= BottomZ holds for the whole run.
func PredictFloor(g Geometry, b Behavior, x, z float64, current floorplan.FloorID) floorplan.FloorID {
	if !geometry.IsFinite(x) || !geometry.IsFinite(z) {
		return current
	}
	if current == floorplan.FloorUpper {
		return predictFromUpper(g, b, x, z)
	}
	return predictFromGround(g, b, x, z)
}

func predictFromUpper(g Geometry, b Behavior, x, z float64) floorplan.FloorID {
	// Away from the stairwell entirely: still walking the upper floor.
	if !g.WithinWidth(x, b.TransitionMargin) {
		return floorplan.FloorUpper
	}

	exitHalfWidth := g.HalfWidth - exitWidthFactor*b.TransitionMargin
	if exitHalfWidth < exitWidthFactor*g.HalfWidth {
		exitHalfWidth = exitWidthFactor * g.HalfWidth
	}

	// On the landing plate, tight margin: no transition yet.
	if g.WithinLanding(x, z, b.LandingTriggerMargin) {
		return floorplan.FloorUpper
	}

	ramp := g.RampHeight(x, z, b.TransitionMargin)
	leftLanding := ramp < g.TotalRise-b.StepRise*descendExitRiseFactor
	if leftLanding && z <= g.BottomZ-exitWidthFactor*b.TransitionMargin {
		return floorplan.FloorGround
	}

	// Stepped straight off the bottom tread.
	dx := x - g.CenterX
	if dx < 0 {
		dx = -dx
	}
	if dx <= exitHalfWidth && z >= g.BottomZ {
		return floorplan.FloorGround
	}

	// Mid-flight: keep the upper id until the foot is actually cleared.
	return floorplan.FloorUpper
}

func predictFromGround(g Geometry, b Behavior, x, z float64) floorplan.FloorID {
	if !g.WithinWidth(x, b.TransitionMargin) {
		return floorplan.FloorGround
	}
	// Past the last tread in the climb direction.
	if (z-g.TopZ)*g.Direction >= b.TransitionMargin {
		return floorplan.FloorUpper
	}
	// Nearly full rise climbed.
	if g.RampHeight(x, z, b.TransitionMargin) >= g.TotalRise-b.StepRise*ascendEnterRiseFactor {
		return floorplan.FloorUpper
	}
	// Stepped onto the landing plate.
	if g.WithinLanding(x, z, b.LandingTriggerMargin) {
		return floorplan.FloorUpper
	}
	return floorplan.FloorGround
}
