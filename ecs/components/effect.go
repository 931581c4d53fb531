package components

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/component"
)

// Effect is a short-lived particle record handed to the renderer.
type Effect struct {
	Kind string
	Pos  cp.Vector
	// Target, when Homing is set, is where the particle travels to.
	Target cp.Vector
	Homing bool
	Speed  float64
	Life   component.Timer
}
