package motion

import (
	"math"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

// spriteOffsetDegrees is the rotation baked into the character glyph.
const spriteOffsetDegrees = -25.0

// Controls are the control flags polled once per tick.
// Left and right may both be set; their turns cancel out.
type Controls struct {
	GoingLeft    bool
	GoingRight   bool
	Accelerating bool
	Reversing    bool // Only suppresses acceleration
}

// ControlsFromInput reads the steering actions of an input frame.
func ControlsFromInput(in core.InputFrame) Controls {
	return Controls{
		GoingLeft:    in.Has(core.ActionLeft),
		GoingRight:   in.Has(core.ActionRight),
		Accelerating: in.Has(core.ActionAccelerate),
		Reversing:    in.Has(core.ActionReverse),
	}
}

// State is the character's motion state.
type State struct {
	tuning   Tuning
	position core.Point
	heading  float64
	throttle float64
	velocity float64
	dash     Dash
	visual   Visual
}

// New creates a character at the tuning's start point, at rest.
func New(t Tuning) *State {
	return &State{
		tuning:   t,
		position: t.Start,
		dash:     NewDash(t.DashDuration, t.DashVelocityBonus),
	}
}

// Step advances the character one tick and returns its new position.
// Order: heading, throttle, dash decay, velocity, position, clamp.
func (s *State) Step(c Controls, bounds core.Bounds) core.Point {
	if c.GoingLeft {
		s.heading += s.tuning.RotationStep
	}
	if c.GoingRight {
		s.heading -= s.tuning.RotationStep
	}

	s.updateThrottle(c)
	s.visual = s.dash.DecayStep()
	s.velocity = s.tuning.MaxVelocity*Ease(s.throttle) + s.dash.VelocityBonus()

	next := s.position.Add(
		math.Cos(s.heading)*s.velocity*s.tuning.ScaleHorizontalVelocity,
		math.Sin(s.heading)*s.velocity,
	)
	s.position = bounds.Clamp(next)
	return s.position
}

func (s *State) updateThrottle(c Controls) {
	if c.Accelerating && !c.Reversing {
		s.throttle += s.tuning.AccelerateStep
	}
	if c.Accelerating {
		return
	}
	switch {
	case s.throttle > 1:
		s.throttle = 1
	case s.tuning.Deceleration < s.throttle:
		s.throttle -= s.tuning.Deceleration
	default:
		s.throttle = 0
	}
}

// Dash triggers the character's dash.
func (s *State) Dash() {
	s.dash.Trigger()
}

// HandleGameOver puts the character back on its start point with zero
// throttle, velocity and dash.
func (s *State) HandleGameOver() {
	s.position = s.tuning.Start
	s.velocity = 0
	s.throttle = 0
	s.dash.Reset()
	s.visual = s.dash.DecayStep()
}

// Position returns the current grid position.
func (s *State) Position() core.Point {
	return s.position
}

// Heading returns the facing angle in radians.
func (s *State) Heading() float64 {
	return s.heading
}

// Throttle returns the current throttle.
func (s *State) Throttle() float64 {
	return s.throttle
}

// Velocity returns the velocity computed in the last step.
func (s *State) Velocity() float64 {
	return s.velocity
}

// Dashing reports whether a dash is active.
func (s *State) Dashing() bool {
	return s.dash.Active()
}

// DashRemaining returns the ticks left in the current dash.
func (s *State) DashRemaining() int {
	return s.dash.Remaining()
}

// Visual returns the render state reported by the last dash decay.
func (s *State) Visual() Visual {
	return s.visual
}

// DirectionDegrees returns the sprite rotation for the current heading.
func (s *State) DirectionDegrees() float64 {
	return spriteOffsetDegrees + s.heading*(180.0/math.Pi)
}
