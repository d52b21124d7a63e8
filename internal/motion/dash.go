package motion

// Visual is the render state signalled by the dash machine.
type Visual int

const (
	VisualNormal Visual = iota
	VisualDashing
)

// String returns a human-readable name for the visual state.
func (v Visual) String() string {
	switch v {
	case VisualNormal:
		return "normal"
	case VisualDashing:
		return "dashing"
	default:
		return "unknown"
	}
}

// Dash is a decaying speed boost. While active, remaining counts down one
// per DecayStep and the velocity bonus falls off linearly with it.
//
// After every DecayStep: remaining == 0 implies !active, and active implies
// remaining > 0.
type Dash struct {
	duration  int
	bonus     float64
	active    bool
	remaining int
}

// NewDash creates an inactive dash lasting duration ticks.
// A non-positive duration is raised to 1.
func NewDash(duration int, bonus float64) Dash {
	if duration < 1 {
		duration = 1
	}
	return Dash{duration: duration, bonus: bonus}
}

// Trigger starts the dash, or restarts the countdown if one is running.
func (d *Dash) Trigger() {
	d.remaining = d.duration
	d.active = true
}

// DecayStep advances the countdown by one tick and reports the visual
// state to show for it.
func (d *Dash) DecayStep() Visual {
	visual := VisualNormal
	if d.active && d.remaining > 0 {
		d.remaining--
		visual = VisualDashing
	}
	if d.active && d.remaining == 0 {
		d.active = false
		visual = VisualNormal
	}
	return visual
}

// VelocityBonus returns the speed added by the dash this tick.
func (d *Dash) VelocityBonus() float64 {
	return d.bonus * float64(d.remaining) / float64(d.duration)
}

// Reset stops the dash immediately.
func (d *Dash) Reset() {
	d.remaining = 0
	d.active = false
}

// Active reports whether a dash is in progress.
func (d *Dash) Active() bool {
	return d.active
}

// Remaining returns the ticks left in the current dash.
func (d *Dash) Remaining() int {
	return d.remaining
}

// Duration returns the full length of a dash in ticks.
func (d *Dash) Duration() int {
	return d.duration
}
