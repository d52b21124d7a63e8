// Package health tracks the character's health as a fraction of its maximum.
package health

// Health is a value in [0, 1] that drains every tick and is changed by
// pickups and hazards.
type Health struct {
	value    float64
	drain    float64
	depleted bool
}

// New creates full health draining drain per tick.
func New(drain float64) *Health {
	return &Health{value: 1, drain: drain}
}

// ChangeHealth adds delta and clamps the result to [0, 1].
func (h *Health) ChangeHealth(delta float64) {
	if h.depleted {
		return
	}
	h.value += delta
	switch {
	case h.value > 1:
		h.value = 1
	case h.value <= 0:
		h.value = 0
		h.depleted = true
	}
}

// Drain applies one tick of decay, scaled by factor.
func (h *Health) Drain(factor float64) {
	h.ChangeHealth(-h.drain * factor)
}

// Depleted reports whether health has reached zero. It stays true until Reset.
func (h *Health) Depleted() bool {
	return h.depleted
}

// Value returns the current health fraction.
func (h *Health) Value() float64 {
	return h.value
}

// Reset restores full health.
func (h *Health) Reset() {
	h.value = 1
	h.depleted = false
}
