// Package collision dispatches character/particle overlaps to the effects
// they trigger.
//
// A Target is anything sitting at a tracked particle that reacts when the
// character overlaps it. The detector only knows indices; which effect runs
// is decided by the Target registered for the particle's kind.
package collision

// Target reacts to the character overlapping the particle at index.
// Implementations usually remove that particle from the tracked set.
type Target interface {
	OnCollision(index int)
}

// ParticleSet is the tracked set of collidable points.
// Remove panics on an index outside [0, Len()).
type ParticleSet interface {
	Remove(index int)
	Len() int
}

// Health receives additive health changes. The implementation owns
// clamping and game over on depletion.
type Health interface {
	ChangeHealth(delta float64)
}

// Camera receives the transient zoom reaction.
type Camera interface {
	ZoomScreen()
}

// Dasher is the character's dash trigger.
type Dasher interface {
	Dash()
}

// Badges counts consumed food.
type Badges interface {
	LogFoodConsumption()
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(index int)

// OnCollision calls f(index).
func (f TargetFunc) OnCollision(index int) {
	f(index)
}
