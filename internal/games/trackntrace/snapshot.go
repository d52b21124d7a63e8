package trackntrace

import (
	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
)

// Snapshot is a read-only view of one tick of the game, used by the HUD
// and by tests comparing runs.
type Snapshot struct {
	Tick          int
	Position      core.Point
	Heading       float64
	Throttle      float64
	Velocity      float64
	Dashing       bool
	DashRemaining int
	Health        float64
	Food          int
	Hazards       int
	Meals         int
	Score         int
	Zoom          float64
	Level         float64 // Difficulty in [0, 1]
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.ticks,
		Position:      g.character.Position(),
		Heading:       g.character.Heading(),
		Throttle:      g.character.Throttle(),
		Velocity:      g.character.Velocity(),
		Dashing:       g.character.Dashing(),
		DashRemaining: g.character.DashRemaining(),
		Health:        g.health.Value(),
		Food:          g.particles.Count(particles.KindFood),
		Hazards:       g.particles.Count(particles.KindHazard),
		Meals:         g.badges.Meals(),
		Score:         g.score,
		Zoom:          g.camera.Zoom(),
		Level:         g.difficulty.Level(g.score, g.ticks),
	}
}
