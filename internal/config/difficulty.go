package config

import "math"

// DifficultyManager calculates health drain and spawn pressure based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Drain returns the per-tick health drain based on difficulty level.
func (d *DifficultyManager) Drain(baseDrain float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Drain increases from base to base * (1 + drainMultiplier)
	return baseDrain * (1.0 + level*d.cfg.Scaling.DrainMultiplier)
}

// DrainFactor returns the multiplier applied to the base health drain.
func (d *DifficultyManager) DrainFactor(score int, ticks int) float64 {
	return d.Drain(1, score, ticks)
}

// SpawnInterval returns the ticks between particle spawns based on difficulty level.
func (d *DifficultyManager) SpawnInterval(baseInterval int, score int, ticks int) int {
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.SpawnIntervalReduction))
	result := baseInterval - reduction
	if result < 5 { // Minimum interval
		result = 5
	}
	return result
}

// HazardChance returns the probability that a spawn is a hazard.
func (d *DifficultyManager) HazardChance(baseChance float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(baseChance+level*d.cfg.Scaling.HazardChanceIncrease, 0.0, 0.9)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
