// Package config provides YAML-based game configuration loading and
// difficulty management for Track & Trace.
package config

import (
	"github.com/RUG-VIS/interactive-track-and-trace/internal/camera"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/motion"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
)

// TrackConfig contains all configuration for the Track & Trace game.
type TrackConfig struct {
	Motion     MotionConfig     `yaml:"motion"`
	Dash       DashConfig       `yaml:"dash"`
	Grid       GridConfig       `yaml:"grid"`
	Health     HealthConfig     `yaml:"health"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Current    CurrentConfig    `yaml:"current"`
	Camera     CameraConfig     `yaml:"camera"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MotionConfig defines the character's steering and throttle model.
type MotionConfig struct {
	RotationStep            float64 `yaml:"rotation_step"`
	AccelerateStep          float64 `yaml:"accelerate_step"`
	Deceleration            float64 `yaml:"deceleration"`
	MaxVelocity             float64 `yaml:"max_velocity"`
	ScaleHorizontalVelocity float64 `yaml:"scale_horizontal_velocity"`
	StartLon                float64 `yaml:"start_lon"`
	StartLat                float64 `yaml:"start_lat"`
}

// DashConfig defines the dash triggered by eating.
type DashConfig struct {
	Duration      int     `yaml:"duration"` // Ticks
	VelocityBonus float64 `yaml:"velocity_bonus"`
}

// GridConfig is the playable longitude/latitude box.
type GridConfig struct {
	LonMin float64 `yaml:"lon_min"`
	LonMax float64 `yaml:"lon_max"`
	LatMin float64 `yaml:"lat_min"`
	LatMax float64 `yaml:"lat_max"`
}

// HealthConfig defines health decay and damage.
type HealthConfig struct {
	Drain        float64 `yaml:"drain"` // Lost per tick at difficulty 0
	HazardDamage float64 `yaml:"hazard_damage"`
}

// PickupsConfig defines what touching a particle does.
type PickupsConfig struct {
	Radius       float64 `yaml:"radius"` // Collision distance in degrees
	FoodHealth   float64 `yaml:"food_health"`
	ScorePerFood int     `yaml:"score_per_food"`
}

// SpawnConfig defines particle spawning.
type SpawnConfig struct {
	Initial      int     `yaml:"initial"`
	Interval     int     `yaml:"interval"`
	MaxParticles int     `yaml:"max_particles"`
	HazardChance float64 `yaml:"hazard_chance"`
	Margin       float64 `yaml:"margin"`
	Clearance    float64 `yaml:"clearance"`
}

// CurrentConfig defines the flow that drifts particles.
type CurrentConfig struct {
	U    float64 `yaml:"u"`
	V    float64 `yaml:"v"`
	Gyre float64 `yaml:"gyre"`
}

// CameraConfig defines the view and the zoom pulse.
type CameraConfig struct {
	ViewLat    float64 `yaml:"view_lat"`
	LonStretch float64 `yaml:"lon_stretch"`
	DeadZone   float64 `yaml:"dead_zone"`
	ZoomFactor float64 `yaml:"zoom_factor"`
	ZoomTicks  int     `yaml:"zoom_ticks"`
}

// ControlsConfig defines input handling.
type ControlsConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key counts as held after its last press
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DrainMultiplier        float64 `yaml:"drain_multiplier"`         // Multiplier added to drain at max difficulty
	SpawnIntervalReduction int     `yaml:"spawn_interval_reduction"` // Ticks removed from the spawn interval at max difficulty
	HazardChanceIncrease   float64 `yaml:"hazard_chance_increase"`   // Added to hazard chance at max difficulty
}

// Bounds returns the grid as core bounds.
func (c TrackConfig) Bounds() core.Bounds {
	return core.Bounds{
		LonMin: c.Grid.LonMin,
		LonMax: c.Grid.LonMax,
		LatMin: c.Grid.LatMin,
		LatMax: c.Grid.LatMax,
	}
}

// Start returns the character's start point.
func (c TrackConfig) Start() core.Point {
	return core.Point{Lon: c.Motion.StartLon, Lat: c.Motion.StartLat}
}

// Tuning returns the motion tuning.
func (c TrackConfig) Tuning() motion.Tuning {
	return motion.Tuning{
		RotationStep:            c.Motion.RotationStep,
		AccelerateStep:          c.Motion.AccelerateStep,
		Deceleration:            c.Motion.Deceleration,
		MaxVelocity:             c.Motion.MaxVelocity,
		ScaleHorizontalVelocity: c.Motion.ScaleHorizontalVelocity,
		DashDuration:            c.Dash.Duration,
		DashVelocityBonus:       c.Dash.VelocityBonus,
		Start:                   c.Start(),
	}
}

// SpawnSettings returns the particle spawner settings.
func (c TrackConfig) SpawnSettings() particles.SpawnConfig {
	return particles.SpawnConfig{
		Initial:      c.Spawn.Initial,
		Interval:     c.Spawn.Interval,
		MaxParticles: c.Spawn.MaxParticles,
		HazardChance: c.Spawn.HazardChance,
		Margin:       c.Spawn.Margin,
		Clearance:    c.Spawn.Clearance,
	}
}

// Flow returns the particle current.
func (c TrackConfig) Flow() particles.Current {
	return particles.Current{U: c.Current.U, V: c.Current.V, Gyre: c.Current.Gyre}
}

// CameraSettings returns the camera settings.
func (c TrackConfig) CameraSettings() camera.Config {
	return camera.Config{
		ViewLat:    c.Camera.ViewLat,
		LonStretch: c.Camera.LonStretch,
		DeadZone:   c.Camera.DeadZone,
		ZoomFactor: c.Camera.ZoomFactor,
		ZoomTicks:  c.Camera.ZoomTicks,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
