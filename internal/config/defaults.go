package config

import (
	_ "embed"
)

//go:embed defaults/trackntrace.yaml
var defaultTrackYAML []byte

// DefaultTrackConfig returns the default Track & Trace configuration.
// The grid covers the North Sea.
func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		Motion: MotionConfig{
			RotationStep:            0.06,
			AccelerateStep:          0.02,
			Deceleration:            0.01,
			MaxVelocity:             0.05,
			ScaleHorizontalVelocity: 1.6,
			StartLon:                0,
			StartLat:                53,
		},
		Dash: DashConfig{
			Duration:      60,
			VelocityBonus: 0.08,
		},
		Grid: GridConfig{
			LonMin: -15,
			LonMax: 13,
			LatMin: 46,
			LatMax: 62,
		},
		Health: HealthConfig{
			Drain:        0.0008,
			HazardDamage: 0.25,
		},
		Pickups: PickupsConfig{
			Radius:       0.3,
			FoodHealth:   0.2,
			ScorePerFood: 10,
		},
		Spawn: SpawnConfig{
			Initial:      25,
			Interval:     45,
			MaxParticles: 60,
			HazardChance: 0.2,
			Margin:       0.5,
			Clearance:    2,
		},
		Current: CurrentConfig{
			U:    0.002,
			V:    0.001,
			Gyre: 0.0004,
		},
		Camera: CameraConfig{
			ViewLat:    8,
			LonStretch: 1.6,
			DeadZone:   0.4,
			ZoomFactor: 1.25,
			ZoomTicks:  20,
		},
		Controls: ControlsConfig{
			HoldTicks: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				DrainMultiplier:        1.5,
				SpawnIntervalReduction: 20,
				HazardChanceIncrease:   0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTrackYAML
}
