package motion

import "github.com/RUG-VIS/interactive-track-and-trace/internal/core"

// Tuning holds the constants of the motion model. It is copied into State
// at construction and never changed afterwards.
type Tuning struct {
	RotationStep            float64 // Radians turned per tick while steering
	AccelerateStep          float64 // Throttle added per tick while accelerating
	Deceleration            float64 // Throttle removed per tick once released
	MaxVelocity             float64 // Grid units per tick at Ease(throttle) == 1
	ScaleHorizontalVelocity float64 // Longitude stretch factor
	DashDuration            int     // Ticks a dash lasts
	DashVelocityBonus       float64 // Extra velocity at the start of a dash
	Start                   core.Point
}

// DefaultTuning returns the tuning used when no configuration is given.
func DefaultTuning() Tuning {
	return Tuning{
		RotationStep:            0.06,
		AccelerateStep:          0.02,
		Deceleration:            0.01,
		MaxVelocity:             0.05,
		ScaleHorizontalVelocity: 1.6,
		DashDuration:            60,
		DashVelocityBonus:       0.08,
		Start:                   core.Point{Lon: 0, Lat: 53},
	}
}
